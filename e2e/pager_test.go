//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpOpensInPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--offline"))
	require.True(t, tf.Loaded())

	require.NoError(t, tf.Tab())
	require.NoError(t, tf.SendKeys(KeyHelp))
	if !tf.SeePlain("Timezone Selector Help") {
		tf.DumpTailOnFail(t, "help-pager", 4096)
		t.Fatal("Help should open in the pager")
	}
	require.True(t, tf.SeePlain("clear all"))

	// Leave the pager, then quit from the restored UI
	require.NoError(t, tf.SendKeys(KeyQuit))
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, tf.SendKeys(KeyQuit))

	_, exited := tf.WaitExit(3 * time.Second)
	require.True(t, exited, "Should exit after leaving the pager")
}
