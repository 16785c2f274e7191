package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzpick/internal/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)
	svc := NewConfigService()

	want := DefaultConfig()
	want.Source.URL = "http://localhost:9999/zones"
	want.Source.OnFailure = string(domain.PolicyError)
	want.UI.Placeholder = "Pick some"
	want.UI.DropdownHeight = 4
	want.Log.File = ""

	require.NoError(t, svc.SaveToPath(want, path))

	got, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nplaceholder = \"Zones...\"\n"), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "Zones...", cfg.UI.Placeholder)
	assert.Equal(t, DefaultConfig().Source, cfg.Source)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("TZPICK_SOURCE_ON_FAILURE", "error")

	cfg, err := NewConfigService().LoadFromPath("")
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyError, cfg.Policy())
}

func TestInvalidValuesAreRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "policy", body: "[source]\non_failure = \"retry\"\n"},
		{name: "timeout", body: "[source]\ntimeout_seconds = 0\n"},
		{name: "dropdown", body: "[ui]\ndropdown_height = 0\n"},
		{name: "output", body: "[ui]\noutput = \"xml\"\n"},
		{name: "syntax", body: "[ui\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			_, err := NewConfigService().LoadFromPath(path)
			assert.Error(t, err)
		})
	}
}
