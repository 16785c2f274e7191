package listen

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDispatchStopsAtFirstHandler(t *testing.T) {
	r := NewRegistry()
	var calls []string

	r.Subscribe(func(tea.Msg) (bool, tea.Cmd) {
		calls = append(calls, "first")
		return false, nil
	})
	r.Subscribe(func(tea.Msg) (bool, tea.Cmd) {
		calls = append(calls, "second")
		return true, nil
	})
	r.Subscribe(func(tea.Msg) (bool, tea.Cmd) {
		calls = append(calls, "third")
		return true, nil
	})

	handled, _ := r.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, handled)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestReleaseIsIdempotent(t *testing.T) {
	r := NewRegistry()
	releaseA := r.Subscribe(func(tea.Msg) (bool, tea.Cmd) { return false, nil })
	r.Subscribe(func(tea.Msg) (bool, tea.Cmd) { return false, nil })
	assert.Equal(t, 2, r.Len())

	releaseA()
	releaseA()
	assert.Equal(t, 1, r.Len())
}

func TestListenerCanReleaseItselfDuringDispatch(t *testing.T) {
	r := NewRegistry()
	var release func()
	release = r.Subscribe(func(tea.Msg) (bool, tea.Cmd) {
		release()
		return false, nil
	})
	called := false
	r.Subscribe(func(tea.Msg) (bool, tea.Cmd) {
		called = true
		return false, nil
	})

	handled, _ := r.Dispatch(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, handled)
	assert.True(t, called)
	assert.Equal(t, 1, r.Len())
}

func TestDispatchWithoutListeners(t *testing.T) {
	handled, cmd := NewRegistry().Dispatch(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, handled)
	assert.Nil(t, cmd)
}
