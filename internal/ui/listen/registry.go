// Package listen holds program-wide key and mouse listeners.
//
// Components subscribe while they need to see input that happens anywhere on
// screen (a dropdown watching for clicks outside itself) and release the
// subscription as soon as they stop caring. The host dispatches every input
// message here before routing it to the focused component.
package listen

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Listener inspects a message. It returns true when the message is consumed
// and must not reach any other listener or the focused component.
type Listener func(msg tea.Msg) (handled bool, cmd tea.Cmd)

type entry struct {
	id       uint64
	listener Listener
}

// Registry dispatches messages to listeners in subscription order.
// It is not safe for concurrent use; it lives on the UI goroutine.
type Registry struct {
	entries []entry
	nextID  uint64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Subscribe adds l and returns its release function. Release may be called
// any number of times.
func (r *Registry) Subscribe(l Listener) (release func()) {
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, entry{id: id, listener: l})

	return func() {
		for i, e := range r.entries {
			if e.id == id {
				r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
				return
			}
		}
	}
}

// Dispatch offers msg to each listener until one consumes it. Listeners may
// release themselves while being called.
func (r *Registry) Dispatch(msg tea.Msg) (bool, tea.Cmd) {
	snapshot := make([]entry, len(r.entries))
	copy(snapshot, r.entries)

	var cmds []tea.Cmd
	for _, e := range snapshot {
		handled, cmd := e.listener(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return true, tea.Batch(cmds...)
		}
	}
	return false, tea.Batch(cmds...)
}

// Len returns the number of active subscriptions
func (r *Registry) Len() int {
	return len(r.entries)
}
