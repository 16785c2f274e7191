package ui

import (
	"tzpick/internal/timezones"
)

// optionsLoadedMsg carries the outcome of the options load
type optionsLoadedMsg struct {
	result timezones.Result
	err    error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
