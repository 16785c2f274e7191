package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI.
// Styles that wrap clickable text must not add borders or margins; the
// widgets measure rendered segments to place their click zones.
type Styles struct {
	Title         lipgloss.Style
	Section       lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Scroll        lipgloss.Style
	Marker        lipgloss.Style
	MarkerOpen    lipgloss.Style
	Tag           lipgloss.Style
	TagRemove     lipgloss.Style
	TagCursor     lipgloss.Style
	Option        lipgloss.Style
	OptionFocused lipgloss.Style
	Check         lipgloss.Style
	ClearAll      lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Highlight     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Section:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Help:          lipgloss.NewStyle().Faint(true),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Marker:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		MarkerOpen:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Tag:           lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")).Foreground(lipgloss.Color("252")),
		TagRemove:     lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("203")),
		TagCursor:     lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("99")).Foreground(lipgloss.Color("231")),
		Option:        lipgloss.NewStyle(),
		OptionFocused: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Check:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		ClearAll:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Underline(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}
