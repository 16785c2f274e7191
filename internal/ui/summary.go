package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// SelectedHeader heads the summary of selected values
	SelectedHeader = "Selected Timezones:"
	// NoneSelected is shown in the summary when the selection is empty
	NoneSelected = "No timezones selected"
	// ClearAllLabel is the summary's clear-all button
	ClearAllLabel = "Clear All"
)

type summaryZoneKind int

const (
	summaryTag summaryZoneKind = iota
	summaryRemove
	summaryClearAll
)

// summaryZone is a clickable span; row is relative to the summary's first line
// and x1 is exclusive
type summaryZone struct {
	kind  summaryZoneKind
	row   int
	x0    int
	x1    int
	index int
	value string
}

type summaryFrame struct {
	top   int
	lines []string
	zones []summaryZone
}

// hit takes screen coordinates
func (f summaryFrame) hit(x, y int) (summaryZone, bool) {
	y -= f.top
	for _, z := range f.zones {
		if z.row == y && x >= z.x0 && x < z.x1 {
			return z, true
		}
	}
	return summaryZone{}, false
}

func (f summaryFrame) contains(y int) bool {
	return y >= f.top && y < f.top+len(f.lines)
}

// renderSummary lays out the header, the Clear All button and one removable
// tag per selected value. Tags wrap at the terminal width once it is known.
func (m *Model) renderSummary() summaryFrame {
	s := m.styles
	f := summaryFrame{}

	header := s.Section.Render(SelectedHeader)
	if len(m.selection) > 0 {
		col := lipgloss.Width(header) + 2
		label := s.ClearAll.Render(ClearAllLabel)
		f.zones = append(f.zones, summaryZone{kind: summaryClearAll, row: 0, x0: col, x1: col + lipgloss.Width(label)})
		header += "  " + label
	}
	f.lines = append(f.lines, header)

	if len(m.selection) == 0 {
		f.lines = append(f.lines, s.Dim.Render(NoneSelected))
		return f
	}

	var line strings.Builder
	col := 0
	for i, v := range m.selection {
		style := s.Tag
		if m.focus == focusSummary && i == m.cursor {
			style = s.TagCursor
		}
		tag := style.Render(v)
		remove := s.TagRemove.Render("×")
		tw, rw := lipgloss.Width(tag), lipgloss.Width(remove)

		if col > 0 && m.width > 0 && col+tw+rw > m.width {
			f.lines = append(f.lines, line.String())
			line.Reset()
			col = 0
		}
		row := len(f.lines)

		f.zones = append(f.zones, summaryZone{kind: summaryTag, row: row, x0: col, x1: col + tw, index: i, value: v})
		line.WriteString(tag)
		col += tw
		f.zones = append(f.zones, summaryZone{kind: summaryRemove, row: row, x0: col, x1: col + rw, index: i, value: v})
		line.WriteString(remove)
		col += rw
		line.WriteString(" ")
		col++
	}
	f.lines = append(f.lines, line.String())
	return f
}
