package multiselect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tzpick/internal/domain"
	"tzpick/internal/ui/logic"
)

const (
	// NoOptionsAvailable is shown when the option set itself is empty
	NoOptionsAvailable = "No options available"
	// NoOptionsFound is shown when the search matches nothing
	NoOptionsFound = "No options found"
	// ClearAllLabel is the dropdown's clear-all affordance
	ClearAllLabel = "Clear all"
)

type zoneKind int

const (
	zoneControl zoneKind = iota
	zoneTagRemove
	zoneOption
	zoneClearAll
)

// zone is a clickable span on one row; x1 is exclusive
type zone struct {
	kind  zoneKind
	row   int
	x0    int
	x1    int
	index int
	value string
}

type frame struct {
	lines []string
	zones []zone
	width int
}

// hit returns the first zone under (x, y). Zones are ordered so that nested
// targets such as a tag's remove button come before the row they sit on.
func (f frame) hit(x, y int) (zone, bool) {
	for _, z := range f.zones {
		if z.row == y && x >= z.x0 && x < z.x1 {
			return z, true
		}
	}
	return zone{}, false
}

// Row is one visible dropdown entry
type Row struct {
	Index    int // position in the filtered list
	Option   domain.Option
	Selected bool
	Focused  bool
}

// Tags returns the labels of the selected options, in selection order.
// Values without a matching option are skipped.
func (m *Model) Tags() []string {
	var tags []string
	for _, v := range m.selected {
		if opt, ok := domain.FindOption(m.options, v); ok {
			tags = append(tags, opt.Label)
		}
	}
	return tags
}

// ShowPlaceholder reports whether the placeholder text is displayed
func (m *Model) ShowPlaceholder() bool {
	return len(m.selected) == 0 && m.input.Value() == ""
}

// ShowClearAll reports whether the dropdown offers clear-all
func (m *Model) ShowClearAll() bool {
	return m.open && len(m.selected) > 0
}

// EmptyMessage returns the text shown instead of rows, or "" when there are rows
func (m *Model) EmptyMessage() string {
	if !m.open || len(m.Filtered()) > 0 {
		return ""
	}
	if len(m.options) == 0 {
		return NoOptionsAvailable
	}
	return NoOptionsFound
}

// Rows returns the dropdown entries inside the scroll window
func (m *Model) Rows() []Row {
	if !m.open {
		return nil
	}
	filtered := m.Filtered()
	start, end := m.viewport.Window(len(filtered))

	rows := make([]Row, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, Row{
			Index:    i,
			Option:   filtered[i],
			Selected: logic.Contains(m.selected, filtered[i].Value),
			Focused:  i == m.focused,
		})
	}
	return rows
}

// View renders the widget
func (m *Model) View() string {
	return strings.Join(m.render().lines, "\n")
}

// Height returns the number of rows the widget occupies
func (m *Model) Height() int {
	return len(m.render().lines)
}

// Contains reports whether the screen cell (x, y) lies inside the widget
func (m *Model) Contains(x, y int) bool {
	return m.contains(x-m.originX, y-m.originY)
}

func (m *Model) contains(x, y int) bool {
	f := m.render()
	return y >= 0 && y < len(f.lines) && x >= 0 && x < f.width
}

func (m *Model) render() frame {
	s := m.styles
	f := frame{}

	// Control row: marker, tags, search input
	var b strings.Builder
	marker := s.Marker.Render("▸ ")
	if m.open {
		marker = s.MarkerOpen.Render("▾ ")
	}
	b.WriteString(marker)
	col := lipgloss.Width(marker)

	for _, v := range m.selected {
		opt, ok := domain.FindOption(m.options, v)
		if !ok {
			continue
		}
		tag := s.Tag.Render(opt.Label)
		remove := s.TagRemove.Render("×")
		b.WriteString(tag)
		col += lipgloss.Width(tag)
		f.zones = append(f.zones, zone{kind: zoneTagRemove, row: 0, x0: col, x1: col + lipgloss.Width(remove), value: v})
		b.WriteString(remove)
		col += lipgloss.Width(remove)
		b.WriteString(" ")
		col++
	}
	b.WriteString(m.input.View())
	f.lines = append(f.lines, b.String())

	if m.open {
		m.renderDropdown(&f)
	}

	f.width = m.width
	for _, l := range f.lines {
		f.width = max(f.width, lipgloss.Width(l))
	}
	for i, l := range f.lines {
		if pad := f.width - lipgloss.Width(l); pad > 0 {
			f.lines[i] = l + strings.Repeat(" ", pad)
		}
	}

	// The control row is clickable across the full width, after any tag buttons
	f.zones = append(f.zones, zone{kind: zoneControl, row: 0, x0: 0, x1: f.width})
	for i := range f.zones {
		if f.zones[i].kind == zoneOption {
			f.zones[i].x1 = f.width
		}
	}
	return f
}

func (m *Model) renderDropdown(f *frame) {
	s := m.styles
	filtered := m.Filtered()

	if len(filtered) == 0 {
		f.lines = append(f.lines, "  "+s.Dim.Render(m.EmptyMessage()))
	} else {
		start, end := m.viewport.Window(len(filtered))
		if start > 0 {
			f.lines = append(f.lines, "  "+s.Scroll.Render("↑ more above"))
		}
		for _, row := range m.Rows() {
			check := "[ ]"
			if row.Selected {
				check = s.Check.Render("[x]")
			}
			pointer := "  "
			style := s.Option
			if row.Focused {
				pointer = s.Highlight.Render("› ")
				style = s.OptionFocused
			}
			line := pointer + check + " " + style.Render(row.Option.Label)
			f.zones = append(f.zones, zone{kind: zoneOption, row: len(f.lines), x0: 0, index: row.Index, value: row.Option.Value})
			f.lines = append(f.lines, line)
		}
		if end < len(filtered) {
			f.lines = append(f.lines, "  "+s.Scroll.Render("↓ more below"))
		}
	}

	if len(m.selected) > 0 {
		label := s.ClearAll.Render(ClearAllLabel)
		f.zones = append(f.zones, zone{kind: zoneClearAll, row: len(f.lines), x0: 2, x1: 2 + lipgloss.Width(label)})
		f.lines = append(f.lines, "  "+label)
	}
}
