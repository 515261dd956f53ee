package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-animate/internal/entity"
)

// newInspectorTable creates the entity table shown while inspecting.
func newInspectorTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 18},
		{Title: "X", Width: 5},
		{Title: "Y", Width: 5},
		{Title: "Z", Width: 4},
		{Title: "Size", Width: 9},
		{Title: "Frame", Width: 7},
		{Title: "Physical", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, height-4)), // Leave room for the header and status line
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// inspectorRows lists the entities in drawing order.
func inspectorRows(views []entity.View) []table.Row {
	rows := make([]table.Row, len(views))
	for i, v := range views {
		p, size := v.Pos(), v.Size()
		physical := ""
		if v.Physical() {
			physical = "yes"
		}
		rows[i] = table.Row{
			v.Name(),
			strconv.Itoa(p.X),
			strconv.Itoa(p.Y),
			strconv.Itoa(p.Z),
			fmt.Sprintf("%dx%dx%d", size.Width, size.Height, size.Depth),
			fmt.Sprintf("%d/%d", v.Frame()+1, v.FrameCount()),
			physical,
		}
	}
	return rows
}
