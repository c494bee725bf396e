package present

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/amishk599/jobharvester/internal/model"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	tableLinkStyle = tableCellStyle.
			Foreground(lipgloss.Color("245"))
)

// Table renders jobs as a bordered table. width limits the table width when
// positive; columns wrap to fit.
func Table(w io.Writer, jobs []model.Job, width int) error {
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, Row(j))
	}

	linkCol := len(Columns) - 1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == linkCol:
				return tableLinkStyle
			default:
				return tableCellStyle
			}
		}).
		Headers(Columns...).
		Rows(rows...)
	if width > 0 {
		t = t.Width(width)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
