package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/idilsaglam/tada/internal/model"
)

const maxCellWidth = 40

// Table lays out rendered rows under the attribute headers. Each cell is
// styled by its class.
func Table(rows []model.Row) string {
	headers := model.Headers()
	for i, h := range headers {
		headers[i] = strings.ToUpper(h)
	}

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = make([]string, len(r.Cells))
		for j, c := range r.Cells {
			data[i][j] = truncate(c.Text, maxCellWidth)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(current.Border).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Inherit(current.Title)
			}
			if row < 0 || row >= len(rows) || col >= len(rows[row].Cells) {
				return base
			}
			return base.Inherit(ClassStyle(rows[row].Cells[col].Class))
		})
	return t.Render()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
