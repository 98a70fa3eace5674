package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pseudomuto/storekeeper/pkg/warehouse"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Result renders res as a bordered table with one header row.
func (f *Formatter) Result(w io.Writer, res *warehouse.Result) error {
	rows := make([][]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = warehouse.AsString(v)
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(int, int) lipgloss.Style { return cellStyle }).
		Headers(res.Columns...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
