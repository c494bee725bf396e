package present

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/amishk599/jobharvester/internal/model"
)

// WriteCSV writes jobs as comma-separated values with a header row.
func WriteCSV(w io.Writer, jobs []model.Job) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, j := range jobs {
		if err := cw.Write(Row(j)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
