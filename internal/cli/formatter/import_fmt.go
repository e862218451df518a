package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/domain"
)

// FormatImport renders the outcome of one snapshot import.
func FormatImport(res *app.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Imported %s %s\n",
		StyleGreen.Render("✔"), Bold(res.Batch.Source), Dim("("+res.Batch.Format+")"))
	fmt.Fprintf(&b, "  %s %d %s\n", Dim("Months"), len(res.MonthKeys), Dim(keyList(res.MonthKeys)))
	fmt.Fprintf(&b, "  %s %d %s\n", Dim("Weeks "), len(res.WeekKeys), Dim(keyList(res.WeekKeys)))
	fmt.Fprintf(&b, "  %s %s\n", Dim("Batch "), TruncID(res.Batch.ID))
	return b.String()
}

func keyList(keys []string) string {
	switch len(keys) {
	case 0:
		return ""
	case 1:
		return keys[0]
	default:
		return keys[0] + " .. " + keys[len(keys)-1]
	}
}

// FormatImports renders recent import batches, newest first.
func FormatImports(batches []domain.ImportBatch, now time.Time) string {
	if len(batches) == 0 {
		return Dim("No imports yet. Run 'rhythm import <file>' to load history.") + "\n"
	}
	headers := []string{"ID", "SOURCE", "FORMAT", "MONTHS", "WEEKS", "IMPORTED"}
	rows := make([][]string, 0, len(batches))
	for _, batch := range batches {
		rows = append(rows, []string{
			TruncID(batch.ID),
			batch.Source,
			batch.Format,
			fmt.Sprintf("%d", batch.Months),
			fmt.Sprintf("%d", batch.Weeks),
			ClockFrom(batch.ImportedAt, now),
		})
	}
	return Header("Imports") + "\n" + RenderTable(headers, rows)
}
