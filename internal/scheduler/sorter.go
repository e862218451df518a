package scheduler

import (
	"sort"

	"github.com/alexanderramin/rhythm/internal/domain"
)

// CanonicalSort sorts agenda items by the deterministic canonical rules:
// 1. Priority: high > medium > low
// 2. Complete-now score: higher first
// 3. Text: lexical ascending
// 4. ID: lexical ascending
func CanonicalSort(items []domain.AgendaItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		// 1. Priority
		pa, pb := a.Interpretation.Priority.Rank(), b.Interpretation.Priority.Rank()
		if pa != pb {
			return pa < pb
		}

		// 2. Now score (higher first)
		if a.Prediction.CompleteNowScore != b.Prediction.CompleteNowScore {
			return a.Prediction.CompleteNowScore > b.Prediction.CompleteNowScore
		}

		// 3. Text (lexical)
		if a.Text != b.Text {
			return a.Text < b.Text
		}

		// 4. ID (lexical)
		return a.ID < b.ID
	})
}
