package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampPct(pct int) int {
	return min(max(pct, 0), 100)
}

// RenderProgress renders a 0..100 percentage as [████░░░░]  45%.
// The bar is colored green from 66, yellow from 33 and red below.
func RenderProgress(pct int, width int) string {
	pct = clampPct(pct)
	return fmt.Sprintf("[%s] %3d%%", RenderCompactBar(pct, width), pct)
}

// RenderCompactBar renders only the colored blocks of a progress bar.
func RenderCompactBar(pct int, width int) string {
	pct = clampPct(pct)
	if width < 2 {
		width = 2
	}
	filled := pct * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return ScoreStyle(pct).Render(bar)
}
