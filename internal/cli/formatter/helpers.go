package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
// Days are counted between calendar dates in now's location.
func RelativeDateFrom(t time.Time, now time.Time) string {
	t = t.In(now.Location())
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := int(math.Round(b.Sub(a).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// ClockFrom renders t as "Tomorrow 09:00" relative to now.
func ClockFrom(t time.Time, now time.Time) string {
	return RelativeDateFrom(t, now) + " " + t.In(now.Location()).Format("15:04")
}

// Signed renders a trend delta with an explicit sign and color.
func Signed(v int) string {
	switch {
	case v > 0:
		return StyleGreen.Render(fmt.Sprintf("+%d", v))
	case v < 0:
		return StyleRed.Render(fmt.Sprintf("%d", v))
	default:
		return StyleDim.Render("0")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// bullets renders each line prefixed with a dim marker.
func bullets(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString("  " + Dim("•") + " " + l + "\n")
	}
	return b.String()
}
