package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Title converts snake_case or lower-case labels such as "rescue_habit"
// into "Rescue Habit". A Caser keeps state, so each call gets its own.
func Title(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

// StageColor returns the style for a burnout stage.
func StageColor(stage domain.BurnoutStage) lipgloss.Style {
	switch stage {
	case domain.StageBurnout:
		return StyleRed
	case domain.StageWarning:
		return StyleYellow
	case domain.StageStrained:
		return StyleBlue
	case domain.StageThriving:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StageIndicator returns a colored stage indicator such as "● WARNING".
func StageIndicator(stage domain.BurnoutStage) string {
	if stage == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return StageColor(stage).Render("● " + strings.ToUpper(string(stage)))
}

// PriorityBadge renders a task or recommendation priority.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ high")
	case domain.PriorityMedium:
		return StyleYellow.Render("● medium")
	default:
		return StyleDim.Render("○ low")
	}
}

// UrgencyBadge renders a reminder urgency.
func UrgencyBadge(u domain.Urgency) string {
	switch u {
	case domain.UrgencyNow:
		return StyleRed.Render("now")
	case domain.UrgencySoon:
		return StyleYellow.Render("soon")
	case domain.UrgencyTomorrow:
		return StylePurple.Render("tomorrow")
	default:
		return StyleBlue.Render(string(u))
	}
}

// PatternMarker renders the sign of a behavior pattern.
func PatternMarker(kind domain.PatternKind) string {
	switch kind {
	case domain.PatternPositive:
		return StyleGreen.Render("+")
	case domain.PatternNegative:
		return StyleRed.Render("-")
	default:
		return StyleDim.Render("~")
	}
}

// ScoreStyle colors a 0..100 score: green from 66, yellow from 33, red below.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 66:
		return StyleGreen
	case score >= 33:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Score renders a 0..100 score with its color.
func Score(score int) string {
	return ScoreStyle(score).Render(fmt.Sprintf("%d", score))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
