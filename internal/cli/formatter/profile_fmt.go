package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rhythm/internal/agenda"
	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/domain"
)

// FormatProfile renders the full behavior profile.
func FormatProfile(resp *app.ProfileResponse) string {
	p := resp.Profile
	var b strings.Builder

	summary := fmt.Sprintf("%s %s\n%s %d\n%s %s  %s",
		Dim("Generated"), p.GeneratedAt.Format("Mon Jan 2 2006 15:04"),
		Dim("Tracked days"), p.TrackedDays,
		Dim("Burnout"), StageIndicator(p.Burnout.Stage), Dim(fmt.Sprintf("risk %d/100", p.Burnout.RiskLevel)))
	if resp.Months > 0 || resp.Weeks > 0 {
		summary += "\n" + Dim(fmt.Sprintf("%d months and %d weeks loaded", resp.Months, resp.Weeks))
	}
	b.WriteString(RenderBox("Behavior Profile", summary))
	b.WriteString("\n\n")

	if !p.HasEnoughData {
		b.WriteString(StyleYellow.Render("Not enough history yet."))
		b.WriteString(Dim(" Keep tracking for a couple of weeks for reliable insights.\n\n"))
	}

	if len(p.Habits) > 0 {
		b.WriteString(Header("Habits") + "\n")
		b.WriteString(FormatHabits(p.Habits))
		b.WriteString("\n")
	}

	b.WriteString(formatMood(p.Mood))
	b.WriteString(formatFocus(p.Focus))
	b.WriteString(formatProcrastination(p.Procrastination))
	b.WriteString(formatBurnout(p.Burnout))

	if len(p.Patterns) > 0 {
		b.WriteString(Header("Patterns") + "\n")
		for _, pat := range p.Patterns {
			fmt.Fprintf(&b, "  %s %s %s %s\n", PatternMarker(pat.Kind), pat.Emoji, Bold(pat.Title), Dim(fmt.Sprintf("(%d%%)", pat.Confidence)))
			fmt.Fprintf(&b, "      %s\n", pat.Description)
		}
		b.WriteString("\n")
	}

	if len(p.Recommendations) > 0 {
		b.WriteString(Header("Recommendations") + "\n")
		for i, r := range p.Recommendations {
			fmt.Fprintf(&b, "  %d. %s %s %s\n", i+1, Bold(r.Title), PriorityBadge(r.Priority), StylePurple.Render(Title(string(r.ActionKind))))
			fmt.Fprintf(&b, "     %s\n", r.Description)
			if r.Rationale != "" {
				fmt.Fprintf(&b, "     %s\n", Dim(r.Rationale))
			}
		}
		b.WriteString("\n")
	}

	if len(p.Routines) > 0 {
		b.WriteString(FormatRoutines(p.Routines, p.GeneratedAt))
	}
	return b.String()
}

// FormatHabits renders one row per habit profile.
func FormatHabits(habits []domain.HabitProfile) string {
	headers := []string{"HABIT", "RATE", "STREAK", "BEST", "TREND", "CONSISTENCY", "RISK", ""}
	rows := make([][]string, 0, len(habits))
	for _, h := range habits {
		auto := ""
		if h.IsAutomatic {
			auto = StyleGreen.Render("automatic")
		}
		best := h.BestDay
		if best == "" {
			best = "--"
		}
		risk := ScoreStyle(100 - h.AbandonmentRisk).Render(fmt.Sprintf("%d", h.AbandonmentRisk))
		rows = append(rows, []string{
			Bold(h.Name),
			RenderProgress(h.CompletionRate, 10),
			fmt.Sprintf("%d/%d", h.CurrentStreak, h.LongestStreak),
			best,
			Signed(h.Trend),
			Score(h.ConsistencyScore),
			risk,
			auto,
		})
	}
	return RenderTable(headers, rows)
}

func formatMood(m domain.MoodAnalysis) string {
	if m.SampleSize == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header("Mood") + "\n")
	fmt.Fprintf(&b, "  %s %.1f %s\n", Dim("Average mood      "), m.AverageMood, trendArrow(m.MoodTrend))
	fmt.Fprintf(&b, "  %s %.1f %s\n", Dim("Average motivation"), m.AverageMotivation, trendArrow(m.MotivationTrend))
	fmt.Fprintf(&b, "  %s %d%% vs %d%%\n", Dim("Good vs low mood days"), m.HighMoodCompletion, m.LowMoodCompletion)
	fmt.Fprintf(&b, "  %s %d %s\n\n", Dim("Mood/completion link"), m.MoodCompletionCorrelation, Dim(fmt.Sprintf("(%d days)", m.SampleSize)))
	return b.String()
}

func trendArrow(v float64) string {
	switch {
	case v > 0.05:
		return StyleGreen.Render(fmt.Sprintf("↑ %+.2f", v))
	case v < -0.05:
		return StyleRed.Render(fmt.Sprintf("↓ %+.2f", v))
	default:
		return Dim("→ steady")
	}
}

func formatFocus(f domain.FocusAnalysis) string {
	var b strings.Builder
	b.WriteString(Header("Focus") + "\n")
	for i, name := range domain.WeekdayNames {
		fmt.Fprintf(&b, "  %-4s %s %3d%%\n", name[:3], RenderCompactBar(f.WeekdayHeatmap[i], 20), f.WeekdayHeatmap[i])
	}
	if f.BestDay != "" {
		fmt.Fprintf(&b, "  %s %s  %s %s\n", Dim("Best"), StyleGreen.Render(f.BestDay), Dim("Worst"), StyleRed.Render(f.WorstDay))
	}
	fmt.Fprintf(&b, "  %s %s  %s %s  %s %s\n",
		Dim("Morning"), Score(f.MorningScore),
		Dim("Afternoon"), Score(f.AfternoonScore),
		Dim("Evening"), Score(f.EveningScore))
	for _, w := range f.PeakWindows {
		fmt.Fprintf(&b, "  %s %s %02d:00-%02d:00 %s\n", Dim("Peak"), w.Label, w.StartHour, w.EndHour, Dim(fmt.Sprintf("(%d)", w.Score)))
	}
	b.WriteString("\n")
	return b.String()
}

func formatProcrastination(p domain.ProcrastinationAnalysis) string {
	var b strings.Builder
	b.WriteString(Header("Procrastination") + "\n")
	fmt.Fprintf(&b, "  %s %s  %s %d%%  %s %s\n",
		Dim("Score"), ScoreStyle(100-p.Score).Render(fmt.Sprintf("%d", p.Score)),
		Dim("Overdue"), p.OverdueRatio,
		Dim("Recovery"), Title(string(p.RecoverySpeed)))
	if p.AverageSlumpDays > 0 {
		fmt.Fprintf(&b, "  %s %.1f days\n", Dim("Average slump"), p.AverageSlumpDays)
	}
	for _, t := range p.Triggers {
		fmt.Fprintf(&b, "  %s %s %s\n", StyleYellow.Render("!"), Bold(t.Title), Dim(fmt.Sprintf("(%d%%)", t.Confidence)))
		fmt.Fprintf(&b, "      %s\n", t.Description)
		if t.Suggestion != "" {
			fmt.Fprintf(&b, "      %s %s\n", StyleBlue.Render("→"), t.Suggestion)
		}
	}
	b.WriteString("\n")
	return b.String()
}

func formatBurnout(a domain.BurnoutAnalysis) string {
	var b strings.Builder
	b.WriteString(Header("Burnout") + "\n")
	fmt.Fprintf(&b, "  %s  %s\n", StageIndicator(a.Stage), RenderProgress(a.RiskLevel, 20))
	if a.DaysUntilCritical != nil {
		fmt.Fprintf(&b, "  %s\n", StyleRed.Render(fmt.Sprintf("About %d days until critical at the current pace", *a.DaysUntilCritical)))
	}
	for _, f := range a.Factors {
		fmt.Fprintf(&b, "  %s %s %s\n", StyleYellow.Render(fmt.Sprintf("%+3d", f.Impact)), f.Label, Dim(f.Detail))
	}
	if len(a.Suggestions) > 0 {
		b.WriteString(bullets(a.Suggestions))
	}
	b.WriteString("\n")
	return b.String()
}

// FormatRoutines renders suggested recurring routines with their next run.
func FormatRoutines(routines []domain.RoutineSuggestion, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Routines") + "\n")
	if len(routines) == 0 {
		b.WriteString(Dim("  No routine suggestions yet.\n"))
		return b.String()
	}
	headers := []string{"ROUTINE", "START", "LENGTH", "SCHEDULE", "NEXT"}
	rows := make([][]string, 0, len(routines))
	for _, r := range routines {
		next := "--"
		if !r.NextRun.IsZero() {
			next = ClockFrom(r.NextRun, now)
		}
		rows = append(rows, []string{Bold(r.Title), r.StartTime, agenda.FormatMinutes(r.DurationMinutes), Dim(r.Cron), next})
	}
	b.WriteString(RenderTable(headers, rows))
	for _, r := range routines {
		fmt.Fprintf(&b, "  %s %s\n", StyleBlue.Render(r.Title+":"), Dim(r.Reason))
	}
	return b.String()
}
