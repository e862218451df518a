package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rhythm/internal/agenda"
	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/domain"
)

// FormatInterpretation renders the category, estimate and priority guessed for a task.
func FormatInterpretation(t domain.TaskInterpretation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", t.Emoji, Bold(t.Text))
	fmt.Fprintf(&b, "  %s %s\n", Dim("Category  "), StylePurple.Render(Title(string(t.Category))))
	fmt.Fprintf(&b, "  %s %s\n", Dim("Estimate  "), agenda.FormatMinutes(t.EstimatedMinutes))
	fmt.Fprintf(&b, "  %s %s\n", Dim("Priority  "), PriorityBadge(t.Priority))
	fmt.Fprintf(&b, "  %s %d%%\n", Dim("Confidence"), t.Confidence)
	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Tags      "), strings.Join(t.Tags, ", "))
	}
	return b.String()
}

// FormatSchedule renders the date and time extracted from free text.
func FormatSchedule(s domain.ParsedSchedule, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Bold(s.CleanedText))

	when := Dim("no date")
	if s.Date != nil {
		when = fmt.Sprintf("%s %s", s.Date.Format("Mon Jan 2 2006"), Dim("("+RelativeDateFrom(*s.Date, now)+")"))
	}
	fmt.Fprintf(&b, "  %s %s\n", Dim("Date"), when)

	clock := Dim("no time")
	if s.Time != nil {
		clock = *s.Time
	}
	fmt.Fprintf(&b, "  %s %s\n", Dim("Time"), clock)

	if s.DayOfWeek != nil && *s.DayOfWeek >= 0 && *s.DayOfWeek < 7 {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Day "), domain.WeekdayNames[*s.DayOfWeek])
	}
	if s.IsPast {
		fmt.Fprintf(&b, "  %s\n", StyleRed.Render("already in the past"))
	}
	return b.String()
}

// FormatInsight renders the interpretation, schedule, prediction and reminder for one task.
func FormatInsight(resp *app.InsightResponse, now time.Time) string {
	var b strings.Builder
	b.WriteString(FormatInterpretation(resp.Interpretation))
	b.WriteString("\n")

	if resp.Schedule.Date != nil || resp.Schedule.Time != nil {
		b.WriteString(Header("Schedule") + "\n")
		b.WriteString(FormatSchedule(resp.Schedule, now))
		b.WriteString("\n")
	}

	p := resp.Prediction
	b.WriteString(Header("Prediction") + "\n")
	fmt.Fprintf(&b, "  %s %s\n", Dim("Now     "), RenderProgress(p.CompleteNowScore, 20))
	fmt.Fprintf(&b, "  %s %s\n", Dim("Later   "), RenderProgress(p.CompleteLaterScore, 20))
	fmt.Fprintf(&b, "  %s %s\n", Dim("Tomorrow"), RenderProgress(p.CompleteTomorrowScore, 20))
	for _, f := range p.Factors {
		fmt.Fprintf(&b, "  %s %s %s\n", f.Emoji, Signed(f.Impact), f.Label)
	}
	if p.OptimalTimeSlot != "" {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Best slot"), p.OptimalTimeSlot)
	}
	if p.Recommendation != "" {
		fmt.Fprintf(&b, "  %s %s\n", StyleBlue.Render("→"), p.Recommendation)
	}
	b.WriteString("\n")

	r := resp.Reminder
	b.WriteString(Header("Reminder") + "\n")
	fmt.Fprintf(&b, "  %s %s %s\n", UrgencyBadge(r.Urgency), ClockFrom(r.SuggestedTime, now), Dim("("+string(r.Tone)+")"))
	fmt.Fprintf(&b, "  %s\n", r.Message)
	return b.String()
}
