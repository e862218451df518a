package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rhythm/internal/agenda"
	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/domain"
)

// FormatAgenda renders today's agenda with one line per item plus its reminder.
func FormatAgenda(resp *app.AgendaResponse, now time.Time) string {
	a := resp.Agenda
	s := a.Summary
	var b strings.Builder

	summary := fmt.Sprintf("%s\n\n%s %d  %s %d  %s %d  %s %s\n%s %s  %s %s",
		Bold(s.Headline),
		Dim("Items"), s.TotalItems,
		Dim("Habits"), s.Habits,
		Dim("Tasks"), s.Tasks,
		Dim("Overdue"), overdueCount(s.Overdue),
		Dim("Planned"), agenda.FormatMinutes(s.EstimatedMinutes),
		Dim("Avg now-score"), Score(s.AverageNowScore))
	b.WriteString(RenderBox("Agenda · "+a.Date.Format("Mon Jan 2"), summary))
	b.WriteString("\n\n")

	if len(a.Items) == 0 {
		b.WriteString(Dim("Nothing planned for today.\n"))
		return b.String()
	}

	for i, it := range a.Items {
		fmt.Fprintf(&b, "%s %s %s %s\n",
			Dim(fmt.Sprintf("%2d.", i+1)), kindMarker(it.Kind), it.Interpretation.Emoji, Bold(it.Text))
		fmt.Fprintf(&b, "    %s  %s  %s  %s %s\n",
			PriorityBadge(it.Interpretation.Priority),
			StylePurple.Render(string(it.Interpretation.Category)),
			agenda.FormatMinutes(it.Interpretation.EstimatedMinutes),
			Dim("now"), Score(it.Prediction.CompleteNowScore))
		fmt.Fprintf(&b, "    %s %s %s\n",
			UrgencyBadge(it.Reminder.Urgency), Dim(ClockFrom(it.Reminder.SuggestedTime, now)), it.Reminder.Message)
	}
	return b.String()
}

func kindMarker(k domain.AgendaItemKind) string {
	switch k {
	case domain.ItemOverdue:
		return StyleRed.Render("[overdue]")
	case domain.ItemHabit:
		return StyleGreen.Render("[habit]")
	default:
		return StyleBlue.Render("[task]")
	}
}

func overdueCount(n int) string {
	if n > 0 {
		return StyleRed.Render(fmt.Sprintf("%d", n))
	}
	return fmt.Sprintf("%d", n)
}
