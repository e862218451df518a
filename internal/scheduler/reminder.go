package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
)

const (
	lastReminderHour     = 21
	quickTaskMaxMinutes  = 15
	urgentNowMaxMinutes  = 30
	deepWorkMinMinutes   = 60
	deepWorkCutoffHour   = 15
	defaultCutoffHour    = 17
	defaultGapHours      = 2
	lowMoodMax           = 4
	motivationalTodayMin = 70
	soonMaxGapHours      = 2
)

// ReminderInput is everything needed to pick a reminder for one task.
type ReminderInput struct {
	Task  domain.TaskInterpretation
	Now   time.Time
	State UserState
}

// GenerateReminder picks a reminder time, urgency, tone and message.
func GenerateReminder(in ReminderInput) domain.AdaptiveReminder {
	hour, dayOffset := suggestHour(in)

	var at time.Time
	if dayOffset == 0 && hour == in.Now.Hour() {
		at = in.Now.Truncate(time.Minute)
	} else {
		d := in.Now.AddDate(0, 0, dayOffset)
		at = time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, in.Now.Location())
	}

	urgency := urgencyFor(hour-in.Now.Hour(), dayOffset)
	tone := toneFor(in)
	return domain.AdaptiveReminder{
		SuggestedTime: at,
		SuggestedHour: hour,
		Urgency:       urgency,
		Tone:          tone,
		Message:       fmt.Sprintf(reminderTemplates[tone][urgency], in.Task.Text),
	}
}

// suggestHour is the reminder decision tree. It returns the hour and whether
// the reminder falls today (0) or tomorrow (1).
func suggestHour(in ReminderInput) (hour, dayOffset int) {
	now := in.Now.Hour()
	task := in.Task
	nextHour := func(fallback int) (int, int) {
		if now+1 > lastReminderHour {
			return fallback, 1
		}
		return now + 1, 0
	}

	switch {
	case task.Priority == domain.PriorityHigh:
		if task.EstimatedMinutes <= urgentNowMaxMinutes && now <= lastReminderHour {
			return now, 0
		}
		return nextHour(9)
	case task.Category.IsBodyCare():
		switch {
		case now < 7:
			return 7, 0
		case now < 18:
			return 18, 0
		default:
			return 7, 1
		}
	case task.Category.IsDeepWork() && task.EstimatedMinutes >= deepWorkMinMinutes:
		peak := in.State.PeakHour
		switch {
		case now < peak:
			return peak, 0
		case now < deepWorkCutoffHour:
			return now + 1, 0
		default:
			return peak, 1
		}
	case task.EstimatedMinutes <= quickTaskMaxMinutes:
		return nextHour(9)
	case now < defaultCutoffHour:
		return now + defaultGapHours, 0
	default:
		return 10, 1
	}
}

func urgencyFor(gap, dayOffset int) domain.Urgency {
	switch {
	case dayOffset > 0:
		return domain.UrgencyTomorrow
	case gap <= 0:
		return domain.UrgencyNow
	case gap <= soonMaxGapHours:
		return domain.UrgencySoon
	default:
		return domain.UrgencyLater
	}
}

// toneFor applies a fixed precedence: low mood, then a strong day, then
// priority, then accountability.
func toneFor(in ReminderInput) domain.Tone {
	mood := in.State.RecentMood
	switch {
	case mood >= 1 && mood <= lowMoodMax:
		return domain.ToneGentle
	case in.State.HasToday && in.State.TodayRate >= motivationalTodayMin:
		return domain.ToneMotivational
	case in.Task.Priority == domain.PriorityHigh:
		return domain.ToneDirect
	default:
		return domain.ToneAccountability
	}
}

var reminderTemplates = map[domain.Tone]map[domain.Urgency]string{
	domain.ToneGentle: {
		domain.UrgencyNow:      "No pressure. If you feel up to it, %s is waiting.",
		domain.UrgencySoon:     "Be kind to yourself. Maybe try %s in a little while.",
		domain.UrgencyLater:    "Rest first. %s can wait until later today.",
		domain.UrgencyTomorrow: "Tomorrow is a fresh start for %s.",
	},
	domain.ToneDirect: {
		domain.UrgencyNow:      "Do it now: %s.",
		domain.UrgencySoon:     "Within the next couple of hours: %s.",
		domain.UrgencyLater:    "Block time later today for %s.",
		domain.UrgencyTomorrow: "First thing tomorrow: %s.",
	},
	domain.ToneMotivational: {
		domain.UrgencyNow:      "You're on a roll! Knock out %s now.",
		domain.UrgencySoon:     "Keep the streak alive: %s is next.",
		domain.UrgencyLater:    "Great day so far. Save some energy for %s.",
		domain.UrgencyTomorrow: "Carry today's momentum into %s tomorrow.",
	},
	domain.ToneAccountability: {
		domain.UrgencyNow:      "You planned %s. Now is the time.",
		domain.UrgencySoon:     "Reminder: %s is on your list for today.",
		domain.UrgencyLater:    "Don't let %s slip. It's scheduled for later today.",
		domain.UrgencyTomorrow: "%s is moved to tomorrow. Make it count.",
	},
}
