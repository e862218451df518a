package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/stretchr/testify/assert"
)

func remind(c domain.Category, minutes int, p domain.Priority, hour int, state UserState) domain.AdaptiveReminder {
	tk := task(c, minutes, p)
	tk.Text = "Send report"
	return GenerateReminder(ReminderInput{Task: tk, Now: at(hour), State: state})
}

func TestGenerateReminder_DecisionTree(t *testing.T) {
	cases := []struct {
		name     string
		category domain.Category
		minutes  int
		priority domain.Priority
		hour     int
		wantHour int
		wantDay  int // 31 = today, 1 = tomorrow (April 1)
		urgency  domain.Urgency
	}{
		{"high quick is now", domain.CategoryWork, 20, domain.PriorityHigh, 14, 14, 31, domain.UrgencyNow},
		{"high long is next hour", domain.CategoryWork, 90, domain.PriorityHigh, 14, 15, 31, domain.UrgencySoon},
		{"high long late rolls to tomorrow", domain.CategoryWork, 90, domain.PriorityHigh, 22, 9, 1, domain.UrgencyTomorrow},
		{"body care early", domain.CategoryFitness, 45, domain.PriorityMedium, 6, 7, 31, domain.UrgencySoon},
		{"body care daytime", domain.CategoryHealth, 30, domain.PriorityMedium, 10, 18, 31, domain.UrgencyLater},
		{"body care evening", domain.CategoryWellness, 15, domain.PriorityMedium, 20, 7, 1, domain.UrgencyTomorrow},
		{"deep work before peak", domain.CategoryStudy, 90, domain.PriorityMedium, 7, 9, 31, domain.UrgencySoon},
		{"deep work after peak", domain.CategoryStudy, 90, domain.PriorityMedium, 12, 13, 31, domain.UrgencySoon},
		{"deep work late", domain.CategoryCreative, 120, domain.PriorityLow, 16, 9, 1, domain.UrgencyTomorrow},
		{"quick task", domain.CategoryErrands, 10, domain.PriorityMedium, 14, 15, 31, domain.UrgencySoon},
		{"default daytime", domain.CategoryErrands, 30, domain.PriorityMedium, 9, 11, 31, domain.UrgencySoon},
		{"default evening", domain.CategoryHome, 30, domain.PriorityMedium, 18, 10, 1, domain.UrgencyTomorrow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := remind(tc.category, tc.minutes, tc.priority, tc.hour, neutralState())

			assert.Equal(t, tc.wantHour, got.SuggestedHour)
			assert.Equal(t, tc.wantHour, got.SuggestedTime.Hour())
			assert.Equal(t, tc.wantDay, got.SuggestedTime.Day())
			assert.Equal(t, tc.urgency, got.Urgency)
		})
	}
}

func TestGenerateReminder_NowKeepsCurrentMinute(t *testing.T) {
	now := time.Date(2026, time.March, 31, 14, 37, 12, 0, time.UTC)
	tk := task(domain.CategoryWork, 20, domain.PriorityHigh)

	got := GenerateReminder(ReminderInput{Task: tk, Now: now, State: neutralState()})

	assert.Equal(t, time.Date(2026, time.March, 31, 14, 37, 0, 0, time.UTC), got.SuggestedTime)
}

func TestGenerateReminder_TonePrecedence(t *testing.T) {
	lowMood := neutralState()
	lowMood.RecentMood = 3
	lowMood.HasToday = true
	lowMood.TodayRate = 90
	assert.Equal(t, domain.ToneGentle, remind(domain.CategoryWork, 20, domain.PriorityHigh, 14, lowMood).Tone)

	strongDay := neutralState()
	strongDay.RecentMood = 7
	strongDay.HasToday = true
	strongDay.TodayRate = 80
	assert.Equal(t, domain.ToneMotivational, remind(domain.CategoryWork, 20, domain.PriorityHigh, 14, strongDay).Tone)

	assert.Equal(t, domain.ToneDirect, remind(domain.CategoryWork, 20, domain.PriorityHigh, 14, neutralState()).Tone)
	assert.Equal(t, domain.ToneAccountability, remind(domain.CategoryWork, 20, domain.PriorityMedium, 14, neutralState()).Tone)
}

func TestGenerateReminder_MessageFromTemplate(t *testing.T) {
	got := remind(domain.CategoryWork, 20, domain.PriorityHigh, 14, neutralState())
	assert.Equal(t, "Do it now: Send report.", got.Message)
}

func TestReminderTemplates_CoverEveryToneAndUrgency(t *testing.T) {
	tones := []domain.Tone{domain.ToneGentle, domain.ToneDirect, domain.ToneMotivational, domain.ToneAccountability}
	urgencies := []domain.Urgency{domain.UrgencyNow, domain.UrgencySoon, domain.UrgencyLater, domain.UrgencyTomorrow}
	for _, tone := range tones {
		for _, u := range urgencies {
			assert.Contains(t, reminderTemplates[tone][u], "%s", "%s/%s", tone, u)
		}
	}
}
