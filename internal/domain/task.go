package domain

import "time"

type TaskInterpretation struct {
	Text             string   `json:"text"`
	Category         Category `json:"category"`
	EstimatedMinutes int      `json:"estimatedMinutes"`
	Priority         Priority `json:"priority"`
	Tags             []string `json:"tags"`
	Confidence       int      `json:"confidence"`
	Emoji            string   `json:"emoji"`
}

// HasTag reports whether tag is present.
func (t TaskInterpretation) HasTag(tag string) bool {
	for _, x := range t.Tags {
		if x == tag {
			return true
		}
	}
	return false
}

type PredictionFactor struct {
	Label  string `json:"label"`
	Impact int    `json:"impact"`
	Emoji  string `json:"emoji"`
}

type PredictiveScore struct {
	CompleteNowScore      int                `json:"completeNowScore"`
	CompleteLaterScore    int                `json:"completeLaterScore"`
	CompleteTomorrowScore int                `json:"completeTomorrowScore"`
	Factors               []PredictionFactor `json:"factors"`
	OptimalTimeSlot       string             `json:"optimalTimeSlot"`
	Recommendation        string             `json:"recommendation"`
}

type AdaptiveReminder struct {
	SuggestedTime time.Time `json:"suggestedTime"`
	SuggestedHour int       `json:"suggestedHour"`
	Urgency       Urgency   `json:"urgency"`
	Tone          Tone      `json:"tone"`
	Message       string    `json:"message"`
}

// ParsedSchedule is the result of extracting a date/time from free text.
// Date is midnight in the reference instant's location; Time is "HH:MM".
type ParsedSchedule struct {
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	DayOfWeek   *int       `json:"dayOfWeek"`
	CleanedText string     `json:"cleanedText"`
	IsToday     bool       `json:"isToday"`
	IsTomorrow  bool       `json:"isTomorrow"`
	IsPast      bool       `json:"isPast"`
}

type AgendaItem struct {
	ID             string             `json:"id"`
	Kind           AgendaItemKind     `json:"kind"`
	Text           string             `json:"text"`
	Interpretation TaskInterpretation `json:"interpretation"`
	Schedule       ParsedSchedule     `json:"schedule"`
	Prediction     PredictiveScore    `json:"prediction"`
	Reminder       AdaptiveReminder   `json:"reminder"`
}

type AgendaSummary struct {
	TotalItems       int    `json:"totalItems"`
	HighPriority     int    `json:"highPriority"`
	Habits           int    `json:"habits"`
	Tasks            int    `json:"tasks"`
	Overdue          int    `json:"overdue"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	AverageNowScore  int    `json:"averageNowScore"`
	Headline         string `json:"headline"`
}

type EnhancedDailyAgenda struct {
	Date    time.Time     `json:"date"`
	Items   []AgendaItem  `json:"items"`
	Summary AgendaSummary `json:"summary"`
}
