package domain

import "time"

// Habit is a habit tracked during a month or week.
type Habit struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// DayEntry is one calendar day inside a MonthRecord.
// Mood and Motivation are 1..10; zero means the user did not log them.
type DayEntry struct {
	CompletedHabitIDs []string `json:"completedHabitIds" yaml:"completedHabitIds"`
	Mood              int      `json:"mood,omitempty" yaml:"mood,omitempty"`
	Motivation        int      `json:"motivation,omitempty" yaml:"motivation,omitempty"`
}

// MonthRecord is the month-keyed ("YYYY-MM") storage unit supplied by callers.
// Days is keyed by day-of-month (1-based).
type MonthRecord struct {
	Key    string           `json:"key" yaml:"key"`
	Habits []Habit          `json:"habits" yaml:"habits"`
	Days   map[int]DayEntry `json:"days" yaml:"days"`
}

// Task is a planned task inside a WeekRecord. DayIndex is 0=Mon..6=Sun.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
	DayIndex  int    `json:"dayIndex" yaml:"dayIndex"`
}

// WeekRecord is the week-keyed ("YYYY-Www") storage unit supplied by callers.
// HabitCompletions maps a habit ID to the day indices it was completed on.
type WeekRecord struct {
	Key              string           `json:"key" yaml:"key"`
	Tasks            []Task           `json:"tasks" yaml:"tasks"`
	Habits           []Habit          `json:"habits,omitempty" yaml:"habits,omitempty"`
	HabitCompletions map[string][]int `json:"habitCompletions,omitempty" yaml:"habitCompletions,omitempty"`
	Notes            string           `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DayRecord is a flattened, derived view of one tracked calendar day.
type DayRecord struct {
	Date              time.Time
	DayOfWeek         int // 0=Mon..6=Sun
	CompletedHabitIDs map[string]bool
	TrackedHabitIDs   []string
	TotalHabits       int
	CompletionRate    int // 0..100
	Mood              int // 1..10, 0 when not logged
	Motivation        int // 1..10, 0 when not logged
}

// HasMood reports whether the user logged a mood for the day.
func (d DayRecord) HasMood() bool { return d.Mood > 0 }

// HasMotivation reports whether the user logged a motivation level for the day.
func (d DayRecord) HasMotivation() bool { return d.Motivation > 0 }

// IsPerfect reports whether every tracked habit was completed.
func (d DayRecord) IsPerfect() bool {
	return d.TotalHabits > 0 && len(d.CompletedHabitIDs) >= d.TotalHabits
}

// WeekSummary aggregates the tasks of one ISO week.
type WeekSummary struct {
	Key            string
	Start          time.Time
	TotalTasks     int
	CompletedTasks int
	OverdueTasks   int
}

// CompletionRate returns the completed-task percentage, or -1 when the week has no tasks.
func (w WeekSummary) CompletionRate() int {
	if w.TotalTasks == 0 {
		return -1
	}
	return RoundPct(float64(w.CompletedTasks) / float64(w.TotalTasks))
}

// ImportBatch records one snapshot import into the local store.
type ImportBatch struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Format     string    `json:"format"`
	Months     int       `json:"months"`
	Weeks      int       `json:"weeks"`
	ImportedAt time.Time `json:"importedAt"`
}
