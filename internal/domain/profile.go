package domain

import "time"

// WeekdayNames is indexed by DayRecord.DayOfWeek (0=Mon..6=Sun).
var WeekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayIndex converts a time.Weekday into the Monday-based index.
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

type HabitCorrelation struct {
	HabitID     string `json:"habitId"`
	Correlation int    `json:"correlation"`
}

type HabitProfile struct {
	HabitID          string             `json:"habitId"`
	Name             string             `json:"name"`
	ObservedDays     int                `json:"observedDays"`
	CompletionRate   int                `json:"completionRate"`
	CurrentStreak    int                `json:"currentStreak"`
	LongestStreak    int                `json:"longestStreak"`
	Trend            int                `json:"trend"`
	BestDay          string             `json:"bestDay,omitempty"`
	WorstDay         string             `json:"worstDay,omitempty"`
	ConsistencyScore int                `json:"consistencyScore"`
	AbandonmentRisk  int                `json:"abandonmentRisk"`
	IsAutomatic      bool               `json:"isAutomatic"`
	CorrelatedHabits []HabitCorrelation `json:"correlatedHabits"`
}

type BehaviorPattern struct {
	ID          string      `json:"id"`
	Kind        PatternKind `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Confidence  int         `json:"confidence"`
	Emoji       string      `json:"emoji"`
}

type Recommendation struct {
	ID          string     `json:"id"`
	Priority    Priority   `json:"priority"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ActionKind  ActionKind `json:"actionKind"`
	Rationale   string     `json:"rationale"`
}

type MoodAnalysis struct {
	SampleSize                int     `json:"sampleSize"`
	AverageMood               float64 `json:"averageMood"`
	AverageMotivation         float64 `json:"averageMotivation"`
	MoodTrend                 float64 `json:"moodTrend"`
	MotivationTrend           float64 `json:"motivationTrend"`
	MoodCompletionCorrelation int     `json:"moodCompletionCorrelation"`
	HighMoodCompletion        int     `json:"highMoodCompletion"`
	LowMoodCompletion         int     `json:"lowMoodCompletion"`
}

type FocusWindow struct {
	Label     string `json:"label"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Score     int    `json:"score"`
}

type FocusAnalysis struct {
	WeekdayHeatmap  [7]int        `json:"weekdayHeatmap"`
	BestDay         string        `json:"bestDay,omitempty"`
	WorstDay        string        `json:"worstDay,omitempty"`
	MorningScore    int           `json:"morningScore"`
	AfternoonScore  int           `json:"afternoonScore"`
	EveningScore    int           `json:"eveningScore"`
	MorningHabits   []string      `json:"morningHabits"`
	AfternoonHabits []string      `json:"afternoonHabits"`
	EveningHabits   []string      `json:"eveningHabits"`
	PeakWindows     []FocusWindow `json:"peakWindows"`
}

// PeakHour returns the start hour of the strongest focus window.
func (f FocusAnalysis) PeakHour(fallback int) int {
	if len(f.PeakWindows) == 0 {
		return fallback
	}
	return f.PeakWindows[0].StartHour
}

type ProcrastinationTrigger struct {
	Kind        TriggerKind `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Confidence  int         `json:"confidence"`
	Suggestion  string      `json:"suggestion"`
}

type ProcrastinationAnalysis struct {
	Score            int                      `json:"score"`
	OverdueRatio     int                      `json:"overdueRatio"`
	MeanCompletion   int                      `json:"meanCompletion"`
	Triggers         []ProcrastinationTrigger `json:"triggers"`
	RecoverySpeed    RecoverySpeed            `json:"recoverySpeed"`
	AverageSlumpDays float64                  `json:"averageSlumpDays"`
}

// HasTrigger reports whether a trigger of the given kind fired.
func (p ProcrastinationAnalysis) HasTrigger(kind TriggerKind) bool {
	for _, t := range p.Triggers {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

type BurnoutFactor struct {
	Label  string `json:"label"`
	Impact int    `json:"impact"`
	Detail string `json:"detail"`
}

type BurnoutAnalysis struct {
	RiskLevel         int             `json:"riskLevel"`
	Stage             BurnoutStage    `json:"stage"`
	Factors           []BurnoutFactor `json:"factors"`
	DaysUntilCritical *int            `json:"daysUntilCritical,omitempty"`
	Suggestions       []string        `json:"suggestions"`
}

type RoutineSuggestion struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Cron            string    `json:"cron"`
	StartTime       string    `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Reason          string    `json:"reason"`
	NextRun         time.Time `json:"nextRun"`
}

// UserBehaviorProfile aggregates every analyzer output for one reference instant.
type UserBehaviorProfile struct {
	GeneratedAt     time.Time               `json:"generatedAt"`
	TrackedDays     int                     `json:"trackedDays"`
	HasEnoughData   bool                    `json:"hasEnoughData"`
	Habits          []HabitProfile          `json:"habits"`
	Mood            MoodAnalysis            `json:"mood"`
	Focus           FocusAnalysis           `json:"focus"`
	Procrastination ProcrastinationAnalysis `json:"procrastination"`
	Burnout         BurnoutAnalysis         `json:"burnout"`
	Patterns        []BehaviorPattern       `json:"patterns"`
	Recommendations []Recommendation        `json:"recommendations"`
	Routines        []RoutineSuggestion     `json:"routines"`
}
