package domain

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns a sort rank (lower = more important).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type Category string

const (
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryHealth   Category = "health"
	CategoryFitness  Category = "fitness"
	CategoryWellness Category = "wellness"
	CategoryFinance  Category = "finance"
	CategorySocial   Category = "social"
	CategoryErrands  Category = "errands"
	CategoryHome     Category = "home"
	CategoryCreative Category = "creative"
)

// Categories is the fixed, ordered set of task categories.
var Categories = []Category{
	CategoryWork, CategoryStudy, CategoryHealth, CategoryFitness, CategoryWellness,
	CategoryFinance, CategorySocial, CategoryErrands, CategoryHome, CategoryCreative,
}

// IsBodyCare reports whether the category is about physical or mental care.
func (c Category) IsBodyCare() bool {
	return c == CategoryHealth || c == CategoryFitness || c == CategoryWellness
}

// IsDeepWork reports whether the category usually needs sustained focus.
func (c Category) IsDeepWork() bool {
	return c == CategoryWork || c == CategoryStudy || c == CategoryCreative
}

type PatternKind string

const (
	PatternPositive PatternKind = "positive"
	PatternNegative PatternKind = "negative"
	PatternNeutral  PatternKind = "neutral"
)

type ActionKind string

const (
	ActionRecover      ActionKind = "recover"
	ActionRescueHabit  ActionKind = "rescue_habit"
	ActionReschedule   ActionKind = "reschedule"
	ActionSimplify     ActionKind = "simplify"
	ActionStackHabit   ActionKind = "stack_habit"
	ActionProtectFocus ActionKind = "protect_focus"
	ActionReflect      ActionKind = "reflect"
)

type BurnoutStage string

const (
	StageThriving BurnoutStage = "thriving"
	StageStrained BurnoutStage = "strained"
	StageWarning  BurnoutStage = "warning"
	StageBurnout  BurnoutStage = "burnout"
)

type RecoverySpeed string

const (
	RecoveryFast     RecoverySpeed = "fast"
	RecoveryModerate RecoverySpeed = "moderate"
	RecoverySlow     RecoverySpeed = "slow"
)

type TriggerKind string

const (
	TriggerLowMood             TriggerKind = "low_mood"
	TriggerWeekendAvoidance    TriggerKind = "weekend_avoidance"
	TriggerMidweekDip          TriggerKind = "midweek_dip"
	TriggerComplexityAvoidance TriggerKind = "complexity_avoidance"
	TriggerMotivationDecline   TriggerKind = "motivation_decline"
)

type Tone string

const (
	ToneGentle         Tone = "gentle"
	ToneDirect         Tone = "direct"
	ToneMotivational   Tone = "motivational"
	ToneAccountability Tone = "accountability"
)

type Urgency string

const (
	UrgencyNow      Urgency = "now"
	UrgencySoon     Urgency = "soon"
	UrgencyLater    Urgency = "later"
	UrgencyTomorrow Urgency = "tomorrow"
)

type AgendaItemKind string

const (
	ItemHabit   AgendaItemKind = "habit"
	ItemTask    AgendaItemKind = "task"
	ItemOverdue AgendaItemKind = "overdue"
)
