package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexanderramin/rhythm/internal/domain"
)

const (
	maxPatterns = 8

	mondayLeadMin       = 10.0
	weekendGapPatternPt = 15.0
	moodLinkMin         = 40
	strongStreakDays    = 14
	decliningTrendBelow = -20
)

// Insights bundles analyzer outputs consumed by the rule-based generators.
type Insights struct {
	TrackedDays     int
	Profiles        []domain.HabitProfile
	Mood            domain.MoodAnalysis
	Focus           domain.FocusAnalysis
	Procrastination domain.ProcrastinationAnalysis
	Burnout         domain.BurnoutAnalysis
}

type patternRule struct {
	id     string
	detect func(in Insights) (domain.BehaviorPattern, bool)
}

var patternRules = []patternRule{
	{"monday-momentum", mondayMomentum},
	{"weekend-slump", weekendSlump},
	{"weekend-warrior", weekendWarrior},
	{"habits-at-risk", habitsAtRisk},
	{"autopilot-habits", autopilotHabits},
	{"mood-link", moodLink},
	{"strong-streak", strongStreak},
	{"habit-stacking", habitStacking},
	{"declining-habits", decliningHabits},
	{"peak-window", peakWindowPattern},
	{"burnout-warning", burnoutWarning},
}

// DetectPatterns runs every rule, sorts by confidence descending (rule order
// breaks ties) and keeps the top 8.
func DetectPatterns(in Insights) []domain.BehaviorPattern {
	out := []domain.BehaviorPattern{}
	for _, rule := range patternRules {
		p, ok := rule.detect(in)
		if !ok {
			continue
		}
		p.ID = rule.id
		p.Confidence = domain.ClampInt(p.Confidence, 0, 100)
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	if len(out) > maxPatterns {
		out = out[:maxPatterns]
	}
	return out
}

func weekdayWeekendMeans(heat [7]int) (weekday, weekend float64) {
	weekday = float64(heat[0]+heat[1]+heat[2]+heat[3]+heat[4]) / 5
	weekend = float64(heat[5]+heat[6]) / 2
	return weekday, weekend
}

// sampleConfidence grows with the amount of tracked history.
func sampleConfidence(base, trackedDays, max int) int {
	return domain.ClampInt(base+trackedDays/3, 0, max)
}

func mondayMomentum(in Insights) (domain.BehaviorPattern, bool) {
	if in.TrackedDays < 14 {
		return domain.BehaviorPattern{}, false
	}
	heat := in.Focus.WeekdayHeatmap
	others := float64(heat[1]+heat[2]+heat[3]+heat[4]+heat[5]+heat[6]) / 6
	lead := float64(heat[0]) - others
	if lead <= mondayLeadMin {
		return domain.BehaviorPattern{}, false
	}
	return domain.BehaviorPattern{
		Kind:        domain.PatternPositive,
		Title:       "Monday momentum",
		Description: fmt.Sprintf("You start the week strong: Mondays run %.0f points above other days.", lead),
		Confidence:  int(math.Min(90, 50+lead)),
		Emoji:       "🚀",
	}, true
}

func weekendSlump(in Insights) (domain.BehaviorPattern, bool) {
	if in.TrackedDays < 14 {
		return domain.BehaviorPattern{}, false
	}
	wd, we := weekdayWeekendMeans(in.Focus.WeekdayHeatmap)
	gap := wd - we
	if gap <= weekendGapPatternPt {
		return domain.BehaviorPattern{}, false
	}
	return domain.BehaviorPattern{
		Kind:        domain.PatternNegative,
		Title:       "Weekend slump",
		Description: fmt.Sprintf("Weekends trail weekdays by %.0f points.", gap),
		Confidence:  int(math.Min(90, 45+gap)),
		Emoji:       "🛋️",
	}, true
}

func weekendWarrior(in Insights) (domain.BehaviorPattern, bool) {
	if in.TrackedDays < 14 {
		return domain.BehaviorPattern{}, false
	}
	wd, we := weekdayWeekendMeans(in.Focus.WeekdayHeatmap)
	gap := we - wd
	if gap <= weekendGapPatternPt {
		return domain.BehaviorPattern{}, false
	}
	return domain.BehaviorPattern{
		Kind:        domain.PatternPositive,
		Title:       "Weekend warrior",
		Description: fmt.Sprintf("You do your best work on weekends, %.0f points above weekdays.", gap),
		Confidence:  int(math.Min(90, 45+gap)),
		Emoji:       "🏕️",
	}, true
}

func habitsAtRisk(in Insights) (domain.BehaviorPattern, bool) {
	risky := AtRiskHabits(in.Profiles)
	if len(risky) < 2 {
		return domain.BehaviorPattern{}, false
	}
	return domain.BehaviorPattern{
		Kind:        domain.PatternNegative,
		Title:       "Habits slipping away",
		Description: fmt.Sprintf("%s are at high risk of being dropped.", joinNames(risky, 3)),
		Confidence:  domain.ClampInt(60+10*len(risky), 0, 95),
		Emoji:       "⚠️",
	}, true
}

func autopilotHabits(in Insights) (domain.BehaviorPattern, bool) {
	var auto []domain.HabitProfile
	for _, p := range in.Profiles {
		if p.IsAutomatic {
			auto = append(auto, p)
		}
	}
	if len(auto) == 0 {
		return domain.BehaviorPattern{}, false
	}
	return domain.BehaviorPattern{
		Kind:        domain.PatternPositive,
		Title:       "On autopilot",
		Description: fmt.Sprintf("%s no longer need willpower.", joinNames(auto, 3)),
		Confidence:  domain.ClampInt(70+5*len(auto), 0, 95),
		Emoji:       "🤖",
	}, true
}

func moodLink(in Insights) (domain.BehaviorPattern, bool) {
	if in.Mood.SampleSize < 7 || in.Mood.MoodCompletionCorrelation <= moodLinkMin {
		return domain.BehaviorPattern{}, false
	}
	return domain.BehaviorPattern{
		Kind:  domain.PatternNeutral,
		Title: "Mood drives your output",
		Description: fmt.Sprintf("Good-mood days reach %d%% completion versus %d%% on low days.",
			in.Mood.HighMoodCompletion, in.Mood.LowMoodCompletion),
		Confidence: in.Mood.MoodCompletionCorrelation,
		Emoji:      "🌦️",
	}, true
}

func strongStreak(in Insights) (domain.BehaviorPattern, bool) {
	var best *domain.HabitProfile
	for i := range in.Profiles {
		p := &in.Profiles[i]
		if p.LongestStreak >= strongStreakDays && (best == nil || p.LongestStreak > best.LongestStreak) {
			best = p
		}
	}
	if best == nil {
		return domain.BehaviorPattern{}, false
	}
	return domain.BehaviorPattern{
		Kind:        domain.PatternPositive,
		Title:       "Streak builder",
		Description: fmt.Sprintf("%s reached a %d-day streak.", best.Name, best.LongestStreak),
		Confidence:  domain.ClampInt(60+best.LongestStreak, 0, 95),
		Emoji:       "🔥",
	}, true
}

func habitStacking(in Insights) (domain.BehaviorPattern, bool) {
	names := make(map[string]string, len(in.Profiles))
	for _, p := range in.Profiles {
		names[p.HabitID] = p.Name
	}
	var bestA, bestB string
	bestCorr := 0
	for _, p := range in.Profiles {
		for _, c := range p.CorrelatedHabits {
			if c.Correlation > bestCorr {
				bestA, bestB, bestCorr = p.Name, names[c.HabitID], c.Correlation
			}
		}
	}
	if bestCorr == 0 {
		return domain.BehaviorPattern{}, false
	}
	return domain.BehaviorPattern{
		Kind:        domain.PatternPositive,
		Title:       "Natural habit stack",
		Description: fmt.Sprintf("%s and %s tend to happen together (%d%%).", bestA, bestB, bestCorr),
		Confidence:  bestCorr,
		Emoji:       "🔗",
	}, true
}

func decliningHabits(in Insights) (domain.BehaviorPattern, bool) {
	var declining []domain.HabitProfile
	for _, p := range in.Profiles {
		if p.Trend < decliningTrendBelow {
			declining = append(declining, p)
		}
	}
	if len(declining) == 0 {
		return domain.BehaviorPattern{}, false
	}
	return domain.BehaviorPattern{
		Kind:        domain.PatternNegative,
		Title:       "Losing steam",
		Description: fmt.Sprintf("%s dropped sharply this week.", joinNames(declining, 3)),
		Confidence:  sampleConfidence(50, in.TrackedDays, 85),
		Emoji:       "📉",
	}, true
}

func peakWindowPattern(in Insights) (domain.BehaviorPattern, bool) {
	if len(in.Focus.PeakWindows) == 0 || len(in.Profiles) < 2 {
		return domain.BehaviorPattern{}, false
	}
	top := in.Focus.PeakWindows[0]
	if top.Score < 60 {
		return domain.BehaviorPattern{}, false
	}
	return domain.BehaviorPattern{
		Kind:        domain.PatternPositive,
		Title:       strings.TrimSpace(top.Label + " person"),
		Description: fmt.Sprintf("Your %s habits land %d%% of the time.", strings.ToLower(top.Label), top.Score),
		Confidence:  sampleConfidence(40, in.TrackedDays, 80),
		Emoji:       "⏰",
	}, true
}

func burnoutWarning(in Insights) (domain.BehaviorPattern, bool) {
	if in.Burnout.Stage != domain.StageWarning && in.Burnout.Stage != domain.StageBurnout {
		return domain.BehaviorPattern{}, false
	}
	return domain.BehaviorPattern{
		Kind:        domain.PatternNegative,
		Title:       "Running on empty",
		Description: fmt.Sprintf("Burnout risk is %d/100 (%s).", in.Burnout.RiskLevel, in.Burnout.Stage),
		Confidence:  domain.ClampInt(in.Burnout.RiskLevel+10, 0, 95),
		Emoji:       "🪫",
	}, true
}

func joinNames(profiles []domain.HabitProfile, max int) string {
	names := make([]string, 0, max)
	for i, p := range profiles {
		if i == max {
			break
		}
		names = append(names, p.Name)
	}
	if len(profiles) > max {
		return strings.Join(names, ", ") + fmt.Sprintf(" and %d more", len(profiles)-max)
	}
	return strings.Join(names, ", ")
}
