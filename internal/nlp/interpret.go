// Package nlp turns free-text task entries into structured attributes and
// extracts dates and times from them. Only English vocabulary is supported.
package nlp

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/rhythm/internal/domain"
)

const (
	baseConfidence     = 50
	perKeywordConf     = 5
	maxConfidence      = 95
	unmatchedConfident = 30

	quickTagMaxMinutes = 15
	deepTagMinMinutes  = 60

	// explicit amounts outside 1 minute..1 week fall through to the other rules
	maxExplicitMinutes = 7 * 24 * 60
)

type categoryRule struct {
	category       domain.Category
	emoji          string
	defaultMinutes int
	keywords       []string
}

// categoryRules is ordered: on equal score the earlier category wins.
var categoryRules = []categoryRule{
	{domain.CategoryWork, "💼", 45, []string{
		"meeting", "report", "email", "presentation", "client", "deadline", "project",
		"review pr", "code review", "standup", "slides", "proposal", "invoice client",
		"deploy", "ticket", "call with", "sync", "office", "manager", "spreadsheet",
	}},
	{domain.CategoryStudy, "📚", 60, []string{
		"study", "homework", "exam", "lecture", "course", "learn", "revise", "thesis",
		"assignment", "flashcards", "chapter", "tutorial", "research paper", "quiz",
	}},
	{domain.CategoryHealth, "🩺", 30, []string{
		"doctor", "dentist", "appointment", "medication", "pills", "vitamins", "therapy",
		"checkup", "prescription", "pharmacy", "blood test", "sleep",
	}},
	{domain.CategoryFitness, "🏋️", 45, []string{
		"workout", "gym", "run", "jog", "yoga", "swim", "cycling", "bike ride", "lift",
		"pushups", "squats", "cardio", "stretch", "hike", "walk", "training", "pilates",
	}},
	{domain.CategoryWellness, "🧘", 15, []string{
		"meditate", "meditation", "journal", "breathing", "gratitude", "self care",
		"relax", "nap", "mindful", "skincare", "bath", "digital detox",
	}},
	{domain.CategoryFinance, "💰", 20, []string{
		"pay", "bill", "budget", "taxes", "tax return", "bank", "invoice", "rent",
		"savings", "invest", "expenses", "insurance", "subscription",
	}},
	{domain.CategorySocial, "👥", 60, []string{
		"call mom", "call dad", "friend", "birthday", "party", "dinner with", "date night",
		"family", "catch up", "visit", "text", "wedding", "coffee with",
	}},
	{domain.CategoryErrands, "🛒", 30, []string{
		"buy", "groceries", "shopping", "pick up", "drop off", "post office", "return",
		"store", "order", "errand", "car wash", "refill", "collect",
	}},
	{domain.CategoryHome, "🏠", 30, []string{
		"clean", "laundry", "dishes", "vacuum", "tidy", "cook", "meal prep", "repair",
		"fix", "garden", "trash", "declutter", "organize", "water plants", "mop",
	}},
	{domain.CategoryCreative, "🎨", 60, []string{
		"write", "draw", "paint", "design", "compose", "guitar", "piano", "sketch",
		"blog", "photography", "edit video", "podcast", "poem", "novel", "practice music",
	}},
}

var urgencyKeywords = []string{
	"urgent", "asap", "important", "critical", "deadline", "immediately", "due", "today", "now",
}

var deferralKeywords = []string{
	"someday", "maybe", "eventually", "later", "whenever", "optional", "low priority", "if time",
}

type durationRule struct {
	pattern *regexp.Regexp
	minutes func(m []string) (int, bool)
}

func fixedMinutes(n int) func([]string) (int, bool) {
	return func([]string) (int, bool) { return n, true }
}

// durationRules is ordered: explicit amounts win over qualitative words.
var durationRules = []durationRule{
	{
		pattern: regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h)\b(?:\s*(?:and\s+)?(\d+)\s*(?:minutes?|mins?|m)\b)?`),
		minutes: func(m []string) (int, bool) {
			h, err := strconv.ParseFloat(m[1], 64)
			if err != nil || h <= 0 || h > maxExplicitMinutes/60 {
				return 0, false
			}
			total := int(h * 60)
			if m[2] != "" {
				extra, err := strconv.Atoi(m[2])
				if err != nil || extra > maxExplicitMinutes {
					return 0, false
				}
				total += extra
			}
			if total < 1 || total > maxExplicitMinutes {
				return 0, false
			}
			return total, true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(\d+)\s*(?:minutes?|mins?|m)\b`),
		minutes: func(m []string) (int, bool) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 || n > maxExplicitMinutes {
				return 0, false
			}
			return n, true
		},
	},
	{regexp.MustCompile(`(?i)\bhalf\s+an?\s+hour\b`), fixedMinutes(30)},
	{regexp.MustCompile(`(?i)\ball\s+day\b`), fixedMinutes(240)},
	{regexp.MustCompile(`(?i)\b(?:quick|quickly)\b`), fixedMinutes(10)},
	{regexp.MustCompile(`(?i)\b(?:short|brief)\b`), fixedMinutes(15)},
	{regexp.MustCompile(`(?i)\b(?:long|deep|thorough|big)\b`), fixedMinutes(90)},
}

var (
	hashtagPattern   = regexp.MustCompile(`#([\p{L}\p{N}_-]+)`)
	recurringPattern = regexp.MustCompile(`(?i)\b(?:every|daily|weekly|monthly|each)\b`)
)

// InterpretTask classifies free text into category, duration, priority and tags.
func InterpretTask(text string) domain.TaskInterpretation {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	rule, matched := classify(lower)
	minutes := estimateMinutes(trimmed, rule.defaultMinutes)
	priority := detectPriority(lower)

	confidence := unmatchedConfident
	if matched > 0 {
		confidence = min(maxConfidence, baseConfidence+matched*perKeywordConf)
	}

	return domain.TaskInterpretation{
		Text:             trimmed,
		Category:         rule.category,
		EstimatedMinutes: minutes,
		Priority:         priority,
		Tags:             deriveTags(trimmed, minutes, priority),
		Confidence:       confidence,
		Emoji:            rule.emoji,
	}
}

// classify returns the winning category rule and how many of its keywords matched.
// The score is the summed length of matched keywords.
func classify(lower string) (categoryRule, int) {
	best, bestScore, bestMatched := categoryRules[0], 0, 0
	for _, rule := range categoryRules {
		score, matched := 0, 0
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				score += len(kw)
				matched++
			}
		}
		if score > bestScore {
			best, bestScore, bestMatched = rule, score, matched
		}
	}
	return best, bestMatched
}

// RuleFor returns the defaults for a category.
func RuleFor(c domain.Category) (emoji string, defaultMinutes int) {
	for _, r := range categoryRules {
		if r.category == c {
			return r.emoji, r.defaultMinutes
		}
	}
	return categoryRules[0].emoji, categoryRules[0].defaultMinutes
}

func estimateMinutes(text string, fallback int) int {
	for _, rule := range durationRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if n, ok := rule.minutes(m); ok {
			return n
		}
	}
	return fallback
}

func detectPriority(lower string) domain.Priority {
	if containsWord(lower, urgencyKeywords) {
		return domain.PriorityHigh
	}
	if containsWord(lower, deferralKeywords) {
		return domain.PriorityLow
	}
	return domain.PriorityMedium
}

// containsWord matches keywords on word boundaries so "now" does not fire on "know".
func containsWord(lower string, keywords []string) bool {
	for _, kw := range keywords {
		idx := 0
		for {
			i := strings.Index(lower[idx:], kw)
			if i < 0 {
				break
			}
			start, end := idx+i, idx+i+len(kw)
			if isBoundary(lower, start-1) && isBoundary(lower, end) {
				return true
			}
			idx = start + 1
		}
	}
	return false
}

func isBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9')
}

func deriveTags(text string, minutes int, priority domain.Priority) []string {
	set := map[string]bool{}
	for _, m := range hashtagPattern.FindAllStringSubmatch(text, -1) {
		set[strings.ToLower(m[1])] = true
	}
	if minutes <= quickTagMaxMinutes {
		set["quick"] = true
	}
	if minutes >= deepTagMinMinutes {
		set["deep-work"] = true
	}
	if priority == domain.PriorityHigh {
		set["urgent"] = true
	}
	if recurringPattern.MatchString(text) {
		set["recurring"] = true
	}

	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
