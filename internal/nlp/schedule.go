package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/alexanderramin/rhythm/internal/domain"
)

const monthPattern = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

const ordinal = `(?:st|nd|rd|th)?`

type clock struct{ hour, minute int }

type timeRule struct {
	pattern *regexp.Regexp
	resolve func(m []string) (clock, bool)
}

// timeRules run in order; the first valid match wins and its span is removed.
// The meridiem form goes first so "3:30pm" is not read as 03:30.
var timeRules = []timeRule{
	{
		pattern: regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::([0-5]\d))?\s*([ap])\.?m\.?(?:\s|$|[,.;!?])`),
		resolve: func(m []string) (clock, bool) {
			h, _ := strconv.Atoi(m[1])
			if h < 1 || h > 12 {
				return clock{}, false
			}
			mins := 0
			if m[2] != "" {
				mins, _ = strconv.Atoi(m[2])
			}
			switch strings.ToLower(m[3]) {
			case "p":
				if h != 12 {
					h += 12
				}
			case "a":
				if h == 12 {
					h = 0
				}
			}
			return clock{h, mins}, true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(?:at\s+)?([01]?\d|2[0-3]):([0-5]\d)\b`),
		resolve: func(m []string) (clock, bool) {
			h, _ := strconv.Atoi(m[1])
			mins, _ := strconv.Atoi(m[2])
			return clock{h, mins}, true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\bat\s+(\d{1,2})(?:\s|$|[,.;!?])`),
		resolve: func(m []string) (clock, bool) {
			h, _ := strconv.Atoi(m[1])
			if h > 23 {
				return clock{}, false
			}
			// "at 3" almost always means the afternoon.
			if h >= 1 && h <= 7 {
				h += 12
			}
			return clock{h, 0}, true
		},
	},
}

type dateRule struct {
	pattern *regexp.Regexp
	resolve func(m []string, today time.Time) (time.Time, bool)
}

// dateRules run in order: explicit years first, then yearless forms that roll
// forward to the next occurrence, then numeric dd/mm/yyyy.
var dateRules = []dateRule{
	{
		pattern: regexp.MustCompile(`(?i)\b(?:on\s+)?(\d{1,2})` + ordinal + `\s+(?:of\s+)?` + monthPattern + `,?\s+(\d{4})\b`),
		resolve: func(m []string, today time.Time) (time.Time, bool) {
			return calendarDate(m[3], monthIndex(m[2]), m[1], today.Location())
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(?:on\s+)?` + monthPattern + `\s+(\d{1,2})` + ordinal + `,?\s+(\d{4})\b`),
		resolve: func(m []string, today time.Time) (time.Time, bool) {
			return calendarDate(m[3], monthIndex(m[1]), m[2], today.Location())
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(?:on\s+)?(\d{1,2})` + ordinal + `\s+(?:of\s+)?` + monthPattern + `\b`),
		resolve: func(m []string, today time.Time) (time.Time, bool) {
			return rollForward(monthIndex(m[2]), m[1], today)
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(?:on\s+)?` + monthPattern + `\s+(\d{1,2})` + ordinal + `\b`),
		resolve: func(m []string, today time.Time) (time.Time, bool) {
			return rollForward(monthIndex(m[1]), m[2], today)
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(?:on\s+)?(\d{1,2})/(\d{1,2})/(\d{4})\b`),
		resolve: func(m []string, today time.Time) (time.Time, bool) {
			month, err := strconv.Atoi(m[2])
			if err != nil {
				return time.Time{}, false
			}
			return calendarDate(m[3], time.Month(month), m[1], today.Location())
		},
	},
}

type relativeRule struct {
	pattern *regexp.Regexp
	resolve func(m []string, today time.Time) time.Time
}

func daysAhead(n int) func([]string, time.Time) time.Time {
	return func(_ []string, today time.Time) time.Time { return today.AddDate(0, 0, n) }
}

// relativeRules only run when no explicit date matched. "day after tomorrow"
// must precede "tomorrow".
var relativeRules = []relativeRule{
	{regexp.MustCompile(`(?i)\b(?:the\s+)?day\s+after\s+tomorrow\b`), daysAhead(2)},
	{regexp.MustCompile(`(?i)\btomorrow\b`), daysAhead(1)},
	{regexp.MustCompile(`(?i)\b(?:today|tonight)\b`), daysAhead(0)},
	{
		pattern: regexp.MustCompile(`(?i)\b(?:(next|this|on)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		resolve: func(m []string, today time.Time) time.Time {
			return weekdayDate(strings.ToLower(m[1]), strings.ToLower(m[2]), today)
		},
	},
}

var (
	leadingCommand    = regexp.MustCompile(`(?i)^(?:please\s+)?(?:remind\s+me\s+to|remind\s+me|add|schedule|create)\s+`)
	danglingPrefix    = regexp.MustCompile(`(?i)^(?:at|on|by|for|in)(?:\s+|$)`)
	danglingSuffix    = regexp.MustCompile(`(?i)\s+(?:at|on|by|for|in|this|next|the|of|from|until)$`)
	strayPunctuation  = regexp.MustCompile(`\s+([,.;:!?])`)
	repeatedSpace     = regexp.MustCompile(`\s+`)
	edgePunctuation   = ",;:-– "
	weekdayNameToTime = map[string]time.Weekday{
		"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
		"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
		"sunday": time.Sunday,
	}
)

// ParseSchedule extracts an explicit or relative date and a time of day from
// free text, relative to now. Unmatched text leaves Date and Time nil.
func ParseSchedule(text string, now time.Time) domain.ParsedSchedule {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	rest := text
	var out domain.ParsedSchedule

	var at *clock
	for _, rule := range timeRules {
		m, span := findSubmatch(rule.pattern, rest)
		if m == nil {
			continue
		}
		c, ok := rule.resolve(m)
		if !ok {
			continue
		}
		at = &c
		rest = cut(rest, span)
		break
	}

	var date *time.Time
	for _, rule := range dateRules {
		m, span := findSubmatch(rule.pattern, rest)
		if m == nil {
			continue
		}
		d, ok := rule.resolve(m, today)
		if !ok {
			continue
		}
		date = &d
		rest = cut(rest, span)
		break
	}
	if date == nil {
		for _, rule := range relativeRules {
			m, span := findSubmatch(rule.pattern, rest)
			if m == nil {
				continue
			}
			d := rule.resolve(m, today)
			date = &d
			rest = cut(rest, span)
			break
		}
	}

	if at != nil {
		s := fmt.Sprintf("%02d:%02d", at.hour, at.minute)
		out.Time = &s
	}
	if date != nil {
		out.Date = date
		dow := domain.WeekdayIndex(date.Weekday())
		out.DayOfWeek = &dow
		out.IsToday = date.Equal(today)
		out.IsTomorrow = date.Equal(today.AddDate(0, 0, 1))
		out.IsPast = date.Before(today)
		if out.IsToday && at != nil {
			moment := time.Date(date.Year(), date.Month(), date.Day(), at.hour, at.minute, 0, 0, date.Location())
			out.IsPast = moment.Before(now)
		}
	}
	out.CleanedText = CleanText(rest)
	return out
}

// CleanText strips a leading command, dangling prepositions and extra
// whitespace, then capitalizes the first letter.
func CleanText(s string) string {
	s = repeatedSpace.ReplaceAllString(strings.TrimSpace(s), " ")
	s = leadingCommand.ReplaceAllString(s, "")
	for {
		next := strings.Trim(s, edgePunctuation)
		next = danglingPrefix.ReplaceAllString(next, "")
		next = danglingSuffix.ReplaceAllString(next, "")
		if next == s {
			break
		}
		s = next
	}
	s = strayPunctuation.ReplaceAllString(s, "$1")
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func findSubmatch(re *regexp.Regexp, s string) ([]string, [2]int) {
	idx := re.FindStringSubmatchIndex(s)
	if idx == nil {
		return nil, [2]int{}
	}
	m := make([]string, len(idx)/2)
	for i := range m {
		if idx[2*i] >= 0 {
			m[i] = s[idx[2*i]:idx[2*i+1]]
		}
	}
	return m, [2]int{idx[0], idx[1]}
}

func cut(s string, span [2]int) string {
	return s[:span[0]] + " " + s[span[1]:]
}

func monthIndex(name string) time.Month {
	prefix := strings.ToLower(name)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(m.String()[:3]) == prefix {
			return m
		}
	}
	return 0
}

// calendarDate builds a date and rejects overflow such as 31 February.
func calendarDate(year string, month time.Month, day string, loc *time.Location) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, false
	}
	return validDate(y, month, d, loc)
}

func validDate(y int, month time.Month, d int, loc *time.Location) (time.Time, bool) {
	if month < time.January || month > time.December || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, month, d, 0, 0, 0, 0, loc)
	if t.Month() != month || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// rollForward resolves a yearless date to this year, or next year when the
// date has already passed.
func rollForward(month time.Month, day string, today time.Time) (time.Time, bool) {
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, false
	}
	t, ok := validDate(today.Year(), month, d, today.Location())
	if ok && !t.Before(today) {
		return t, true
	}
	// 29 February may only exist in a later year.
	for y := today.Year() + 1; y <= today.Year()+4; y++ {
		if t, ok := validDate(y, month, d, today.Location()); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// weekdayDate resolves a weekday name. The nearest occurrence is 1..7 days
// ahead; "this" also accepts today; "next" adds a full week to the nearest.
func weekdayDate(qualifier, name string, today time.Time) time.Time {
	target := weekdayNameToTime[name]
	ahead := (int(target) - int(today.Weekday()) + 7) % 7
	if ahead == 0 && qualifier != "this" {
		ahead = 7
	}
	if qualifier == "next" {
		ahead += 7
	}
	return today.AddDate(0, 0, ahead)
}
