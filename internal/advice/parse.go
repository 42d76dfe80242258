package advice

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// headerRe matches "<N>." or "<N>)" at the start of a line, optionally behind
// markdown heading or emphasis markers.
var headerRe = regexp.MustCompile(`^[#*\s]*(\d{1,2})[.)]\s*(.*)$`)

// sectionKeywords lists the keywords that identify section N (index N-1).
var sectionKeywords = [10][]string{
	{"ACCOMMODATION"},
	{"CURRENCY"},
	{"TRANSPORTATION"},
	{"CULTURAL", "CULTURE"},
	{"FOOD"},
	{"ACTIVITIES", "ATTRACTIONS"},
	{"PRACTICAL"},
	{"PACKING"},
	{"SAFETY", "HEALTH"},
	{"SPECIFIC"},
}

var powerAdapterStops = []string{"SIM", "EMERGENCY", "LANGUAGE"}

func (s *Sections) field(n int) *string {
	switch n {
	case 1:
		return &s.Accommodation
	case 2:
		return &s.CurrencyPayments
	case 3:
		return &s.Transportation
	case 4:
		return &s.CulturalGuide
	case 5:
		return &s.FoodDining
	case 6:
		return &s.Activities
	case 7:
		return &s.PracticalInfo
	case 8:
		return &s.Packing
	case 9:
		return &s.SafetyHealth
	case 10:
		return &s.SpecificAnswers
	}
	return nil
}

// ParseSections splits a generated reply into its numbered sections. A header
// line switches the current section and is dropped; every other non-blank line
// is appended to the current section with a trailing newline. Lines before the
// first header are dropped, and a header that does not match its keyword is
// treated as content of the previous section.
func ParseSections(text string) Sections {
	s := Sections{FullText: text}

	var current *string
	for _, line := range splitLines(text) {
		if n, ok := sectionHeader(line); ok {
			current = s.field(n)
			continue
		}
		if current != nil && strings.TrimSpace(line) != "" {
			*current += line + "\n"
		}
	}
	return s
}

func sectionHeader(line string) (int, bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > len(sectionKeywords) {
		return 0, false
	}
	rest := strings.ToUpper(m[2])
	for _, kw := range sectionKeywords[n-1] {
		if strings.Contains(rest, kw) {
			return n, true
		}
	}
	return 0, false
}

// ExtractPowerAdapter collects the bullet lines following a "POWER ADAPTER"
// line, space-joined. Collection stops at the first non-bullet line that
// mentions SIM cards, emergency contacts or language.
func ExtractPowerAdapter(text string) string {
	var parts []string
	inSection := false

	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		upper := strings.ToUpper(line)

		switch {
		case strings.Contains(upper, "POWER ADAPTER"):
			inSection = true
		case !inSection || trimmed == "":
		case strings.HasPrefix(trimmed, "-"):
			parts = append(parts, trimmed)
		case containsAny(upper, powerAdapterStops):
			return strings.Join(parts, " ")
		}
	}
	return strings.Join(parts, " ")
}

// Slugify lowercases name, turns spaces into hyphens and drops anything that
// is not a letter, digit or hyphen.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r == ' ':
			b.WriteRune('-')
		case r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AdapterURL returns the plug reference page for country, or fallback when the
// country is unknown.
func AdapterURL(base, fallback, country string) string {
	if country == "" {
		return fallback
	}
	return strings.TrimRight(base, "/") + "/" + Slugify(country) + "/"
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
