package alert

import (
	"regexp"
	"strings"
	"time"

	"github.com/Arshya-tech/ClearAlert/internal/common"
)

// severityRule maps a keyword group to a severity. Rules are evaluated in
// order and the first match wins, so overlapping keyword sets resolve the
// same way every time.
type severityRule struct {
	keywords []string
	result   Severity
}

var severityRules = []severityRule{
	{[]string{"extreme", "red", "very high"}, SeverityExtreme},
	{[]string{"severe", "orange", "high"}, SeveritySevere},
	{[]string{"moderate", "yellow", "medium"}, SeverityModerate},
}

// MapSeverity normalizes an upstream severity string. Unmatched values
// default to low.
func MapSeverity(raw string) Severity {
	lower := strings.ToLower(raw)
	for _, rule := range severityRules {
		if common.HasAny(lower, rule.keywords...) {
			return rule.result
		}
	}
	return SeverityLow
}

// typeRule maps event-text keywords to an alert type. Order encodes priority:
// "tornado" is checked before the generic "wind", and so on. Keywords cover
// English and the French terms Environment Canada uses.
type typeRule struct {
	keywords []string
	result   Type
}

var typeRules = []typeRule{
	{[]string{"tornado"}, TypeTornado},
	{[]string{"hurricane", "tropical", "cyclone"}, TypeHurricane},
	{[]string{"flood", "inondation"}, TypeFlood},
	{[]string{"thunderstorm", "orage", "lightning"}, TypeThunderstorm},
	{[]string{"blizzard", "snow", "neige"}, TypeBlizzard},
	{[]string{"heat", "chaleur", "hot"}, TypeHeat},
	{[]string{"fire", "feu", "red flag"}, TypeWildfire},
	{[]string{"earthquake", "seismic", "tremblement"}, TypeEarthquake},
	{[]string{"winter", "freeze", "frost", "ice", "gel", "verglas"}, TypeWinter},
	{[]string{"wind", "vent", "gust"}, TypeWind},
	{[]string{"coastal", "tsunami", "rip", "marine", "storm surge"}, TypeCoastal},
}

// MapAlertType classifies upstream event text into a Type, falling back to
// TypeOther when nothing matches.
func MapAlertType(event string) Type {
	lower := strings.ToLower(event)
	for _, rule := range typeRules {
		if common.HasAny(lower, rule.keywords...) {
			return rule.result
		}
	}
	return TypeOther
}

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	newlineRe    = regexp.MustCompile(`\n+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	sentenceRe   = regexp.MustCompile(`([.!?])\s+`)
)

// entityReplacer decodes the handful of HTML entities that show up in
// upstream alert text.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// SimplifyDescription strips HTML, decodes entities, removes bullet markers
// and collapses whitespace, then keeps only the first three sentences.
func SimplifyDescription(description string) string {
	if description == "" {
		return ""
	}

	simplified := htmlTagRe.ReplaceAllString(description, "")
	simplified = entityReplacer.Replace(simplified)
	simplified = strings.ReplaceAll(simplified, "* ", "")
	simplified = strings.ReplaceAll(simplified, "...", ". ")
	simplified = newlineRe.ReplaceAllString(simplified, " ")
	simplified = whitespaceRe.ReplaceAllString(simplified, " ")
	simplified = strings.TrimSpace(simplified)

	sentences := splitSentences(simplified)
	if len(sentences) > 3 {
		simplified = strings.Join(sentences[:3], " ")
	}
	return simplified
}

// splitSentences splits on whitespace that follows sentence-ending
// punctuation, keeping the punctuation with its sentence.
func splitSentences(s string) []string {
	marked := sentenceRe.ReplaceAllString(s, "$1\x00")
	return strings.Split(marked, "\x00")
}

// timestampLayouts are the formats upstream feeds use: RFC3339 for the JSON
// APIs, RFC1123/RFC822 variants for RSS pubDate fields.
var timestampLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// ParseTimestamp parses an upstream timestamp in any supported layout.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// WithinLastDay reports whether the timestamp parses and falls within the
// last 24 hours. Unparseable timestamps are excluded (fail-closed).
func WithinLastDay(timestamp string) bool {
	ts, ok := ParseTimestamp(timestamp)
	if !ok {
		return false
	}
	cutoff := clock.Now().Add(-24 * time.Hour)
	return !ts.Before(cutoff)
}
