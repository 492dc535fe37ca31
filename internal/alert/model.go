package alert

// Severity is the normalized urgency rank of an alert.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityExtreme  Severity = "extreme"
)

// Rank orders severities for sorting: extreme first, low last.
func (s Severity) Rank() int {
	switch s {
	case SeverityExtreme:
		return 0
	case SeveritySevere:
		return 1
	case SeverityModerate:
		return 2
	default:
		return 3
	}
}

// Type is the normalized alert category. It is always derived from upstream
// event text, never passed through verbatim.
type Type string

const (
	TypeTornado      Type = "tornado"
	TypeHurricane    Type = "hurricane"
	TypeFlood        Type = "flood"
	TypeThunderstorm Type = "thunderstorm"
	TypeBlizzard     Type = "blizzard"
	TypeHeat         Type = "heat"
	TypeWildfire     Type = "wildfire"
	TypeEarthquake   Type = "earthquake"
	TypeWinter       Type = "winter"
	TypeWind         Type = "wind"
	TypeFire         Type = "fire"
	TypeCoastal      Type = "coastal"
	TypeOther        Type = "other"
)

// Alert is the unified record every source adapter emits.
type Alert struct {
	ID          string   `json:"id"`
	Type        Type     `json:"type"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Headline    string   `json:"headline,omitempty"`
	Description string   `json:"description"`
	Instruction string   `json:"instruction,omitempty"`
	Location    string   `json:"location"`
	Timestamp   string   `json:"timestamp"` // ISO-8601 effective/issued time
	Confidence  float64  `json:"confidence"`
	ExpiresAt   string   `json:"expiresAt"`
	Source      string   `json:"source,omitempty"`
}
