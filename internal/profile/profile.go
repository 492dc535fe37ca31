// Package profile holds the user profile used to personalize guidance.
package profile

// AgeGroup buckets users for age-specific guidance.
type AgeGroup string

const (
	AgeStudent AgeGroup = "student"
	AgeAdult   AgeGroup = "adult"
	AgeSenior  AgeGroup = "senior"
)

// HouseholdType describes household composition.
type HouseholdType string

const (
	HouseholdSingle      HouseholdType = "single"
	HouseholdCouple      HouseholdType = "couple"
	HouseholdSmallFamily HouseholdType = "small-family"
	HouseholdLargeFamily HouseholdType = "large-family"
)

// Condition is a special circumstance that changes what guidance applies.
type Condition string

const (
	ConditionMedicalNeeds    Condition = "medical-needs"
	ConditionMobilityIssues  Condition = "mobility-issues"
	ConditionHearingImpaired Condition = "hearing-impaired"
	ConditionVisionImpaired  Condition = "vision-impaired"
	ConditionYoungChildren   Condition = "young-children"
	ConditionPets            Condition = "pets"
	ConditionElderlyCare     Condition = "elderly-care"
)

// Profile is the stored user profile. Zero values mean "not set".
type Profile struct {
	AgeGroup          AgeGroup      `json:"ageGroup,omitempty"`
	Gender            string        `json:"gender,omitempty"`
	HouseholdType     HouseholdType `json:"householdType,omitempty"`
	SpecialConditions []Condition   `json:"specialConditions,omitempty"`
	IsConfigured      bool          `json:"isConfigured"`
}

// HasFamily reports whether the household includes children, which gates the
// family-specific guidance tables.
func (p Profile) HasFamily() bool {
	return p.HouseholdType == HouseholdSmallFamily || p.HouseholdType == HouseholdLargeFamily
}

// HasCondition reports whether the profile lists the given condition.
func (p Profile) HasCondition(c Condition) bool {
	for _, have := range p.SpecialConditions {
		if have == c {
			return true
		}
	}
	return false
}
