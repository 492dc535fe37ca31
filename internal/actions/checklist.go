package actions

import "github.com/Arshya-tech/ClearAlert/internal/profile"

// ChecklistItem is one preparedness checklist entry.
type ChecklistItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Personalized bool   `json:"personalized,omitempty"`
}

type catalogItem struct {
	ID          string
	Title       string
	Description string
	Category    string

	ForAgeGroups  []profile.AgeGroup
	ForHouseholds []profile.HouseholdType
	ForConditions []profile.Condition
}

// baseChecklist items are unconditional and always included.
var baseChecklist = []catalogItem{
	{ID: "1", Title: "Water Supply", Description: "One gallon per person per day for at least 3 days", Category: "supplies"},
	{ID: "2", Title: "Non-perishable Food", Description: "At least a 3-day supply of food that does not require cooking", Category: "supplies"},
	{ID: "3", Title: "Battery-powered Radio", Description: "With extra batteries to receive emergency broadcasts", Category: "communication"},
	{ID: "4", Title: "Flashlight", Description: "With extra batteries for power outages", Category: "supplies"},
	{ID: "5", Title: "First Aid Kit", Description: "Include bandages, antiseptic, medications, and emergency contacts", Category: "medical"},
	{ID: "6", Title: "Important Documents", Description: "Copies of IDs, insurance policies, and bank records in waterproof container", Category: "documents"},
	{ID: "7", Title: "Emergency Contacts", Description: "Written list of family, neighbors, and local emergency numbers", Category: "communication"},
}

// personalizedChecklist items are included when any membership test matches
// the profile.
var personalizedChecklist = []catalogItem{
	{ID: "med-1", Title: "Prescription Medications", Description: "At least 2 weeks supply of all prescription medications", Category: "medical",
		ForConditions: []profile.Condition{profile.ConditionMedicalNeeds}},
	{ID: "med-2", Title: "Medical Equipment Backup", Description: "Backup power or batteries for essential medical devices", Category: "medical",
		ForConditions: []profile.Condition{profile.ConditionMedicalNeeds}},
	{ID: "med-3", Title: "Medical Information Card", Description: "List of medications, allergies, and emergency medical contacts", Category: "medical",
		ForConditions: []profile.Condition{profile.ConditionMedicalNeeds}},

	{ID: "mob-1", Title: "Evacuation Plan", Description: "Written plan for how to evacuate with mobility aids", Category: "documents",
		ForConditions: []profile.Condition{profile.ConditionMobilityIssues}},
	{ID: "mob-2", Title: "Emergency Registry", Description: "Register with local emergency services for evacuation assistance", Category: "communication",
		ForConditions: []profile.Condition{profile.ConditionMobilityIssues}},

	{ID: "hear-1", Title: "Visual Alert System", Description: "Flashing light alerts for smoke/emergency alarms", Category: "communication",
		ForConditions: []profile.Condition{profile.ConditionHearingImpaired}},
	{ID: "hear-2", Title: "Backup Hearing Aid Batteries", Description: "Extra batteries or charging equipment for hearing devices", Category: "medical",
		ForConditions: []profile.Condition{profile.ConditionHearingImpaired}},

	{ID: "vis-1", Title: "Tactile Emergency Supplies", Description: "Label emergency supplies with braille or tactile markers", Category: "supplies",
		ForConditions: []profile.Condition{profile.ConditionVisionImpaired}},
	{ID: "vis-2", Title: "Audio Emergency Radio", Description: "Battery-powered radio with audio announcements", Category: "communication",
		ForConditions: []profile.Condition{profile.ConditionVisionImpaired}},

	{ID: "child-1", Title: "Baby Supplies", Description: "Formula, diapers, wipes, and baby food for at least 3 days", Category: "supplies",
		ForConditions: []profile.Condition{profile.ConditionYoungChildren}},
	{ID: "child-2", Title: "Comfort Items", Description: "Favorite toys, blankets, or stuffed animals for comfort", Category: "supplies",
		ForConditions: []profile.Condition{profile.ConditionYoungChildren}},
	{ID: "child-3", Title: "Child ID Cards", Description: "Photos and ID info for each child in case of separation", Category: "documents",
		ForConditions: []profile.Condition{profile.ConditionYoungChildren},
		ForHouseholds: []profile.HouseholdType{profile.HouseholdSmallFamily, profile.HouseholdLargeFamily}},

	{ID: "pet-1", Title: "Pet Food & Water", Description: "At least 3 days of pet food, treats, and water", Category: "supplies",
		ForConditions: []profile.Condition{profile.ConditionPets}},
	{ID: "pet-2", Title: "Pet Medications", Description: "Any prescription medications your pet needs", Category: "medical",
		ForConditions: []profile.Condition{profile.ConditionPets}},
	{ID: "pet-3", Title: "Pet Carrier & Leash", Description: "Secure carriers for each pet and extra leashes", Category: "supplies",
		ForConditions: []profile.Condition{profile.ConditionPets}},
	{ID: "pet-4", Title: "Pet-Friendly Shelter List", Description: "List of evacuation shelters that accept pets", Category: "documents",
		ForConditions: []profile.Condition{profile.ConditionPets}},

	{ID: "elder-1", Title: "Caregiver Contact List", Description: "Contact info for doctors, home care aides, and family", Category: "communication",
		ForConditions: []profile.Condition{profile.ConditionElderlyCare}},
	{ID: "elder-2", Title: "Comfort Items for Seniors", Description: "Reading glasses, dentures, hearing aids with extra batteries", Category: "medical",
		ForConditions: []profile.Condition{profile.ConditionElderlyCare}},

	{ID: "senior-1", Title: "Medication Organizer", Description: "Pre-sorted medications in clearly labeled containers", Category: "medical",
		ForAgeGroups: []profile.AgeGroup{profile.AgeSenior}},
	{ID: "senior-2", Title: "Easy-Open Food Containers", Description: "Emergency food in containers that are easy to open", Category: "supplies",
		ForAgeGroups: []profile.AgeGroup{profile.AgeSenior}},

	{ID: "student-1", Title: "Campus Emergency Plan", Description: "Know your campus evacuation routes and shelter locations", Category: "documents",
		ForAgeGroups: []profile.AgeGroup{profile.AgeStudent}},
	{ID: "student-2", Title: "Portable Phone Charger", Description: "Keep a charged power bank in your bag at all times", Category: "communication",
		ForAgeGroups: []profile.AgeGroup{profile.AgeStudent}},

	{ID: "family-1", Title: "Family Communication Plan", Description: "Designated meeting places and out-of-area emergency contact", Category: "communication",
		ForHouseholds: []profile.HouseholdType{profile.HouseholdSmallFamily, profile.HouseholdLargeFamily}},
	{ID: "family-2", Title: "Entertainment for Kids", Description: "Books, games, or activities to keep children occupied", Category: "supplies",
		ForHouseholds: []profile.HouseholdType{profile.HouseholdSmallFamily, profile.HouseholdLargeFamily}},
}

// Checklist returns the base checklist plus every personalized item whose
// age-group, household or condition membership matches the profile. Any
// single match includes the item.
func Checklist(p profile.Profile) []ChecklistItem {
	items := make([]ChecklistItem, 0, len(baseChecklist))
	for _, item := range baseChecklist {
		items = append(items, ChecklistItem{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Category:    item.Category,
		})
	}

	for _, item := range personalizedChecklist {
		if !matchesProfile(item, p) {
			continue
		}
		items = append(items, ChecklistItem{
			ID:           item.ID,
			Title:        item.Title,
			Description:  item.Description,
			Category:     item.Category,
			Personalized: true,
		})
	}
	return items
}

func matchesProfile(item catalogItem, p profile.Profile) bool {
	for _, age := range item.ForAgeGroups {
		if p.AgeGroup == age {
			return true
		}
	}
	for _, household := range item.ForHouseholds {
		if p.HouseholdType == household {
			return true
		}
	}
	for _, condition := range item.ForConditions {
		if p.HasCondition(condition) {
			return true
		}
	}
	return false
}
