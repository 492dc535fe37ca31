package actions

import "github.com/Arshya-tech/ClearAlert/internal/profile"

// Card is one guidance card shown for an alert. Priorities 1-3 are base
// guidance; 4 and up are personalized additions that render after the base
// set.
type Card struct {
	ID           string `json:"id"`
	AlertID      string `json:"alertId"`
	Icon         string `json:"icon"`
	Instruction  string `json:"instruction"`
	WhyItMatters string `json:"whyItMatters"`
	Priority     int    `json:"priority"`
	Personalized bool   `json:"personalized,omitempty"`
}

// catalogCard is a catalog entry before it is tagged with an alert id.
type catalogCard struct {
	ID           string
	Icon         string
	Instruction  string
	WhyItMatters string
	Priority     int

	ForAgeGroups  []profile.AgeGroup
	ForHouseholds []profile.HouseholdType
	ForConditions []profile.Condition
}

// baseCards maps an alert type to its base guidance. Unregistered types use
// the "default" set.
var baseCards = map[string][]catalogCard{
	"tornado": {
		{
			ID:           "tornado-1",
			Icon:         "home",
			Instruction:  "Go to your basement or an interior room on the lowest floor",
			WhyItMatters: "Basements and interior rooms provide the most protection from flying debris and structural collapse during a tornado.",
			Priority:     1,
		},
		{
			ID:           "tornado-2",
			Icon:         "shield",
			Instruction:  "Cover yourself with a mattress or heavy blankets",
			WhyItMatters: "This provides additional protection from falling debris and broken glass.",
			Priority:     2,
		},
		{
			ID:           "tornado-3",
			Icon:         "car",
			Instruction:  "If driving, do not try to outrun the tornado. Find shelter immediately.",
			WhyItMatters: "Vehicles offer little protection and can be thrown by tornado-force winds.",
			Priority:     3,
		},
	},
	"thunderstorm": {
		{
			ID:           "storm-1",
			Icon:         "home",
			Instruction:  "Move to the lowest floor of your building immediately",
			WhyItMatters: "The lowest floor provides the most protection from falling debris.",
			Priority:     1,
		},
		{
			ID:           "storm-2",
			Icon:         "shield",
			Instruction:  "Stay away from windows, glass doors, and skylights",
			WhyItMatters: "High winds can shatter glass and turn it into dangerous projectiles.",
			Priority:     2,
		},
		{
			ID:           "storm-3",
			Icon:         "battery",
			Instruction:  "Charge your devices and have backup power ready",
			WhyItMatters: "Power outages are common during severe storms.",
			Priority:     3,
		},
	},
	"flood": {
		{
			ID:           "flood-1",
			Icon:         "home",
			Instruction:  "Move to higher ground immediately if water is rising",
			WhyItMatters: "Floodwaters can rise rapidly and become life-threatening within minutes.",
			Priority:     1,
		},
		{
			ID:           "flood-2",
			Icon:         "car",
			Instruction:  "Never drive through flooded roads - Turn Around, Don't Drown",
			WhyItMatters: "Just 6 inches of moving water can knock you down. Two feet of water can float a car.",
			Priority:     2,
		},
		{
			ID:           "flood-3",
			Icon:         "water",
			Instruction:  "Do not drink flood water - use bottled or boiled water",
			WhyItMatters: "Floodwater may contain sewage, chemicals, and other contaminants.",
			Priority:     3,
		},
	},
	"heat": {
		{
			ID:           "heat-1",
			Icon:         "home",
			Instruction:  "Stay in air-conditioned spaces as much as possible",
			WhyItMatters: "Air conditioning is the most effective way to prevent heat-related illness.",
			Priority:     1,
		},
		{
			ID:           "heat-2",
			Icon:         "water",
			Instruction:  "Drink plenty of water, even if you don't feel thirsty",
			WhyItMatters: "During extreme heat, your body loses fluids faster than normal.",
			Priority:     2,
		},
		{
			ID:           "heat-3",
			Icon:         "phone",
			Instruction:  "Check on elderly neighbors and those without AC",
			WhyItMatters: "Older adults are at highest risk for heat-related illness.",
			Priority:     3,
		},
	},
	"winter": {
		{
			ID:           "winter-1",
			Icon:         "home",
			Instruction:  "Stay indoors and limit exposure to cold",
			WhyItMatters: "Frostbite and hypothermia can occur quickly in extreme cold.",
			Priority:     1,
		},
		{
			ID:           "winter-2",
			Icon:         "battery",
			Instruction:  "Have backup heat and power sources ready",
			WhyItMatters: "Power outages during winter can make indoor temperatures dangerous.",
			Priority:     2,
		},
		{
			ID:           "winter-3",
			Icon:         "car",
			Instruction:  "Keep emergency supplies in your vehicle if you must travel",
			WhyItMatters: "If stranded in winter weather, supplies can be life-saving.",
			Priority:     3,
		},
	},
	"wildfire": {
		{
			ID:           "fire-1",
			Icon:         "car",
			Instruction:  "Be ready to evacuate immediately if ordered",
			WhyItMatters: "Wildfires can spread rapidly. Early evacuation is the safest option.",
			Priority:     1,
		},
		{
			ID:           "fire-2",
			Icon:         "home",
			Instruction:  "Close all windows and doors to prevent embers from entering",
			WhyItMatters: "Flying embers can travel miles and ignite structures.",
			Priority:     2,
		},
		{
			ID:           "fire-3",
			Icon:         "shield",
			Instruction:  "Wear a mask if air quality is poor",
			WhyItMatters: "Wildfire smoke contains fine particles that can cause respiratory problems.",
			Priority:     3,
		},
	},
	"hurricane": {
		{
			ID:           "hurricane-1",
			Icon:         "home",
			Instruction:  "Evacuate if ordered by local authorities",
			WhyItMatters: "Storm surge causes the most deaths. Evacuation orders save lives.",
			Priority:     1,
		},
		{
			ID:           "hurricane-2",
			Icon:         "shield",
			Instruction:  "If sheltering, stay in an interior room away from windows",
			WhyItMatters: "Hurricane-force winds can shatter windows and cause structural damage.",
			Priority:     2,
		},
		{
			ID:           "hurricane-3",
			Icon:         "water",
			Instruction:  "Fill bathtubs and containers with water for emergency use",
			WhyItMatters: "Water service may be disrupted during and after the storm.",
			Priority:     3,
		},
	},
	"default": {
		{
			ID:           "default-1",
			Icon:         "radio",
			Instruction:  "Monitor local news and official sources for updates",
			WhyItMatters: "Conditions can change rapidly. Staying informed helps you respond appropriately.",
			Priority:     1,
		},
		{
			ID:           "default-2",
			Icon:         "battery",
			Instruction:  "Ensure devices are charged and backup power is available",
			WhyItMatters: "Staying connected is critical during emergencies.",
			Priority:     2,
		},
		{
			ID:           "default-3",
			Icon:         "home",
			Instruction:  "Have an emergency kit ready with essentials",
			WhyItMatters: "Being prepared helps you stay safe during any emergency.",
			Priority:     3,
		},
	},
}

// personalizedCards maps composed lookup keys to supplementary guidance.
// Keys are "{alertType}_{ageGroup}", "{alertType}_family",
// "{alertType}_{condition}" and "all_{condition}". Unknown keys simply
// contribute nothing.
var personalizedCards = map[string][]catalogCard{
	"heat_student": {
		{
			ID:           "heat-student-1",
			Icon:         "water",
			Instruction:  "Carry a water bottle when walking to campus",
			WhyItMatters: "Staying hydrated during your commute prevents heat exhaustion.",
			Priority:     4,
			ForAgeGroups: []profile.AgeGroup{profile.AgeStudent},
		},
		{
			ID:           "heat-student-2",
			Icon:         "home",
			Instruction:  "Study in air-conditioned libraries or common areas",
			WhyItMatters: "Campus buildings often have better cooling than dorms.",
			Priority:     5,
			ForAgeGroups: []profile.AgeGroup{profile.AgeStudent},
		},
	},
	"winter_student": {
		{
			ID:           "winter-student-1",
			Icon:         "shield",
			Instruction:  "Dress in layers and carry extra warm clothing for campus",
			WhyItMatters: "Walking between buildings in extreme cold requires proper protection.",
			Priority:     4,
			ForAgeGroups: []profile.AgeGroup{profile.AgeStudent},
		},
		{
			ID:           "winter-student-2",
			Icon:         "phone",
			Instruction:  "Check if classes are cancelled before leaving",
			WhyItMatters: "Many schools close during severe winter weather.",
			Priority:     5,
			ForAgeGroups: []profile.AgeGroup{profile.AgeStudent},
		},
	},
	"heat_senior": {
		{
			ID:           "heat-senior-1",
			Icon:         "firstaid",
			Instruction:  "Ensure all medications are stored properly in cool conditions",
			WhyItMatters: "Heat can damage many common medications.",
			Priority:     4,
			ForAgeGroups: []profile.AgeGroup{profile.AgeSenior},
		},
		{
			ID:           "heat-senior-2",
			Icon:         "home",
			Instruction:  "Avoid going outdoors during peak heat hours (10am-4pm)",
			WhyItMatters: "Seniors are at higher risk of heat stroke and dehydration.",
			Priority:     5,
			ForAgeGroups: []profile.AgeGroup{profile.AgeSenior},
		},
		{
			ID:           "heat-senior-3",
			Icon:         "phone",
			Instruction:  "Arrange daily check-in calls with family or neighbors",
			WhyItMatters: "Heat illness can progress quickly in older adults.",
			Priority:     6,
			ForAgeGroups: []profile.AgeGroup{profile.AgeSenior},
		},
	},
	"winter_senior": {
		{
			ID:           "winter-senior-1",
			Icon:         "firstaid",
			Instruction:  "Stock at least 2 weeks of prescription medications",
			WhyItMatters: "Winter storms may prevent pharmacy trips.",
			Priority:     4,
			ForAgeGroups: []profile.AgeGroup{profile.AgeSenior},
		},
		{
			ID:           "winter-senior-2",
			Icon:         "home",
			Instruction:  "Avoid shoveling snow - arrange for help if needed",
			WhyItMatters: "Snow shoveling significantly increases heart attack risk in seniors.",
			Priority:     5,
			ForAgeGroups: []profile.AgeGroup{profile.AgeSenior},
		},
	},
	"flood_family": {
		{
			ID:            "flood-family-1",
			Icon:          "shield",
			Instruction:   "Establish a family meeting point if separated during evacuation",
			WhyItMatters:  "Having a plan prevents panic and ensures everyone is accounted for.",
			Priority:      4,
			ForHouseholds: []profile.HouseholdType{profile.HouseholdSmallFamily, profile.HouseholdLargeFamily},
		},
		{
			ID:            "flood-family-2",
			Icon:          "water",
			Instruction:   "Pack extra water and snacks for children in your emergency kit",
			WhyItMatters:  "Children need more frequent hydration and may need comfort foods.",
			Priority:      5,
			ForHouseholds: []profile.HouseholdType{profile.HouseholdSmallFamily, profile.HouseholdLargeFamily},
		},
	},
	"tornado_family": {
		{
			ID:            "tornado-family-1",
			Icon:          "shield",
			Instruction:   "Practice tornado drills with your children regularly",
			WhyItMatters:  "Children who know what to do respond faster in emergencies.",
			Priority:      4,
			ForHouseholds: []profile.HouseholdType{profile.HouseholdSmallFamily, profile.HouseholdLargeFamily},
		},
		{
			ID:            "tornado-family-2",
			Icon:          "home",
			Instruction:   "Designate a safe room and keep comfort items there for kids",
			WhyItMatters:  "Familiar items help children stay calm during scary situations.",
			Priority:      5,
			ForHouseholds: []profile.HouseholdType{profile.HouseholdSmallFamily, profile.HouseholdLargeFamily},
		},
	},
	"all_medical-needs": {
		{
			ID:            "medical-1",
			Icon:          "firstaid",
			Instruction:   "Keep a 2-week supply of all prescription medications ready",
			WhyItMatters:  "Pharmacies may be closed during emergencies.",
			Priority:      4,
			ForConditions: []profile.Condition{profile.ConditionMedicalNeeds},
		},
		{
			ID:            "medical-2",
			Icon:          "battery",
			Instruction:   "Have backup power for medical devices",
			WhyItMatters:  "Power outages can be life-threatening if you depend on medical equipment.",
			Priority:      5,
			ForConditions: []profile.Condition{profile.ConditionMedicalNeeds},
		},
	},
	"all_mobility-issues": {
		{
			ID:            "mobility-1",
			Icon:          "phone",
			Instruction:   "Register with your local emergency services for evacuation assistance",
			WhyItMatters:  "First responders can prioritize those who need help evacuating.",
			Priority:      4,
			ForConditions: []profile.Condition{profile.ConditionMobilityIssues},
		},
		{
			ID:            "mobility-2",
			Icon:          "home",
			Instruction:   "Keep mobility aids and essentials on the ground floor",
			WhyItMatters:  "Quick access to aids is critical during emergencies.",
			Priority:      5,
			ForConditions: []profile.Condition{profile.ConditionMobilityIssues},
		},
	},
	"all_pets": {
		{
			ID:            "pets-1",
			Icon:          "shield",
			Instruction:   "Prepare a pet emergency kit with food, water, and medications",
			WhyItMatters:  "Pets need emergency supplies just like humans.",
			Priority:      4,
			ForConditions: []profile.Condition{profile.ConditionPets},
		},
		{
			ID:            "pets-2",
			Icon:          "car",
			Instruction:   "Know pet-friendly evacuation shelters in your area",
			WhyItMatters:  "Not all shelters accept pets - plan ahead.",
			Priority:      5,
			ForConditions: []profile.Condition{profile.ConditionPets},
		},
	},
	"flood_pets": {
		{
			ID:            "flood-pets-1",
			Icon:          "car",
			Instruction:   "Never leave pets behind during flood evacuations",
			WhyItMatters:  "Floodwaters rise quickly and pets cannot escape on their own.",
			Priority:      6,
			ForConditions: []profile.Condition{profile.ConditionPets},
		},
	},
	"all_young-children": {
		{
			ID:            "children-1",
			Icon:          "shield",
			Instruction:   "Pack comfort items like toys and blankets in emergency kit",
			WhyItMatters:  "Familiar items help young children cope with stressful situations.",
			Priority:      4,
			ForConditions: []profile.Condition{profile.ConditionYoungChildren},
		},
		{
			ID:            "children-2",
			Icon:          "water",
			Instruction:   "Stock extra formula, diapers, and baby food",
			WhyItMatters:  "Stores may be closed during emergencies.",
			Priority:      5,
			ForConditions: []profile.Condition{profile.ConditionYoungChildren},
		},
	},
	"heat_young-children": {
		{
			ID:            "heat-children-1",
			Icon:          "car",
			Instruction:   "Never leave children in parked vehicles - even for a minute",
			WhyItMatters:  "Car interiors can reach deadly temperatures in minutes.",
			Priority:      6,
			ForConditions: []profile.Condition{profile.ConditionYoungChildren},
		},
	},
}
