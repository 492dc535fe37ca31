package guide

// fallbackAdvice is the static per-type guidance used whenever generation
// fails or is not configured.
var fallbackAdvice = map[string]Advice{
	"winter": {
		Explanation: "A winter weather alert indicates potentially hazardous conditions including snow, ice, or extreme cold. Stay informed and prepare for reduced mobility and possible power outages.",
		Checklist: []string{
			"Stock up on essential supplies including food, water, and medications",
			"Keep warm clothing and blankets readily accessible",
			"Check heating systems and have backup heat sources ready",
			"Charge all devices and keep flashlights with fresh batteries",
			"Avoid unnecessary travel until conditions improve",
		},
	},
	"heat": {
		Explanation: "A heat alert means temperatures are dangerously high and could pose health risks. Stay hydrated and limit outdoor activities during peak heat hours.",
		Checklist: []string{
			"Drink plenty of water throughout the day",
			"Stay in air-conditioned spaces when possible",
			"Avoid strenuous outdoor activities between 10am-4pm",
			"Check on elderly neighbors and family members",
			"Never leave children or pets in parked vehicles",
		},
	},
	"flood": {
		Explanation: "A flood warning indicates rising water levels that may affect your area. Move to higher ground if necessary and avoid walking or driving through floodwaters.",
		Checklist: []string{
			"Move important documents and valuables to higher floors",
			"Prepare an emergency go-bag with essentials",
			"Never walk or drive through flooded areas",
			"Know your evacuation route and shelter locations",
			"Turn off utilities if instructed by authorities",
		},
	},
	"tornado": {
		Explanation: "A tornado warning means a tornado has been sighted or indicated by radar. Seek shelter immediately in the lowest, most interior room of a sturdy building.",
		Checklist: []string{
			"Move immediately to your designated safe room or basement",
			"Stay away from windows, doors, and exterior walls",
			"Cover yourself with blankets or a mattress for protection",
			"Keep emergency supplies including water and first aid kit nearby",
			"Listen to local news for updates and all-clear announcements",
		},
	},
	"default": {
		Explanation: "An emergency alert has been issued for your area. Stay informed through official channels and follow guidance from local authorities.",
		Checklist: []string{
			"Stay tuned to local news and emergency broadcasts",
			"Ensure your phone is charged for emergency communications",
			"Have essential supplies ready including water, food, and medications",
			"Know your evacuation routes and meeting points",
			"Check on family members and neighbors who may need assistance",
		},
	},
}

// Fallback returns the static advice for an alert type, or the generic
// default set.
func Fallback(alertType string) Advice {
	if advice, ok := fallbackAdvice[alertType]; ok {
		return advice
	}
	return fallbackAdvice["default"]
}
