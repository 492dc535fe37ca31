// Package actions selects guidance cards and preparedness checklist items
// for an alert type and user profile. Selection is a pure table lookup: no
// inference, unknown keys contribute nothing.
package actions

import (
	"fmt"
	"sort"

	"github.com/Arshya-tech/ClearAlert/internal/profile"
)

// ForAlert returns the guidance cards for an alert type and profile, tagged
// with alertID and sorted by ascending priority. The sort is stable, so ties
// keep catalog order and personalized cards (priority 4+) always render
// after the base set.
func ForAlert(alertType, alertID string, p profile.Profile) []Card {
	base, ok := baseCards[alertType]
	if !ok {
		base = baseCards["default"]
	}

	selected := make([]catalogCard, 0, len(base))
	selected = append(selected, base...)
	selected = append(selected, personalizedFor(alertType, p)...)

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Priority < selected[j].Priority
	})

	if alertID == "" {
		alertID = "unknown"
	}

	cards := make([]Card, 0, len(selected))
	for _, c := range selected {
		cards = append(cards, Card{
			ID:           c.ID,
			AlertID:      alertID,
			Icon:         c.Icon,
			Instruction:  c.Instruction,
			WhyItMatters: c.WhyItMatters,
			Priority:     c.Priority,
			Personalized: c.Priority > 3,
		})
	}
	return cards
}

// personalizedFor collects supplementary cards by composing lookup keys from
// the profile: age group, family household, then per-condition keys both
// alert-specific and alert-agnostic.
func personalizedFor(alertType string, p profile.Profile) []catalogCard {
	var selected []catalogCard

	if p.AgeGroup != "" {
		selected = append(selected, personalizedCards[fmt.Sprintf("%s_%s", alertType, p.AgeGroup)]...)
	}

	if p.HasFamily() {
		selected = append(selected, personalizedCards[alertType+"_family"]...)
	}

	for _, condition := range p.SpecialConditions {
		selected = append(selected, personalizedCards[fmt.Sprintf("%s_%s", alertType, condition)]...)
		selected = append(selected, personalizedCards[fmt.Sprintf("all_%s", condition)]...)
	}

	return selected
}
