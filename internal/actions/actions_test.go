package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arshya-tech/ClearAlert/internal/profile"
)

func cardIDs(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func TestForAlert(t *testing.T) {
	t.Run("base cards only for an empty profile", func(t *testing.T) {
		cards := ForAlert("tornado", "alert-1", profile.Profile{})
		require.Len(t, cards, 3)
		assert.Equal(t, []string{"tornado-1", "tornado-2", "tornado-3"}, cardIDs(cards))
		for _, c := range cards {
			assert.Equal(t, "alert-1", c.AlertID)
			assert.False(t, c.Personalized)
		}
	})

	t.Run("senior heat profile appends senior cards in priority order", func(t *testing.T) {
		p := profile.Profile{AgeGroup: profile.AgeSenior}
		cards := ForAlert("heat", "alert-2", p)
		require.Len(t, cards, 6)
		assert.Equal(t, []string{
			"heat-1", "heat-2", "heat-3",
			"heat-senior-1", "heat-senior-2", "heat-senior-3",
		}, cardIDs(cards))

		assert.False(t, cards[2].Personalized)
		assert.True(t, cards[3].Personalized)
		assert.Equal(t, 4, cards[3].Priority)
		assert.Equal(t, 6, cards[5].Priority)
	})

	t.Run("family household adds family cards", func(t *testing.T) {
		small := profile.Profile{HouseholdType: profile.HouseholdSmallFamily}
		cards := ForAlert("tornado", "a", small)
		assert.Equal(t, []string{
			"tornado-1", "tornado-2", "tornado-3",
			"tornado-family-1", "tornado-family-2",
		}, cardIDs(cards))

		large := profile.Profile{HouseholdType: profile.HouseholdLargeFamily}
		assert.Len(t, ForAlert("flood", "a", large), 5)

		solo := profile.Profile{HouseholdType: profile.HouseholdSingle}
		assert.Len(t, ForAlert("tornado", "a", solo), 3)
	})

	t.Run("conditions add both alert-specific and general cards", func(t *testing.T) {
		p := profile.Profile{SpecialConditions: []profile.Condition{profile.ConditionPets}}
		cards := ForAlert("flood", "a", p)
		assert.Equal(t, []string{
			"flood-1", "flood-2", "flood-3",
			"pets-1", "pets-2", "flood-pets-1",
		}, cardIDs(cards))
	})

	t.Run("multiple conditions accumulate", func(t *testing.T) {
		p := profile.Profile{SpecialConditions: []profile.Condition{
			profile.ConditionMedicalNeeds,
			profile.ConditionMobilityIssues,
		}}
		cards := ForAlert("winter", "a", p)
		assert.Equal(t, []string{
			"winter-1", "winter-2", "winter-3",
			"medical-1", "mobility-1", "medical-2", "mobility-2",
		}, cardIDs(cards))
	})

	t.Run("unknown alert type falls back to default set", func(t *testing.T) {
		cards := ForAlert("volcano", "a", profile.Profile{})
		assert.Equal(t, []string{"default-1", "default-2", "default-3"}, cardIDs(cards))
	})

	t.Run("empty alert id becomes unknown", func(t *testing.T) {
		cards := ForAlert("heat", "", profile.Profile{})
		require.NotEmpty(t, cards)
		assert.Equal(t, "unknown", cards[0].AlertID)
	})

	t.Run("age group without matching catalog entry adds nothing", func(t *testing.T) {
		p := profile.Profile{AgeGroup: profile.AgeAdult}
		assert.Len(t, ForAlert("heat", "a", p), 3)
	})
}
