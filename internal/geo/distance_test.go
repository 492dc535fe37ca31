package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Run("identical points", func(t *testing.T) {
		assert.Zero(t, DistanceKm(45.42, -75.69, 45.42, -75.69))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := DistanceKm(45.4215, -75.6972, 43.6532, -79.3832) // Ottawa -> Toronto
		d2 := DistanceKm(43.6532, -79.3832, 45.4215, -75.6972)
		assert.Equal(t, d1, d2)
	})

	t.Run("known distance", func(t *testing.T) {
		// Ottawa to Toronto is roughly 350 km.
		d := DistanceKm(45.4215, -75.6972, 43.6532, -79.3832)
		assert.InDelta(t, 350, d, 10)
	})

	t.Run("antipodal points", func(t *testing.T) {
		// Half the Earth's circumference, about 20015 km.
		d := DistanceKm(0, 0, 0, 180)
		assert.InDelta(t, 20015, d, 5)
	})
}
