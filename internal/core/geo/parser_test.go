package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

func TestParse_DecimalPair(t *testing.T) {
	c, ok := Parse("9.7489,-83.7534")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinates{Lat: 9.7489, Lng: -83.7534}, c)
}

func TestParse_DecimalPairWithSurroundingText(t *testing.T) {
	c, ok := Parse("pickup at (9.9281, -84.0907) near the gate")
	require.True(t, ok)
	assert.Equal(t, 9.9281, c.Lat)
	assert.Equal(t, -84.0907, c.Lng)
}

func TestParse_DecimalPairTakesFirstMatch(t *testing.T) {
	c, ok := Parse("1.5,2.5 then 3.5,4.5")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinates{Lat: 1.5, Lng: 2.5}, c)
}

func TestParse_DMS(t *testing.T) {
	c, ok := Parse(`9°44'56.0"N 83°45'12.2"W`)
	require.True(t, ok)
	assert.InDelta(t, 9.7489, c.Lat, 0.001)
	assert.InDelta(t, -83.7534, c.Lng, 0.001)
}

func TestParse_DMSHemispheres(t *testing.T) {
	c, ok := Parse(`33°52'4.5"S 151°12'36"E`)
	require.True(t, ok)
	assert.InDelta(t, -33.8679, c.Lat, 0.001)
	assert.InDelta(t, 151.21, c.Lng, 0.001)
}

func TestParse_DMSIsPermissive(t *testing.T) {
	// Minutes past 59 and latitudes past 90 are accepted as-is.
	c, ok := Parse(`95°75'0"N 10°0'0"E`)
	require.True(t, ok)
	assert.InDelta(t, 96.25, c.Lat, 1e-9)
	assert.InDelta(t, 10, c.Lng, 1e-9)
}

func TestParse_OutOfRangeDecimalAccepted(t *testing.T) {
	c, ok := Parse("123.0,-500.25")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinates{Lat: 123.0, Lng: -500.25}, c)
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"not a coordinate",
		"10,20",             // integers are not a decimal pair
		`9°44'1.2.3"N 83°45'12.2"W`, // malformed seconds
		`9°44'56.0"E 83°45'12.2"N`,  // hemispheres swapped
	} {
		_, ok := Parse(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestParse_RoundTripsCoordinatesString(t *testing.T) {
	for _, c := range []domain.Coordinates{
		{Lat: 10, Lng: -84},
		{Lat: 9.748912345, Lng: -83.7534},
		{Lat: -0.5, Lng: 0},
	} {
		got, ok := Parse(c.String())
		require.True(t, ok, "input %q", c.String())
		assert.Equal(t, c, got)
	}
}
