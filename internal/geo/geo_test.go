package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var delhi = Coordinate{Lat: 28.6139, Lng: 77.2090}

// offsetNorth сдвигает точку на km километров по меридиану
func offsetNorth(c Coordinate, km float64) Coordinate {
	return Coordinate{Lat: c.Lat + km/EarthRadiusKm*180/math.Pi, Lng: c.Lng}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(delhi, delhi))
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]Coordinate{
		{delhi, {Lat: 19.0760, Lng: 72.8777}},
		{{Lat: -33.8688, Lng: 151.2093}, {Lat: 51.5074, Lng: -0.1278}},
		{{Lat: 89.9, Lng: 0}, {Lat: -89.9, Lng: 179.9}},
		{{Lat: 0, Lng: -179.5}, {Lat: 0, Lng: 179.5}},
	}
	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]))
	}
}

func TestDistance_KnownValues(t *testing.T) {
	// Один градус по экватору
	assert.InDelta(t, 111.195, Distance(Coordinate{0, 0}, Coordinate{0, 1}), 0.001)
	// Дели - Мумбаи
	assert.InDelta(t, 1148, Distance(delhi, Coordinate{Lat: 19.0760, Lng: 72.8777}), 5)
	// Через антимеридиан
	assert.InDelta(t, 111.195, Distance(Coordinate{0, -179.5}, Coordinate{0, 179.5}), 0.001)
}

func TestDistance_MonotonicWithSeparation(t *testing.T) {
	prev := 0.0
	for km := 1.0; km <= 50; km++ {
		d := Distance(delhi, offsetNorth(delhi, km))
		assert.Greater(t, d, prev)
		assert.InDelta(t, km, d, 1e-6)
		prev = d
	}
}

func TestDistance_NaNPropagates(t *testing.T) {
	d := Distance(Coordinate{Lat: math.NaN(), Lng: 0}, delhi)
	assert.True(t, math.IsNaN(d))
}

func TestCoordinate_Validate(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		valid bool
	}{
		{"center", delhi, true},
		{"bounds", Coordinate{Lat: -90, Lng: 180}, true},
		{"lat too big", Coordinate{Lat: 90.0001, Lng: 0}, false},
		{"lng too small", Coordinate{Lat: 0, Lng: -180.1}, false},
		{"nan", Coordinate{Lat: math.NaN(), Lng: 0}, false},
		{"inf", Coordinate{Lat: 0, Lng: math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coord.Validate()
			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 4.9, RoundTo(4.8999999, 2))
	assert.Equal(t, 3.14, RoundTo(math.Pi, 2))
	assert.Equal(t, 28.6139, RoundTo(28.61394, 4))
	assert.Equal(t, 5.1, RoundTo(5.06, 1))
}

func TestNewBoundingBox(t *testing.T) {
	box := NewBoundingBox(delhi, 111)

	assert.InDelta(t, delhi.Lat-1, box.MinLat, 1e-9)
	assert.InDelta(t, delhi.Lat+1, box.MaxLat, 1e-9)
	assert.InDelta(t, delhi.Lng-1, box.MinLng, 1e-9)
	assert.InDelta(t, delhi.Lng+1, box.MaxLng, 1e-9)
}

func TestBoundingBox_IncludesPointsWithinRadiusAlongMeridian(t *testing.T) {
	box := NewBoundingBox(delhi, 5)

	for _, km := range []float64{0, 1, 3, 4.9, 5} {
		assert.True(t, box.Contains(offsetNorth(delhi, km)), "north %v km", km)
		assert.True(t, box.Contains(offsetNorth(delhi, -km)), "south %v km", km)
	}
	assert.False(t, box.Contains(offsetNorth(delhi, 10)))
}

func TestBoundingBox_DoesNotWrapAntimeridian(t *testing.T) {
	center := Coordinate{Lat: 0, Lng: 179.99}
	across := Coordinate{Lat: 0, Lng: -179.99}
	box := NewBoundingBox(center, 5)

	// Точки по разные стороны от ±180° близки, но прямоугольник их не связывает
	assert.Less(t, Distance(center, across), 5.0)
	assert.False(t, box.Contains(across))
	assert.Greater(t, box.MaxLng, 180.0)
}
