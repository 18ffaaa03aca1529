package geo

import (
	"errors"
	"fmt"
	"math"
)

const (
	// EarthRadiusKm - радиус Земли в километрах для формулы гаверсинусов
	EarthRadiusKm = 6371.0
	// KmPerDegree - приблизительная длина одного градуса широты
	KmPerDegree = 111.0
)

// ErrInvalidCoordinate возвращается при координатах вне допустимого диапазона
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate - точка на поверхности Земли в градусах
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate проверяет, что координаты конечны и лежат в допустимых пределах
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return fmt.Errorf("lat/lng must be finite numbers: %w", ErrInvalidCoordinate)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("lat %v out of range [-90, 90]: %w", c.Lat, ErrInvalidCoordinate)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("lng %v out of range [-180, 180]: %w", c.Lng, ErrInvalidCoordinate)
	}
	return nil
}

// Distance возвращает расстояние по большой окружности между двумя точками в километрах.
// Координаты не проверяются: NaN на входе дает NaN на выходе.
func Distance(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// RoundTo округляет значение до заданного количества знаков после запятой
func RoundTo(value float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(value*p) / p
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
