package geo

// BoundingBox - прямоугольник в градусах, грубо описывающий круг поиска
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NewBoundingBox строит прямоугольник вокруг центра для радиуса в километрах.
// Дельта одинакова для широты и долготы (1 градус ~ 111 км), сжатие долготы
// к полюсам не учитывается. Диапазон долготы не переносится через ±180°:
// у центра с lng 179.99 точка с lng -179.99 в прямоугольник не попадет.
// Точное расстояние проверяется отдельно.
func NewBoundingBox(center Coordinate, radiusKm float64) BoundingBox {
	delta := radiusKm / KmPerDegree
	return BoundingBox{
		MinLat: center.Lat - delta,
		MaxLat: center.Lat + delta,
		MinLng: center.Lng - delta,
		MaxLng: center.Lng + delta,
	}
}

// Contains сообщает, попадает ли точка в прямоугольник (границы включительно)
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat &&
		c.Lng >= b.MinLng && c.Lng <= b.MaxLng
}
