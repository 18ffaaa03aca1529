package service_test

import (
	"bytes"
	"math"
	"sync"
	"time"

	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/sirupsen/logrus"
)

var delhi = geo.Coordinate{Lat: 28.6139, Lng: 77.2090}

// newTestLogger - логгер без вывода
func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// offsetNorth сдвигает точку на km километров по меридиану
func offsetNorth(c geo.Coordinate, km float64) geo.Coordinate {
	return geo.Coordinate{Lat: c.Lat + km/geo.EarthRadiusKm*180/math.Pi, Lng: c.Lng}
}

// testClock - управляемый источник времени
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
