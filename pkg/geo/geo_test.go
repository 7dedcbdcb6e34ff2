package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_ZeroForIdenticalPoints(t *testing.T) {
	assert.Zero(t, DistanceKm(51.5074, -0.1278, 51.5074, -0.1278))
	assert.Zero(t, DistanceKm(0, 0, 0, 0))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	// Лондон и Париж
	d1 := DistanceKm(51.5074, -0.1278, 48.8566, 2.3522)
	d2 := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	assert.Equal(t, d1, d2)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Лондон - Париж: примерно 344 км по прямой
	d := DistanceKm(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 344.0, d, 2.0)
}

func TestDistanceKm_MonotonicWithSeparation(t *testing.T) {
	// Чем дальше точка по долготе, тем больше расстояние
	near := DistanceKm(50.0, 0.0, 50.0, 1.0)
	far := DistanceKm(50.0, 0.0, 50.0, 2.0)
	assert.Greater(t, far, near)
}

func TestEtaMinutes(t *testing.T) {
	// 10 км при 50 км/ч -> 12 минут
	assert.Equal(t, 12, EtaMinutes(10, 50))
	// Нулевая дистанция -> ноль минут
	assert.Equal(t, 0, EtaMinutes(0, 50))
	// Округление до ближайшего целого: 10.5 км -> 12.6 мин -> 13
	assert.Equal(t, 13, EtaMinutes(10.5, 50))
}
