package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryRayThroughCenterPixelPointsStraightAhead(t *testing.T) {
	c := NewPinhole(100, 100)
	ray := c.PrimaryRay(49, 49)
	assert.InDelta(t, 0, ray.D[0], 0.02)
	assert.InDelta(t, 0, ray.D[1], 0.02)
	assert.Less(t, ray.D[2], float32(0))
}

func TestPrimaryRayTopLeftPixelPointsUpAndLeft(t *testing.T) {
	c := NewPinhole(100, 100)
	ray := c.PrimaryRay(0, 0)
	assert.Less(t, ray.D[0], float32(0))
	assert.Greater(t, ray.D[1], float32(0))
}

func TestPrimaryRayDirectionIsUnitLength(t *testing.T) {
	c := NewPinhole(64, 48)
	for _, p := range [][2]int{{0, 0}, {63, 0}, {0, 47}, {63, 47}, {32, 24}} {
		ray := c.PrimaryRay(p[0], p[1])
		l := math.Sqrt(float64(ray.D[0]*ray.D[0] + ray.D[1]*ray.D[1] + ray.D[2]*ray.D[2]))
		assert.InDelta(t, 1.0, l, 1e-4)
	}
}

func TestPrimaryRayOriginIsCameraOrigin(t *testing.T) {
	c := NewPinhole(32, 32)
	ray := c.PrimaryRay(10, 10)
	assert.Equal(t, c.Origin, ray.O)
}
