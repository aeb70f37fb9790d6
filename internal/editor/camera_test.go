package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoomClampedToRange(t *testing.T) {
	c := NewCamera()

	for i := 0; i < 100; i++ {
		c.ZoomIn()
		assert.LessOrEqual(t, c.Zoom, maxZoom)
	}
	assert.Equal(t, maxZoom, c.Zoom)

	for i := 0; i < 100; i++ {
		c.ZoomOut()
		assert.GreaterOrEqual(t, c.Zoom, minZoom)
	}
	assert.Equal(t, minZoom, c.Zoom)
}

func TestZoomStep(t *testing.T) {
	c := NewCamera()
	c.ZoomIn()
	assert.InDelta(t, 1.1, c.Zoom, 1e-9)
	c.ZoomOut()
	c.ZoomOut()
	assert.InDelta(t, 0.9, c.Zoom, 1e-9)
}

func TestSetZoomClamps(t *testing.T) {
	c := NewCamera()
	c.SetZoom(10)
	assert.Equal(t, maxZoom, c.Zoom)
	c.SetZoom(0.01)
	assert.Equal(t, minZoom, c.Zoom)
}

func TestPanAccumulates(t *testing.T) {
	c := NewCamera()
	c.PanBy(20, 30)
	c.PanBy(-5, 10)
	assert.Equal(t, 15.0, c.Pan.X)
	assert.Equal(t, 40.0, c.Pan.Y)
}
