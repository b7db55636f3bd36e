package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/horde/common"
)

func TestViewRoundTrip(t *testing.T) {
	v := View{CamX: 3, CamZ: -2, Zoom: 20, Width: 1280, Height: 720}

	sx, sy := v.ToScreen(common.V3(3, 7, -2))
	assert.Equal(t, float32(640), sx, "camera centre is screen centre")
	assert.Equal(t, float32(360), sy)

	x, z := v.ToWorld(700, 300)
	px, py := v.ToScreen(common.V3(x, 0, z))
	assert.InDelta(t, 700, px, 1e-3)
	assert.InDelta(t, 300, py, 1e-3)
}
