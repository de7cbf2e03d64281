package render

import rl "github.com/gen2brain/raylib-go/raylib"

// Floor grid: 0.5 unit cells with a brighter line every 2 units, just under the base plate.
const (
	gridExtent     = 10
	gridMinorStep  = 0.5
	gridMajorEvery = 4
	gridY          = -1.81
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 200
)

// drawFloorGrid draws the XZ grid at gridY plus the lathe axis (X, red) and the depth axis
// (Z, blue) through the grid centre. Reuses start/end vectors to avoid per-frame allocations.
func drawFloorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	const lines = int(2 * gridExtent / gridMinorStep)
	var start, end rl.Vector3
	for i := 0; i <= lines; i++ {
		c := minor
		if i%gridMajorEvery == 0 {
			c = major
		}
		v := float32(-gridExtent + float32(i)*gridMinorStep)
		start.X, start.Y, start.Z = v, gridY, -gridExtent
		end.X, end.Y, end.Z = v, gridY, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, gridY, v
		end.X, end.Y, end.Z = gridExtent, gridY, v
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = -gridExtent, gridY, 0
	end.X, end.Y, end.Z = gridExtent, gridY, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, gridY, -gridExtent
	end.X, end.Y, end.Z = 0, gridY, gridExtent
	rl.DrawLine3D(start, end, axisZ)
}
