// Package depthmap precomputes the per-scanline perspective table that the
// road renderer, sprite placement and collision all read from.
package depthmap

import (
	"math"

	"mailtruck/internal/config"
	"mailtruck/internal/mathutil"
)

// Extent is a horizontal span in screen space.
type Extent struct {
	Left  float64
	Right float64
}

// Width returns Right - Left.
func (e Extent) Width() float64 {
	return e.Right - e.Left
}

// Map holds one entry per scanline. It is built once and never mutated.
type Map struct {
	Depth      []float64
	Road       []Extent
	Centerline []Extent

	Width        int
	Height       int
	GroundHeight int
	// Horizon is the scanline whose depth is zero.
	Horizon   int
	SkyHeight float64

	MaxRoadWidth       float64
	MaxCenterlineWidth float64
	RoadStartX         float64
}

// New builds the table for the configured screen and camera.
func New(cfg *config.Config) *Map {
	width := cfg.GetScreenWidth()
	height := cfg.GetScreenHeight()

	m := &Map{
		Depth:              make([]float64, height),
		Road:               make([]Extent, height),
		Centerline:         make([]Extent, height),
		Width:              width,
		Height:             height,
		GroundHeight:       cfg.GetGroundHeight(),
		Horizon:            cfg.GetHorizon(),
		SkyHeight:          cfg.GetSkyHeight(),
		MaxRoadWidth:       cfg.GetMaxRoadWidth(),
		MaxCenterlineWidth: float64(width) * cfg.Road.CenterlineWidthPercent,
	}
	m.RoadStartX = (float64(width) - m.MaxRoadWidth) / 2

	for i := 0; i < height; i++ {
		d := i - m.Horizon
		if d != 0 {
			m.Depth[i] = cfg.Road.CameraHeight / float64(d)
		}

		// Both extents taper with the screen fraction, not with depth.
		percent := float64(i) / float64(height)
		m.Road[i] = m.extent(m.MaxRoadWidth * percent)
		m.Centerline[i] = m.extent(m.MaxCenterlineWidth * percent)
	}

	return m
}

func (m *Map) extent(w float64) Extent {
	left := m.RoadStartX + (m.MaxRoadWidth-w)/2
	return Extent{Left: left, Right: left + w}
}

// RoadAt returns the road extent at scanline i, clamping i into the table.
func (m *Map) RoadAt(i int) Extent {
	return m.Road[mathutil.IntClamp(i, 0, m.Height-1)]
}

// CenterlineAt returns the centerline extent at scanline i, clamping i.
func (m *Map) CenterlineAt(i int) Extent {
	return m.Centerline[mathutil.IntClamp(i, 0, m.Height-1)]
}

// DepthAt returns the signed depth at scanline i, clamping i.
func (m *Map) DepthAt(i int) float64 {
	return m.Depth[mathutil.IntClamp(i, 0, m.Height-1)]
}

// Search bisects the whole table for depth t, comparing signed values as
// stored. If no entry equals t the last probed index is returned. The table
// is only ordered within each side of the horizon, so results across the
// horizon are meaningless; use SearchBelowHorizon for ground depths.
func (m *Map) Search(t float64) int {
	return m.bisect(t, 0, m.Height-1)
}

// SearchBelowHorizon bisects only the ground rows, where depth strictly
// decreases as i grows. It returns -1 when there are no ground rows.
func (m *Map) SearchBelowHorizon(t float64) int {
	return m.bisect(t, m.Horizon+1, m.Height-1)
}

func (m *Map) bisect(t float64, l, r int) int {
	i := -1
	for l <= r {
		i = (l + r) / 2
		z := m.Depth[i]
		switch {
		case z < t:
			r = i - 1
		case z > t:
			l = i + 1
		default:
			return i
		}
	}
	return i
}

// Scale is the perspective scale of a sprite whose top sits on scanline i.
func (m *Map) Scale(i int) float64 {
	return math.Min(float64(i)/float64(m.Height), 1)
}
