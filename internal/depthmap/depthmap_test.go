package depthmap

import (
	"math"
	"testing"

	"mailtruck/internal/config"
)

func TestDepthZeroAtHorizon(t *testing.T) {
	m := New(config.Default())
	if m.Horizon != 120 {
		t.Fatalf("horizon = %d, want 120", m.Horizon)
	}
	if m.Depth[m.Horizon] != 0 {
		t.Errorf("depth at horizon = %v, want 0", m.Depth[m.Horizon])
	}
	if got := m.Depth[m.Horizon+1]; got != 30 {
		t.Errorf("depth one row below horizon = %v, want camera height 30", got)
	}
	if got := m.Depth[0]; got != -0.25 {
		t.Errorf("depth at top row = %v, want -0.25", got)
	}
}

func TestRoadWidthNonDecreasing(t *testing.T) {
	m := New(config.Default())
	for i := m.Horizon + 1; i < m.Height-1; i++ {
		for _, j := range []int{i + 1, m.Height - 1} {
			if m.Road[j].Width() < m.Road[i].Width() {
				t.Fatalf("road width shrinks from i=%d (%v) to i=%d (%v)", i, m.Road[i].Width(), j, m.Road[j].Width())
			}
			if m.Centerline[j].Width() < m.Centerline[i].Width() {
				t.Fatalf("centerline width shrinks from i=%d to i=%d", i, j)
			}
		}
	}
}

func TestExtentsCentred(t *testing.T) {
	m := New(config.Default())
	mid := float64(m.Width) / 2
	for _, i := range []int{0, m.Horizon, 200, m.Height - 1} {
		road := m.Road[i]
		if c := (road.Left + road.Right) / 2; math.Abs(c-mid) > 1e-9 {
			t.Errorf("road centre at i=%d = %v, want %v", i, c, mid)
		}
		line := m.Centerline[i]
		if c := (line.Left + line.Right) / 2; math.Abs(c-mid) > 1e-9 {
			t.Errorf("centerline centre at i=%d = %v, want %v", i, c, mid)
		}
		if line.Width() > road.Width() {
			t.Errorf("centerline wider than road at i=%d", i)
		}
	}

	bottom := m.Road[m.Height-1]
	wantW := 352.0 * 239 / 240
	if math.Abs(bottom.Width()-wantW) > 1e-9 {
		t.Errorf("bottom road width = %v, want %v", bottom.Width(), wantW)
	}
}

func TestSearchBelowHorizonRoundTrip(t *testing.T) {
	m := New(config.Default())
	for i := m.Horizon + 1; i < m.Height; i++ {
		if got := m.SearchBelowHorizon(m.Depth[i]); got != i {
			t.Errorf("SearchBelowHorizon(depth[%d]) = %d", i, got)
		}
	}
}

func TestSearchAboveHorizonRoundTrip(t *testing.T) {
	m := New(config.Default())
	for i := 0; i < m.Horizon; i++ {
		if got := m.Search(m.Depth[i]); got != i {
			t.Errorf("Search(depth[%d]) = %d", i, got)
		}
	}
}

func TestSearchBetweenEntries(t *testing.T) {
	m := New(config.Default())
	i := 150
	between := (m.Depth[i] + m.Depth[i+1]) / 2
	got := m.SearchBelowHorizon(between)
	if got != i && got != i+1 {
		t.Errorf("SearchBelowHorizon(%v) = %d, want %d or %d", between, got, i, i+1)
	}
}

func TestClampedAccessors(t *testing.T) {
	m := New(config.Default())
	if m.RoadAt(-5) != m.Road[0] {
		t.Error("RoadAt below range should clamp to row 0")
	}
	if m.RoadAt(1000) != m.Road[m.Height-1] {
		t.Error("RoadAt above range should clamp to last row")
	}
	if m.DepthAt(m.Horizon) != 0 {
		t.Error("DepthAt horizon should be 0")
	}
}

func TestScale(t *testing.T) {
	m := New(config.Default())
	cases := map[int]float64{0: 0, 120: 0.5, 240: 1, 480: 1}
	for i, want := range cases {
		if got := m.Scale(i); got != want {
			t.Errorf("Scale(%d) = %v, want %v", i, got, want)
		}
	}
}
