package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultDerivedValues(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"sky height", cfg.GetSkyHeight(), 120},
		{"ground height", float64(cfg.GetGroundHeight()), 120},
		{"horizon", float64(cfg.GetHorizon()), 120},
		{"player scanline", float64(cfg.GetPlayerI()), 170},
		{"player edge", cfg.GetPlayerEdge(), 160},
		{"max road width", cfg.GetMaxRoadWidth(), 352},
		{"second row", cfg.GetSecondRowY(), 28},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := c.got - c.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("got %v, want %v", c.got, c.want)
			}
		})
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("scoring:\n  start_funding: 50\nspawns:\n  walls:\n    count: 3\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Scoring.StartFunding != 50 {
		t.Errorf("start funding = %v, want 50", cfg.Scoring.StartFunding)
	}
	if cfg.Scoring.StartTime != 90 {
		t.Errorf("start time = %d, want default 90", cfg.Scoring.StartTime)
	}
	if cfg.Spawns.Walls.Count != 3 {
		t.Errorf("wall count = %d, want 3", cfg.Spawns.Walls.Count)
	}
	// Unset nested fields of a partially specified section keep defaults.
	if cfg.Spawns.Walls.Chance != 0.05 {
		t.Errorf("wall chance = %v, want 0.05", cfg.Spawns.Walls.Chance)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero width", "display:\n  screen_width: 0\n"},
		{"ground fraction", "road:\n  ground_percent: 1.5\n"},
		{"slow factor", "timing:\n  slow_multiplier: 0.5\n"},
		{"player below screen", "player:\n  depth_below_horizon: 500\n"},
		{"spawn chance", "spawns:\n  golds:\n    chance: 2\n"},
		{"particle pool", "effects:\n  wall_particle_pool: 3\n"},
		{"volume", "audio:\n  volume: 1.5\n"},
		{"sample rate", "audio:\n  enabled: true\n  sample_rate: 0\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("display: [unclosed"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrInvalid) {
		t.Errorf("syntax error should not be reported as ErrInvalid: %v", err)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Display.ScreenWidth != 320 {
		t.Errorf("screen width = %d, want 320", cfg.Display.ScreenWidth)
	}
	if GlobalConfig != cfg {
		t.Error("GlobalConfig not set")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  start_time: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Scoring.StartTime != 30 {
		t.Errorf("start time = %d, want 30", cfg.Scoring.StartTime)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig on missing file should fail")
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("config.yaml drifted from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}
