package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Road    RoadConfig    `yaml:"road"`
	Sprites SpriteConfig  `yaml:"sprites"`
	Player  PlayerConfig  `yaml:"player"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Spawns  SpawnsConfig  `yaml:"spawns"`
	Effects EffectsConfig `yaml:"effects"`
	Colors  ColorsConfig  `yaml:"colors"`
	UI      UIConfig      `yaml:"ui"`
	Audio   AudioConfig   `yaml:"audio"`
	Assets  AssetsConfig  `yaml:"assets"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowScale  int    `yaml:"window_scale"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
	PerfDebug    bool   `yaml:"perf_debug"`
}

type RoadConfig struct {
	GroundPercent          float64 `yaml:"ground_percent"`
	RoadWidthPercent       float64 `yaml:"road_width_percent"`
	CenterlineWidthPercent float64 `yaml:"centerline_width_percent"`
	CameraHeight           float64 `yaml:"camera_height"`
	RumbleWidth            float64 `yaml:"rumble_width"`
	RumbleMinPercent       float64 `yaml:"rumble_min_percent"`
	MaxTex                 float64 `yaml:"max_tex"`
	TexDen                 float64 `yaml:"tex_den"`
}

type SpriteConfig struct {
	Size            float64 `yaml:"size"`
	BigSize         float64 `yaml:"big_size"`
	CollectableSize float64 `yaml:"collectable_size"`
	AlphaIncrease   float64 `yaml:"alpha_increase"`
	Advance         float64 `yaml:"advance"`
}

type PlayerConfig struct {
	DepthBelowHorizon int     `yaml:"depth_below_horizon"`
	JumpVelocity      float64 `yaml:"jump_velocity"`
	Gravity           float64 `yaml:"gravity"`
	TurningSpeed      float64 `yaml:"turning_speed"`
	// EdgePercent is the lateral clamp as a fraction of screen width.
	EdgePercent float64 `yaml:"edge_percent"`
}

// TimingConfig values are in clock units; one frame advances the
// absolute clock by ClockStep / NormalTime.
type TimingConfig struct {
	ClockStep             float64 `yaml:"clock_step"`
	NormalTime            float64 `yaml:"normal_time"`
	SlowMultiplier        float64 `yaml:"slow_multiplier"`
	HitTime               float64 `yaml:"hit_time"`
	FlashTime             float64 `yaml:"flash_time"`
	AnimationTime         float64 `yaml:"animation_time"`
	InstructionsFlashTime float64 `yaml:"instructions_flash_time"`
	CountdownStep         float64 `yaml:"countdown_step"`
	RestartDelay          float64 `yaml:"restart_delay"`
	CollectableFlightTime float64 `yaml:"collectable_flight_time"`
	BurstDelay            float64 `yaml:"burst_delay"`
	ParticleDelay         float64 `yaml:"particle_delay"`
	TapTicks              int     `yaml:"tap_ticks"`
}

type ScoringConfig struct {
	StartFunding  float64 `yaml:"start_funding"`
	StartTime     int     `yaml:"start_time"`
	WallDamage    float64 `yaml:"wall_damage"`
	GoldAmount    float64 `yaml:"gold_amount"`
	MailboxAmount int     `yaml:"mailbox_amount"`
	MaxBallots    int     `yaml:"max_ballots_per_hit"`
	LowFunding    float64 `yaml:"low_funding"`
}

// SpawnConfig describes one road sprite pool.
type SpawnConfig struct {
	Count            int     `yaml:"count"`
	Chance           float64 `yaml:"chance"`
	MinTimeOffScreen float64 `yaml:"min_time_off_screen"`
	Big              bool    `yaml:"big"`
}

type SpawnsConfig struct {
	Walls          SpawnConfig `yaml:"walls"`
	Golds          SpawnConfig `yaml:"golds"`
	LeftMailboxes  SpawnConfig `yaml:"left_mailboxes"`
	RightMailboxes SpawnConfig `yaml:"right_mailboxes"`
}

type EffectsConfig struct {
	Envelopes        int     `yaml:"envelopes"`
	UIGolds          int     `yaml:"ui_golds"`
	WallParticles    int     `yaml:"wall_particles"`
	WallParticlePool int     `yaml:"wall_particle_pool"`
	WallParticleSize float64 `yaml:"wall_particle_size"`
	WallParticleVelX float64 `yaml:"wall_particle_vel_x"`
	WallParticleVelY float64 `yaml:"wall_particle_vel_y"`
	Clouds           int     `yaml:"clouds"`
	CloudVelMin      float64 `yaml:"cloud_vel_min"`
	CloudVelMax      float64 `yaml:"cloud_vel_max"`
	ShakeMagnitude   float64 `yaml:"shake_magnitude"`
	LandTicks        int     `yaml:"land_ticks"`
}

type ColorsConfig struct {
	Sky        [3]int `yaml:"sky"`
	Grass1     [3]int `yaml:"grass1"`
	Grass2     [3]int `yaml:"grass2"`
	Road1      [3]int `yaml:"road1"`
	Road2      [3]int `yaml:"road2"`
	BadFunding [3]int `yaml:"bad_funding"`
	Shadow     [3]int `yaml:"shadow"`
}

type UIConfig struct {
	Padding  int `yaml:"padding"`
	FontSize int `yaml:"font_size"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

type AssetsConfig struct {
	SpriteDir string `yaml:"sprite_dir"`
}

var GlobalConfig *Config

// Default returns the stock tuning of the game.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			WindowScale:  3,
			WindowTitle:  "Vote By Mail: Funding Not Found",
			Resizable:    true,
			TPS:          60,
		},
		Road: RoadConfig{
			GroundPercent:          0.5,
			RoadWidthPercent:       1.1,
			CenterlineWidthPercent: 0.009,
			CameraHeight:           30,
			RumbleWidth:            1,
			RumbleMinPercent:       0.3,
			MaxTex:                 2,
			TexDen:                 20,
		},
		Sprites: SpriteConfig{
			Size:            32,
			BigSize:         64,
			CollectableSize: 16,
			AlphaIncrease:   0.075,
			Advance:         1.4,
		},
		Player: PlayerConfig{
			DepthBelowHorizon: 50,
			JumpVelocity:      -10,
			Gravity:           0.3,
			TurningSpeed:      4.8,
			EdgePercent:       0.5,
		},
		Timing: TimingConfig{
			ClockStep:             10,
			NormalTime:            70,
			SlowMultiplier:        4,
			HitTime:               1.5,
			FlashTime:             0.25,
			AnimationTime:         0.25,
			InstructionsFlashTime: 5,
			CountdownStep:         5,
			RestartDelay:          8.57,
			CollectableFlightTime: 5,
			BurstDelay:            0.857,
			ParticleDelay:         0.0857,
			TapTicks:              18,
		},
		Scoring: ScoringConfig{
			StartFunding:  100,
			StartTime:     90,
			WallDamage:    25,
			GoldAmount:    5,
			MailboxAmount: 5,
			MaxBallots:    999,
			LowFunding:    20,
		},
		Spawns: SpawnsConfig{
			Walls:          SpawnConfig{Count: 2, Chance: 0.05, MinTimeOffScreen: 5, Big: true},
			Golds:          SpawnConfig{Count: 1, Chance: 0.01, MinTimeOffScreen: 10},
			LeftMailboxes:  SpawnConfig{Count: 1, Chance: 0.02, MinTimeOffScreen: 1, Big: true},
			RightMailboxes: SpawnConfig{Count: 1, Chance: 0.02, MinTimeOffScreen: 1, Big: true},
		},
		Effects: EffectsConfig{
			Envelopes:        100,
			UIGolds:          100,
			WallParticles:    25,
			WallParticlePool: 250,
			WallParticleSize: 4,
			WallParticleVelX: 1,
			WallParticleVelY: -3,
			Clouds:           10,
			CloudVelMin:      -0.6,
			CloudVelMax:      -0.2,
			ShakeMagnitude:   2,
			LandTicks:        8,
		},
		Colors: ColorsConfig{
			Sky:        [3]int{0x6c, 0x82, 0xa6},
			Grass1:     [3]int{0x37, 0x94, 0x6e},
			Grass2:     [3]int{0x30, 0x6b, 0x40},
			Road1:      [3]int{0x8c, 0x8e, 0x91},
			Road2:      [3]int{0xe2, 0xeb, 0xda},
			BadFunding: [3]int{0x85, 0x22, 0x17},
			Shadow:     [3]int{0xee, 0xee, 0xee},
		},
		UI: UIConfig{
			Padding:  4,
			FontSize: 20,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.6,
		},
		Assets: AssetsConfig{
			SpriteDir: "assets/sprites",
		},
	}
}

// LoadConfig loads the configuration from a YAML file. Fields missing
// from the file keep their Default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, err
	}

	// Set global config for easy access
	GlobalConfig = config

	return config, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadOrDefault(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// LoadOrDefault is LoadConfig, except that a missing file yields Default.
// Parse and validation errors are still returned.
func LoadOrDefault(filename string) (*Config, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: %s not found, using defaults", filename)
		config = Default()
		GlobalConfig = config
		return config, nil
	}
	return config, err
}

// Validate reports the first field that would break the simulation.
func (c *Config) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: display size %dx%d", ErrInvalid, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Road.GroundPercent <= 0 || c.Road.GroundPercent >= 1:
		return fmt.Errorf("%w: road.ground_percent %.3f not in (0,1)", ErrInvalid, c.Road.GroundPercent)
	case c.Road.CameraHeight <= 0:
		return fmt.Errorf("%w: road.camera_height must be positive", ErrInvalid)
	case c.Road.MaxTex <= 0 || c.Road.TexDen <= 0:
		return fmt.Errorf("%w: road texture period must be positive", ErrInvalid)
	case c.Timing.NormalTime <= 0 || c.Timing.SlowMultiplier < 1:
		return fmt.Errorf("%w: timing.normal_time and timing.slow_multiplier", ErrInvalid)
	case c.Player.DepthBelowHorizon <= 0 || c.GetHorizon()+c.Player.DepthBelowHorizon >= c.Display.ScreenHeight:
		return fmt.Errorf("%w: player.depth_below_horizon %d outside the ground", ErrInvalid, c.Player.DepthBelowHorizon)
	case c.Effects.WallParticlePool < c.Effects.WallParticles:
		return fmt.Errorf("%w: effects.wall_particle_pool smaller than one burst", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume %.2f not in [0,1]", ErrInvalid, c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalid)
	}
	for name, s := range map[string]SpawnConfig{
		"walls":           c.Spawns.Walls,
		"golds":           c.Spawns.Golds,
		"left_mailboxes":  c.Spawns.LeftMailboxes,
		"right_mailboxes": c.Spawns.RightMailboxes,
	} {
		if s.Count < 0 || s.Chance < 0 || s.Chance > 1 {
			return fmt.Errorf("%w: spawns.%s", ErrInvalid, name)
		}
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetSkyHeight is the height of the sky band in pixels (fractional).
func (c *Config) GetSkyHeight() float64 {
	return float64(c.Display.ScreenHeight) * (1.0 - c.Road.GroundPercent)
}

func (c *Config) GetGroundHeight() int {
	return int(math.Floor(float64(c.Display.ScreenHeight) * c.Road.GroundPercent))
}

// GetHorizon is the scanline where depth is zero.
func (c *Config) GetHorizon() int {
	return c.Display.ScreenHeight - c.GetGroundHeight()
}

// GetPlayerI is the fixed scanline of the truck.
func (c *Config) GetPlayerI() int {
	return c.GetHorizon() + c.Player.DepthBelowHorizon
}

func (c *Config) GetPlayerEdge() float64 {
	return float64(c.Display.ScreenWidth) * c.Player.EdgePercent
}

func (c *Config) GetMaxRoadWidth() float64 {
	return float64(c.Display.ScreenWidth) * c.Road.RoadWidthPercent
}

// GetFrameStep is how far the absolute clock moves per frame.
func (c *Config) GetFrameStep() float64 {
	return c.Timing.ClockStep / c.Timing.NormalTime
}

// GetSecondRowY is the y of the funding meter row.
func (c *Config) GetSecondRowY() float64 {
	return float64(c.UI.Padding*2 + c.UI.FontSize)
}
