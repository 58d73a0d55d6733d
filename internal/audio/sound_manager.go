// Package audio plays the game's procedural sound effects and engine hum.
// Every trigger is safe to call when no audio device could be opened.
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"mailtruck/internal/config"
)

const (
	groundHz = 55.0
	airHz    = 82.5
	engineDB = -3.5
)

// SoundManager implements the simulation's sound triggers on top of beep.
type SoundManager struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	ground      *beep.Ctrl
	air         *beep.Ctrl
	effects     map[string][]float64
	initialized bool
	started     bool
}

func NewSoundManager(cfg *config.Config) *SoundManager {
	sr := beep.SampleRate(cfg.Audio.SampleRate)
	sm := &SoundManager{
		sampleRate: sr,
		mixer:      &beep.Mixer{},
		effects: map[string][]float64{
			"wall":    render(sr, noise, 0, 0.25, 0.002, 0.2),
			"gold":    jingle(sr, square, []note{{988, 0.06}, {1319, 0.12}}),
			"mailbox": jingle(sr, sine, []note{{784, 0.05}, {1047, 0.05}, {1568, 0.1}}),
			"day":     jingle(sr, square, []note{{523, 0.12}, {659, 0.12}, {784, 0.12}, {1047, 0.3}}),
			"nofunds": jingle(sr, square, []note{{392, 0.2}, {0, 0.05}, {330, 0.2}, {0, 0.05}, {262, 0.45}}),
		},
	}
	return sm
}

// Initialize opens the speaker at a linear master volume in [0, 1]. On
// failure the manager stays silent.
func (sm *SoundManager) Initialize(volume float64) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sm.sampleRate, sm.sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(&effects.Volume{
		Streamer: sm.mixer,
		Base:     2,
		Volume:   math.Log2(max(volume, 0.001)),
		Silent:   volume <= 0,
	})
	sm.initialized = true
	return nil
}

// Setup builds a manager from config, logging and falling back to silence
// when audio is disabled or unavailable.
func Setup(cfg *config.Config) *SoundManager {
	sm := NewSoundManager(cfg)
	if !cfg.Audio.Enabled {
		return sm
	}
	if err := sm.Initialize(cfg.Audio.Volume); err != nil {
		log.Printf("audio: %v, continuing without sound", err)
	}
	return sm
}

func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
	sm.started = false
	sm.ground, sm.air = nil, nil
}

func (sm *SoundManager) play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(stream(sm.effects[name], 0.6))
	speaker.Unlock()
}

func (sm *SoundManager) HitWall()     { sm.play("wall") }
func (sm *SoundManager) HitGold()     { sm.play("gold") }
func (sm *SoundManager) HitMailbox()  { sm.play("mailbox") }
func (sm *SoundManager) ElectionDay() { sm.play("day") }
func (sm *SoundManager) NoFunds()     { sm.play("nofunds") }

// StartEngines begins both engine hums with only the ground one audible.
// It is called on the first key press.
func (sm *SoundManager) StartEngines() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.started = true
	if !sm.initialized || sm.ground != nil {
		return
	}

	ground, err := sm.hum(groundHz)
	if err != nil {
		log.Printf("audio: engine: %v", err)
		return
	}
	air, err := sm.hum(airHz)
	if err != nil {
		log.Printf("audio: engine: %v", err)
		return
	}
	air.Paused = true

	speaker.Lock()
	sm.ground, sm.air = ground, air
	sm.mixer.Add(ground, air)
	speaker.Unlock()
}

func (sm *SoundManager) hum(freq float64) (*beep.Ctrl, error) {
	tone, err := generators.SineTone(sm.sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   engineDB,
	}}, nil
}

func (sm *SoundManager) EnginesStarted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.started
}

func (sm *SoundManager) AirEngine()    { sm.engines(true, false) }
func (sm *SoundManager) GroundEngine() { sm.engines(false, true) }
func (sm *SoundManager) QuietEngines() { sm.engines(false, false) }

func (sm *SoundManager) engines(air, ground bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.ground == nil {
		return
	}
	speaker.Lock()
	sm.air.Paused = !air
	sm.ground.Paused = !ground
	speaker.Unlock()
}
