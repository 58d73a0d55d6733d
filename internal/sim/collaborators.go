package sim

// Sounds receives fire-and-forget audio triggers.
type Sounds interface {
	HitWall()
	HitGold()
	HitMailbox()
	AirEngine()
	GroundEngine()
	ElectionDay()
	NoFunds()
	QuietEngines()
	StartEngines()
	EnginesStarted() bool
}

// Effects receives the screen shake and landing bounce toggles.
type Effects interface {
	SetShake(on bool)
	// Land restarts the landing bounce.
	Land()
}

type nopSounds struct{}

func (nopSounds) HitWall()             {}
func (nopSounds) HitGold()             {}
func (nopSounds) HitMailbox()          {}
func (nopSounds) AirEngine()           {}
func (nopSounds) GroundEngine()        {}
func (nopSounds) ElectionDay()         {}
func (nopSounds) NoFunds()             {}
func (nopSounds) QuietEngines()        {}
func (nopSounds) StartEngines()        {}
func (nopSounds) EnginesStarted() bool { return true }

type nopEffects struct{}

func (nopEffects) SetShake(bool) {}
func (nopEffects) Land()         {}
