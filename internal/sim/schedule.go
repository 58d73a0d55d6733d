package sim

// PoolID names a decorative pool a burst can target.
type PoolID int

const (
	EnvelopePool PoolID = iota
	UIGoldPool
	WallPartPool
)

// Burst activates one decorative sprite at absolute time At.
type Burst struct {
	At   float64
	Pool PoolID
	Slot int
	X, Y float64
}

// Schedule is a fixed arena of pending bursts. Entries are never cancelled;
// one that fires after a restart re-activates a cosmetic slot, which is
// harmless.
type Schedule struct {
	entries []Burst
	live    []bool
	n       int
}

// NewSchedule allocates room for capacity pending bursts
func NewSchedule(capacity int) *Schedule {
	return &Schedule{
		entries: make([]Burst, capacity),
		live:    make([]bool, capacity),
	}
}

// Add queues b. It reports false, dropping b, when the arena is full.
func (s *Schedule) Add(b Burst) bool {
	if s.n == len(s.entries) {
		return false
	}
	for i := range s.live {
		if !s.live[i] {
			s.entries[i] = b
			s.live[i] = true
			s.n++
			return true
		}
	}
	return false
}

// Pending returns the number of queued bursts.
func (s *Schedule) Pending() int {
	return s.n
}

// Fire calls fn for every burst due at now, oldest deadline first, and
// removes it from the arena.
func (s *Schedule) Fire(now float64, fn func(Burst)) {
	for s.n > 0 {
		next := -1
		for i := range s.entries {
			if s.live[i] && s.entries[i].At <= now && (next < 0 || s.entries[i].At < s.entries[next].At) {
				next = i
			}
		}
		if next < 0 {
			return
		}
		s.live[next] = false
		s.n--
		fn(s.entries[next])
	}
}
