package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

type wave int

const (
	sine wave = iota
	square
	noise
)

// note is one step of a jingle. A zero frequency is a rest.
type note struct {
	freq float64
	dur  float64 // seconds
}

// noiseState is a xorshift generator seeded the same for every render.
type noiseState uint32

func (n *noiseState) next() float64 {
	x := uint32(*n)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	*n = noiseState(x)
	return float64(x)/float64(math.MaxUint32)*2 - 1
}

// render synthesizes a mono buffer with a linear attack/release envelope.
func render(sr beep.SampleRate, w wave, freq, dur, attack, release float64) []float64 {
	total := sr.N(seconds(dur))
	buf := make([]float64, total)
	attackN := int(attack * float64(sr))
	releaseN := int(release * float64(sr))
	releaseStart := max(total-releaseN, attackN)

	phase := 0.0
	inc := freq / float64(sr)
	rng := noiseState(0x9e3779b9)
	for i := range buf {
		var v float64
		switch w {
		case sine:
			v = math.Sin(2 * math.Pi * phase)
		case square:
			if phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case noise:
			v = rng.next()
		}
		phase += inc
		if phase >= 1 {
			phase -= 1
		}

		vol := 1.0
		if i < attackN && attackN > 0 {
			vol = float64(i) / float64(attackN)
		} else if i >= releaseStart && releaseN > 0 {
			vol = float64(total-i) / float64(releaseN)
		}
		buf[i] = v * vol
	}
	return buf
}

// jingle renders notes back to back.
func jingle(sr beep.SampleRate, w wave, notes []note) []float64 {
	var out []float64
	for _, n := range notes {
		if n.freq == 0 {
			out = append(out, make([]float64, sr.N(seconds(n.dur)))...)
			continue
		}
		out = append(out, render(sr, w, n.freq, n.dur, 0.005, n.dur/3)...)
	}
	return out
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// stream plays a mono buffer once on both channels.
func stream(buf []float64, gain float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= len(buf) {
			return 0, false
		}
		n := copy2(samples, buf[pos:], gain)
		pos += n
		return n, true
	})
}

func copy2(dst [][2]float64, src []float64, gain float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i][0] = src[i] * gain
		dst[i][1] = src[i] * gain
	}
	return n
}
