// Package audio plays a short chime whenever the colour scheme changes.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// pentatonic steps, in semitones above the base note, one per combo slot.
var steps = []int{0, 2, 4, 7, 9, 12, 14, 16, 19, 21, 24}

const baseFreq = 329.63 // E4

// Frequency returns the chime pitch for combo index i.
func Frequency(i int) float64 {
	if i < 0 {
		i = -i
	}
	s := steps[i%len(steps)] + 12*(i/len(steps))
	return baseFreq * math.Pow(2, float64(s)/12)
}

// tone is a decaying sine with a quiet octave overtone.
type tone struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
	total  int
}

func newTone(sr beep.SampleRate, freq, volume float64, d time.Duration) *tone {
	return &tone{sr: sr, freq: freq, volume: volume, total: sr.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		sec := float64(t.pos) / float64(t.sr)
		env := math.Exp(-6 * float64(t.pos) / float64(t.total))
		attack := math.Min(1, sec/0.005)
		v := math.Sin(2*math.Pi*t.freq*sec) + 0.3*math.Sin(4*math.Pi*t.freq*sec)
		v *= t.volume * env * attack / 1.3
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// Chime mixes cue tones into the speaker.
type Chime struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	duration    time.Duration
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewChime returns a silent chime until Init succeeds.
func NewChime(sampleRate int, duration time.Duration, volume float64) *Chime {
	return &Chime{
		sr:       beep.SampleRate(sampleRate),
		duration: duration,
		volume:   volume,
		mixer:    &beep.Mixer{},
	}
}

// Init opens the speaker. Calling it again after success does nothing.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.sr, c.sr.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	logger().Info("audio ready", "sample_rate", int(c.sr))
	return nil
}

// Play queues the chime for combo index i. It does nothing before Init.
func (c *Chime) Play(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(newTone(c.sr, Frequency(i), c.volume, c.duration))
	speaker.Unlock()
}

// Stop silences any ringing chimes.
func (c *Chime) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
}
