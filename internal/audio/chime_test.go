package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequency(t *testing.T) {
	assert.InDelta(t, baseFreq, Frequency(0), 1e-9)
	assert.InDelta(t, baseFreq*2, Frequency(5), 1e-9)
	assert.Greater(t, Frequency(8), Frequency(7))
	assert.InDelta(t, Frequency(3), Frequency(-3), 1e-9)
}

func TestToneLengthAndDecay(t *testing.T) {
	sr := beep.SampleRate(1000)
	tn := newTone(sr, 50, 1, 200*time.Millisecond)

	buf := make([][2]float64, 64)
	var all []float64
	for {
		n, ok := tn.Stream(buf)
		if !ok {
			break
		}
		for _, s := range buf[:n] {
			assert.Equal(t, s[0], s[1])
			require.LessOrEqual(t, math.Abs(s[0]), 1.0)
			all = append(all, s[0])
		}
	}
	require.Len(t, all, 200)
	assert.NoError(t, tn.Err())

	peak := func(xs []float64) float64 {
		m := 0.0
		for _, x := range xs {
			m = math.Max(m, math.Abs(x))
		}
		return m
	}
	assert.Greater(t, peak(all[:50]), peak(all[150:]))
}

func TestPlayBeforeInitIsNoop(t *testing.T) {
	c := NewChime(44100, 100*time.Millisecond, 0.2)
	c.Play(3)
	c.Stop()
	assert.Equal(t, 0, c.mixer.Len())
}
