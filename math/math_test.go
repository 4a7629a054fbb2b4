package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedKFConverges(t *testing.T) {
	kf := NewSpeedKF(0.01)
	var x [2]float64
	for range 3000 {
		x = kf.Update(20)
	}
	assert.InDelta(t, 20, x[0], 1e-6)
	assert.InDelta(t, 0, x[1], 1e-6)
}

func TestSpeedKFTracksRamp(t *testing.T) {
	kf := NewSpeedKF(0.01)
	var x [2]float64
	// 2 m/s^2 sampled at 100 Hz
	for i := range 5000 {
		x = kf.Update(float64(i) * 0.02)
	}
	assert.InDelta(t, 2.0, x[1], 1e-3)
}

func TestSpeedKFFirstStep(t *testing.T) {
	kf := NewSpeedKF(0.01)
	x := kf.Update(10)
	assert.InDelta(t, 1.2287673, x[0], 1e-9)
	assert.InDelta(t, 2.9666309, x[1], 1e-9)
}

func TestSpeedKFTransition(t *testing.T) {
	kf := NewSpeedKF(0.01)
	ak := kf.Transition()
	assert.InDelta(t, 1-0.12287673, ak.At(0, 0), 1e-12)
	assert.InDelta(t, 0.01, ak.At(0, 1), 1e-12)
	assert.InDelta(t, -0.29666309, ak.At(1, 0), 1e-12)
	assert.InDelta(t, 1.0, ak.At(1, 1), 1e-12)
}

func TestSpeedKFUpdateDoesNotAllocate(t *testing.T) {
	kf := NewSpeedKF(0.01)
	allocs := testing.AllocsPerRun(100, func() {
		kf.Update(12.5)
	})
	assert.Equal(t, 0.0, allocs)
}

func TestClip(t *testing.T) {
	assert.Equal(t, 5.0, Clip(5, 0, 10))
	assert.Equal(t, 0.0, Clip(-3, 0, 10))
	assert.Equal(t, 10.0, Clip(30, 0, 10))
}

func TestInterp(t *testing.T) {
	xp := []float64{0, 10, 20}
	fp := []float64{1, 2, 4}
	assert.Equal(t, 1.0, Interp(-5, xp, fp))
	assert.Equal(t, 1.5, Interp(5, xp, fp))
	assert.Equal(t, 3.0, Interp(15, xp, fp))
	assert.Equal(t, 4.0, Interp(50, xp, fp))
	assert.Equal(t, 0.7, Interp(3, []float64{0}, []float64{0.7}))
	assert.Equal(t, 0.0, Interp(3, nil, nil))
}

func TestMovingAverage(t *testing.T) {
	ma := MovingAverage{}
	ma.Init(4)
	require.Equal(t, 2.0, ma.Update(2))
	ma.Update(6)
	assert.Equal(t, 3.0, ma.Estimate)
	assert.Equal(t, 6.0, ma.Raw())
	ma.Reset()
	assert.Equal(t, 8.0, ma.Update(8))
}
