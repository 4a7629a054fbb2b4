package utils

import (
	"time"

	m "pfeifer.dev/carcontrol/math"
)

// UpdateTracker measures the period between successive updates, smoothed
// over the last maLength samples.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
}

func (u *UpdateTracker) Init(maLength int) {
	u.LastTime = time.Now()
	u.Time = time.Now()
	u.DiffMA.Init(maLength)
}

func (u *UpdateTracker) Update() {
	u.LastTime = u.Time
	u.Time = time.Now()
	u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
}

// Period is the smoothed time between updates in seconds.
func (u *UpdateTracker) Period() float64 {
	return u.DiffMA.Estimate
}
