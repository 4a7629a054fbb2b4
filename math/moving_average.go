package math

// MovingAverage is a fixed window average. The first sample fills the whole
// window so the estimate is usable immediately.
type MovingAverage struct {
	values      []float64
	index       int
	initialized bool
	sum         float64
	Estimate    float64
}

func (a *MovingAverage) Init(size int) {
	a.values = make([]float64, max(size, 1))
	a.Reset()
}

func (a *MovingAverage) Reset() {
	a.initialized = false
	a.index = 0
	a.sum = 0
	a.Estimate = 0
}

func (a *MovingAverage) Update(val float64) float64 {
	if len(a.values) == 0 {
		a.Init(1)
	}
	if !a.initialized {
		for i := range a.values {
			a.values[i] = val
		}
		a.sum = val * float64(len(a.values))
		a.initialized = true
		a.Estimate = val
		return val
	}
	a.index = (a.index + 1) % len(a.values)
	a.sum += val - a.values[a.index]
	a.values[a.index] = val
	a.Estimate = a.sum / float64(len(a.values))
	return a.Estimate
}

func (a *MovingAverage) Raw() float64 {
	if len(a.values) == 0 {
		return 0
	}
	return a.values[a.index]
}
