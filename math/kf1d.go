package math

import "gonum.org/v1/gonum/mat"

// KF1D is a steady state kalman filter over a two element state. The gain is
// computed offline so every update is a fixed linear map:
//
//	x' = (A - K*C) * x + K * z
type KF1D struct {
	x    *mat.VecDense // state
	a    *mat.Dense    // transition
	c    *mat.Dense    // observation, 1x2
	k    *mat.VecDense // gain
	ak   *mat.Dense    // A - K*C
	next *mat.VecDense
}

func NewKF1D(x0 [2]float64, a [2][2]float64, c [2]float64, k [2]float64) *KF1D {
	kf := &KF1D{
		x:    mat.NewVecDense(2, []float64{x0[0], x0[1]}),
		a:    mat.NewDense(2, 2, []float64{a[0][0], a[0][1], a[1][0], a[1][1]}),
		c:    mat.NewDense(1, 2, []float64{c[0], c[1]}),
		k:    mat.NewVecDense(2, []float64{k[0], k[1]}),
		ak:   mat.NewDense(2, 2, nil),
		next: mat.NewVecDense(2, nil),
	}

	var kc mat.Dense
	kc.Mul(kf.k, kf.c)
	kf.ak.Sub(kf.a, &kc)
	return kf
}

// NewSpeedKF returns the velocity/acceleration filter used for wheel speed
// fusion. dt is the update period in seconds.
func NewSpeedKF(dt float64) *KF1D {
	return NewKF1D(
		[2]float64{0, 0},
		[2][2]float64{{1, dt}, {0, 1}},
		[2]float64{1, 0},
		[2]float64{0.12287673, 0.29666309},
	)
}

// Update advances the filter by one measurement. The receivers are
// preallocated so an update does not allocate.
func (kf *KF1D) Update(meas float64) [2]float64 {
	kf.next.MulVec(kf.ak, kf.x)
	kf.next.AddScaledVec(kf.next, meas, kf.k)
	kf.x.CopyVec(kf.next)
	return kf.State()
}

func (kf *KF1D) State() [2]float64 {
	return [2]float64{kf.x.AtVec(0), kf.x.AtVec(1)}
}

// Transition is the closed loop state map A - K*C.
func (kf *KF1D) Transition() mat.Matrix {
	return kf.ak
}
