package hydro

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Degree-of-freedom indices into a [Vec6], marine convention.
const (
	Surge = iota
	Sway
	Heave
	Roll
	Pitch
	Yaw
)

// DOFNames lists the degree-of-freedom names in Vec6 order.
var DOFNames = [6]string{"surge", "sway", "heave", "roll", "pitch", "yaw"}

// Vec6 is a body-frame [linear; angular] 6-vector: velocity,
// acceleration or force/torque depending on context.
type Vec6 [6]float64

// NewVec6 assembles a Vec6 from its linear and angular halves.
func NewVec6(lin, ang r3.Vector) Vec6 {
	return Vec6{lin.X, lin.Y, lin.Z, ang.X, ang.Y, ang.Z}
}

// Lin returns the linear (surge, sway, heave) half.
func (v Vec6) Lin() r3.Vector {
	return r3.Vector{X: v[Surge], Y: v[Sway], Z: v[Heave]}
}

// Ang returns the angular (roll, pitch, yaw) half.
func (v Vec6) Ang() r3.Vector {
	return r3.Vector{X: v[Roll], Y: v[Pitch], Z: v[Yaw]}
}

func (v Vec6) Add(other Vec6) Vec6 {
	var out Vec6
	for i := range v {
		out[i] = v[i] + other[i]
	}
	return out
}

func (v Vec6) Sub(other Vec6) Vec6 {
	var out Vec6
	for i := range v {
		out[i] = v[i] - other[i]
	}
	return out
}

func (v Vec6) Scale(factor float64) Vec6 {
	var out Vec6
	for i := range v {
		out[i] = v[i] * factor
	}
	return out
}

// HasNaN reports whether any component is NaN.
func (v Vec6) HasNaN() bool {
	for _, c := range v {
		if math.IsNaN(c) {
			return true
		}
	}
	return false
}

func (v Vec6) Norm() float64 {
	sum := 0.0
	for _, c := range v {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// Matrix6 is a 6x6 real matrix acting on Vec6 quantities.
type Matrix6 = *mat.Dense

// NewMatrix6 builds a Matrix6 from 36 row-major values. It panics if
// data does not hold exactly 36 entries, matching mat.NewDense.
func NewMatrix6(data []float64) Matrix6 {
	return mat.NewDense(6, 6, data)
}

// ZeroMatrix6 returns an all-zero 6x6 matrix.
func ZeroMatrix6() Matrix6 {
	return mat.NewDense(6, 6, nil)
}

// Identity6 returns the 6x6 identity matrix.
func Identity6() Matrix6 {
	m := mat.NewDense(6, 6, nil)
	for i := 0; i < 6; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func cloneMatrix6(m Matrix6) Matrix6 {
	out := mat.NewDense(6, 6, nil)
	out.Copy(m)
	return out
}

func isMatrix6(m Matrix6) bool {
	if m == nil {
		return false
	}
	r, c := m.Dims()
	return r == 6 && c == 6
}

// mulMat6 computes m * v for a 6x6 matrix and a Vec6.
func mulMat6(m Matrix6, v Vec6) Vec6 {
	var out Vec6
	for i := 0; i < 6; i++ {
		sum := 0.0
		for j := 0; j < 6; j++ {
			sum += m.At(i, j) * v[j]
		}
		out[i] = sum
	}
	return out
}
