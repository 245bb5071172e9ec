package editor

import (
	"math"
	"sync/atomic"
)

// SmoothnessSource exposes the current tangent scale.
type SmoothnessSource interface {
	Smoothness() float64
}

// Smoothness is a SmoothnessSource that may be set from any goroutine.
type Smoothness struct {
	bits atomic.Uint64
}

// NewSmoothness returns a holder initialised to k.
func NewSmoothness(k float64) *Smoothness {
	s := &Smoothness{}
	s.Set(k)
	return s
}

// Set stores k.
func (s *Smoothness) Set(k float64) {
	s.bits.Store(math.Float64bits(k))
}

// Smoothness returns the last stored value.
func (s *Smoothness) Smoothness() float64 {
	return math.Float64frombits(s.bits.Load())
}
