package appointments

import (
	"math/rand/v2"
	"strconv"
)

// Confirmation and payment references carry a 5-digit serial drawn
// uniformly from [10000, 99999].
const (
	serialMin = 10000
	serialMax = 99999
)

// IDGenerator produces synthetic appointment and payment references. The
// draw function is injectable so tests can pin the serials.
type IDGenerator struct {
	intn func(n int) int
}

// NewIDGenerator returns a generator backed by the shared PRNG.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{intn: rand.IntN}
}

// NewIDGeneratorWithSource returns a generator drawing from intn, where
// intn(n) yields a value in [0, n).
func NewIDGeneratorWithSource(intn func(n int) int) *IDGenerator {
	return &IDGenerator{intn: intn}
}

// AppointmentID returns the next confirmation reference, e.g. "APT-48213".
func (g *IDGenerator) AppointmentID() string {
	return "APT-" + g.serial()
}

// PaymentID returns the next payment reference, e.g. "PAY-10492".
func (g *IDGenerator) PaymentID() string {
	return "PAY-" + g.serial()
}

func (g *IDGenerator) serial() string {
	return strconv.Itoa(serialMin + g.intn(serialMax-serialMin+1))
}
