package fabric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode selects the fabric index computed by DensityAt.
// Odd modes are intensities, even modes are densities, and the
// expected modes measure the deviation from a protolith fabric
// instead of the isotropic one.
type Mode int

const (
	Density Mode = iota
	Intensity
	ExpectedDensity
	ExpectedIntensity
)

var modeNames = [...]string{
	Density:           "density",
	Intensity:         "intensity",
	ExpectedDensity:   "expected-density",
	ExpectedIntensity: "expected-intensity",
}

// Valid reports whether m is one of the four known modes.
func (m Mode) Valid() bool {
	return m >= Density && m <= ExpectedIntensity
}

func (m Mode) String() string {
	if !m.Valid() {
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText accepts either the mode name or its number.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseMode parses a mode name such as "expected-density" or a number in 0..3.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Mode(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return Mode(n), nil
}

// baseline returns the reference fabric the mode measures against.
func (m Mode) baseline(expected Eigen) Eigen {
	if m == ExpectedDensity || m == ExpectedIntensity {
		return expected
	}
	return Isotropic
}

// Index computes the fabric index of e for the given mode.
// It returns NaN for an unknown mode.
func (m Mode) Index(e, expected Eigen) float64 {
	if !m.Valid() {
		return math.NaN()
	}
	ss := e.Deviation(m.baseline(expected))
	if m%2 == 1 {
		return 7.5 * ss
	}
	return math.Sqrt(1.5 * ss)
}

// DensityAt evaluates the fabric index at the plot point (x, y) of an
// apex down plot. Points outside the triangle beyond tol, as well as
// unknown modes, give NaN. expected is only used by the expected modes.
func DensityAt(x, y, tol float64, mode Mode, expected Eigen) float64 {
	b := CartesianToBarycentric(x, y, ApexDown, tol)
	if b.OffTriangle() {
		return math.NaN()
	}
	e := PGRToEigen(PGR{P: b.B, G: b.C, R: b.A})
	return mode.Index(e, expected)
}
