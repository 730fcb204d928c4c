// Package angle contains angle types and their sexagesimal representations.
package angle

import (
	"fmt"
	"math"
)

// Angle is an angle in decimal degrees.
type Angle float64

// Deg returns the angle in decimal degrees.
func (a Angle) Deg() float64 { return float64(a) }

// Sexagesimal is an angle split into its sexagesimal units, with an explicit sign.
// For right ascension the units are hours/minutes/seconds, for declination
// degrees/arcminutes/arcseconds.
type Sexagesimal struct {
	Neg bool // true for negative angles; zero counts as positive
	U1  int
	U2  int
	U3  float64
}

// HMS splits the angle into hours, minutes and seconds of time (15 deg per hour).
func (a Angle) HMS() Sexagesimal {
	return split(float64(a) / 15)
}

// DMS splits the angle into degrees, arcminutes and arcseconds.
func (a Angle) DMS() Sexagesimal {
	return split(float64(a))
}

// split decomposes v into sexagesimal units. Seconds are rounded to 5 decimal
// places first, so a value like 59.999999 carries over into the minutes.
func split(v float64) Sexagesimal {
	s := Sexagesimal{Neg: v < 0}
	v = math.Abs(v)

	u1 := math.Floor(v)
	v = (v - u1) * 60
	u2 := math.Floor(v)
	u3 := (v - u2) * 60

	// round to the output precision and carry
	u3 = math.Round(u3*1e5) / 1e5
	if u3 >= 60 {
		u3 -= 60
		u2++
	}
	if u2 >= 60 {
		u2 -= 60
		u1++
	}

	s.U1 = int(u1)
	s.U2 = int(u2)
	s.U3 = u3
	return s
}

// String formats the angle as <sign><u1>:<u2>:<u3> with zero-padded two-digit
// units and five decimal places, e.g. "-28:56:09.60000".
func (s Sexagesimal) String() string {
	sign := "+"
	if s.Neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d:%02d:%08.5f", sign, s.U1, s.U2, s.U3)
}

// Unsigned formats the angle like String but without the leading sign.
// Right ascension is conventionally written unsigned in OBX files.
func (s Sexagesimal) Unsigned() string {
	return fmt.Sprintf("%02d:%02d:%08.5f", s.U1, s.U2, s.U3)
}
