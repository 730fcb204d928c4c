// Package survey enumerates the target fields of an imaging survey.
package survey

import (
	"fmt"
	"math"

	"github.com/atg-survey/gowfi/pkg/angle"
	"github.com/atg-survey/gowfi/pkg/coord"
)

// Field is one survey pointing.
type Field struct {
	Seq  int // running index within the enumeration
	Gal  coord.Galactic
	Name string
}

// FieldName derives the file-safe OB name for a pointing: the prefix, a
// four-digit sequence index and the sign-coded galactic fragments, e.g.
// "atg.sci.0042.p040m20".
func FieldName(prefix string, seq int, gal coord.Galactic) string {
	return fmt.Sprintf("%s.%04d.%s%s", prefix, seq, galFragment(gal.L), galFragment(gal.B))
}

// galFragment codes a galactic coordinate as a sign letter plus the
// zero-padded absolute value scaled by ten, e.g. -4.0 -> "m40", +2.5 -> "p25".
// Zero codes as "m", matching the established field names of the survey.
func galFragment(v angle.Angle) string {
	sign := "m"
	if v > 0 {
		sign = "p"
	}
	return fmt.Sprintf("%s%02d", sign, int(math.Round(math.Abs(v.Deg()*10))))
}

// Grid is a regular pointing grid over two angular ranges with a fixed step.
type Grid struct {
	LMin, LMax float64 // galactic longitude range in degrees
	BMin, BMax float64 // galactic latitude range in degrees
	Step       float64 // degrees, both axes
}

// Fields enumerates the grid row-major, l first. Each axis has
// floor((max-min)/step)+1 samples; positions are computed from integer
// indices so the step does not accumulate floating point error.
func (g Grid) Fields(prefix string) []Field {
	nl := steps(g.LMin, g.LMax, g.Step)
	nb := steps(g.BMin, g.BMax, g.Step)

	fields := make([]Field, 0, nl*nb)
	for i := 0; i < nl; i++ {
		l := g.LMin + float64(i)*g.Step
		for j := 0; j < nb; j++ {
			b := g.BMin + float64(j)*g.Step
			gal := coord.Galactic{L: angle.Angle(l), B: angle.Angle(b)}
			seq := len(fields)
			fields = append(fields, Field{Seq: seq, Gal: gal, Name: FieldName(prefix, seq, gal)})
		}
	}
	return fields
}

func steps(min, max, step float64) int {
	if step <= 0 || max < min {
		return 0
	}
	return int(math.Floor((max-min)/step+1e-9)) + 1
}

// List enumerates an explicit set of galactic pointings.
func List(prefix string, positions []coord.Galactic) []Field {
	fields := make([]Field, 0, len(positions))
	for i, gal := range positions {
		fields = append(fields, Field{Seq: i, Gal: gal, Name: FieldName(prefix, i, gal)})
	}
	return fields
}
