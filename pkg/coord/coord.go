// Package coord contains celestial coordinate types and frame transformations.
package coord

import (
	"math"

	"github.com/atg-survey/gowfi/pkg/angle"
)

// IAU definition of the galactic frame w.r.t. equatorial J2000, in degrees.
const (
	ngpRA  = 192.85948 // right ascension of the north galactic pole
	ngpDec = 27.12825  // declination of the north galactic pole
	ncpLon = 122.93192 // galactic longitude of the north celestial pole
)

// Galactic is a position in galactic coordinates.
type Galactic struct {
	L angle.Angle // longitude
	B angle.Angle // latitude
}

// ICRS is a position in equatorial coordinates, J2000.
type ICRS struct {
	RA  angle.Angle // right ascension
	Dec angle.Angle // declination
}

// ToICRS rotates the galactic position into the equatorial J2000 frame.
func (g Galactic) ToICRS() ICRS {
	l := radians(g.L.Deg())
	b := radians(g.B.Deg())
	dNGP := radians(ngpDec)
	dl := radians(ncpLon) - l

	sinDec := math.Sin(dNGP)*math.Sin(b) + math.Cos(dNGP)*math.Cos(b)*math.Cos(dl)
	dec := math.Asin(sinDec)

	y := math.Cos(b) * math.Sin(dl)
	x := math.Cos(dNGP)*math.Sin(b) - math.Sin(dNGP)*math.Cos(b)*math.Cos(dl)
	ra := radians(ngpRA) + math.Atan2(y, x)

	return ICRS{
		RA:  angle.Angle(norm360(degrees(ra))),
		Dec: angle.Angle(degrees(dec)),
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// norm360 wraps an angle into [0, 360).
func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
