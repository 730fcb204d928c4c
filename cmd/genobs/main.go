// genobs generates the science Observation Blocks for the 'Awakening the
// Giants' program on the Wide Field Imager at the 2.2 m MPG telescope.
//
// There are no flags; survey parameters are edited below.
package main

import (
	"log"
	"path/filepath"

	"github.com/atg-survey/gowfi/pkg/coord"
	"github.com/atg-survey/gowfi/pkg/obx"
	"github.com/atg-survey/gowfi/pkg/survey"
)

// Survey parameters.
const (
	namePrefix    = "atg.sci"
	insFilterName = "MB#516/16_ESO871"
	exposureTime  = 200 // seconds per exposure
	numExposures  = 3
	outputDir     = "."
	defaultsPath  = "defaults.yaml"
	clobber       = true

	// useGrid switches between the regular bulge grid and the explicit
	// pilot field list below.
	useGrid = true
)

var grid = survey.Grid{LMin: -10, LMax: 10, BMin: -2.5, BMax: 2.5, Step: 0.4}

// pilotFields are the pointings of the 2014 pilot run.
var pilotFields = []coord.Galactic{
	{L: -4, B: 0}, {L: -4, B: -2}, {L: -4, B: 2},
	{L: 0, B: 0}, {L: 0, B: -2}, {L: 0, B: 2},
	{L: 4, B: 0}, {L: 4, B: -2}, {L: 4, B: 2},
}

func main() {
	defaults, err := obx.LoadDefaults(defaultsPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var fields []survey.Field
	if useGrid {
		fields = grid.Fields(namePrefix)
	} else {
		fields = survey.List(namePrefix, pilotFields)
	}

	for _, field := range fields {
		eq := field.Gal.ToICRS()

		block, err := obx.NewScience(defaults, obx.ScienceSpec{
			Name:    field.Name,
			Filter:  insFilterName,
			RA:      eq.RA,
			Dec:     eq.Dec,
			ExpTime: exposureTime,
			NumExp:  numExposures,
		})
		if err != nil {
			log.Fatalf("%v", err)
		}

		filename := filepath.Join(outputDir, field.Name+".obx")
		if err := block.Write(filename, clobber); err != nil {
			log.Fatalf("%v", err)
		}

		log.Printf("generated OB %d/%d: %s", field.Seq+1, len(fields), field.Name)
	}
}
