// gencal generates the calibration Observation Blocks for a survey run:
// sky flats, dome flats and one focus sequence.
//
// There are no flags; calibration parameters are edited below.
package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/atg-survey/gowfi/pkg/obx"
)

// Calibration parameters.
const (
	insFilterName = "MB#516/16_ESO871"
	numSkyFlats   = 10
	numDomeFlats  = 10
	flatLevel     = 25000 // target detector counts per flat
	flatExposures = 5
	outputDir     = "."
	defaultsPath  = "defaults.yaml"
	clobber       = true
)

// Focus field, the survey center.
const (
	focusRA  = 266.40499
	focusDec = -28.93617
)

func main() {
	defaults, err := obx.LoadDefaults(defaultsPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	for i := 0; i < numSkyFlats; i++ {
		name := fmt.Sprintf("atg.cal.skyflat.%02d", i)
		block, err := obx.NewSkyFlat(defaults, obx.FlatSpec{Name: name, Filter: insFilterName})
		if err != nil {
			log.Fatalf("%v", err)
		}
		block.Update(obx.Params{"det_win1_level": flatLevel, "seq_nexpo": flatExposures})
		write(block, name)
	}

	for i := 0; i < numDomeFlats; i++ {
		name := fmt.Sprintf("atg.cal.domeflat.%02d", i)
		block, err := obx.NewDomeFlat(defaults, obx.FlatSpec{Name: name, Filter: insFilterName})
		if err != nil {
			log.Fatalf("%v", err)
		}
		block.Update(obx.Params{"det_win1_level": flatLevel, "seq_nexpo": flatExposures})
		write(block, name)
	}

	focus, err := obx.NewFocusSequence(defaults, obx.FocusSpec{
		Name:   "atg.cal.focus",
		Filter: insFilterName,
		RA:     focusRA,
		Dec:    focusDec,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}
	write(focus, "atg.cal.focus")
}

func write(block *obx.Block, name string) {
	filename := filepath.Join(outputDir, name+".obx")
	if err := block.Write(filename, clobber); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("generated OB: %s", name)
}
