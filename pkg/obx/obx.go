// Package obx generates Observation Block (OBX) files for the Wide Field Imager.
// An observation block describes a single observing action, e.g. a science
// exposure or a calibration flat, in the fixed textual format read by the
// telescope control software.
package obx

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/atg-survey/gowfi/pkg/angle"
	"github.com/go-playground/validator/v10"
)

// use a single instance of Validate, it caches struct info
var validate = validator.New()

// Kind is the observation block variant.
type Kind int

// Available block kinds.
const (
	KindSkyFlat Kind = iota + 1
	KindDomeFlat
	KindFocusSequence
	KindScience
)

func (k Kind) String() string {
	if k < KindSkyFlat || k > KindScience {
		return "unknown"
	}
	return [...]string{"", "SkyFlat", "DomeFlat", "FocusSequence", "Science"}[k]
}

// Params is a set of OB parameters, keyed the way the OBX templates expect them.
type Params map[string]interface{}

// merge overlays the given layers in order into a new parameter set.
// Later layers win on key collision; keys are never removed.
func merge(layers ...Params) Params {
	merged := Params{}
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// Block is one observation block. It owns its parameter set exclusively;
// the set is built at construction from the defaults document, the kind's
// fixed settings and the caller fields, in that order.
type Block struct {
	Kind Kind

	params Params
}

// FlatSpec holds the caller fields for a sky or dome flat.
type FlatSpec struct {
	Name     string `validate:"required"`
	Filter   string `validate:"required"`
	Comments string
}

// FocusSpec holds the caller fields for a focus sequence.
// RA/Dec are optional and default to zero.
type FocusSpec struct {
	Name     string      `validate:"required"`
	Filter   string      `validate:"required"`
	RA       angle.Angle `validate:"gte=0,lt=360"`
	Dec      angle.Angle `validate:"gte=-90,lte=90"`
	Comments string
}

// ScienceSpec holds the caller fields for a science exposure.
type ScienceSpec struct {
	Name     string      `validate:"required"`
	Filter   string      `validate:"required"`
	RA       angle.Angle `validate:"gte=0,lt=360"`
	Dec      angle.Angle `validate:"gte=-90,lte=90"`
	ExpTime  int         `validate:"required,gt=0"` // seconds per exposure
	NumExp   int         `validate:"required,gt=0"`
	Comments string
}

// Fixed settings for focus sequences.
const (
	focusExpTime   = 15
	focusOffset    = 50
	focusExposures = 9
)

// NewSkyFlat creates a sky flat block.
func NewSkyFlat(defaults *Defaults, spec FlatSpec) (*Block, error) {
	if err := checkSpec(defaults, spec); err != nil {
		return nil, fmt.Errorf("sky flat: %v", err)
	}
	return newBlock(KindSkyFlat, defaults,
		Params{"template_name": "WFI_img_cal_SkyFlat"},
		commonParams(spec.Name, spec.Filter, spec.Comments),
	), nil
}

// NewDomeFlat creates a dome flat block.
func NewDomeFlat(defaults *Defaults, spec FlatSpec) (*Block, error) {
	if err := checkSpec(defaults, spec); err != nil {
		return nil, fmt.Errorf("dome flat: %v", err)
	}
	return newBlock(KindDomeFlat, defaults,
		Params{"template_name": "WFI_img_cal_DomeFlat"},
		commonParams(spec.Name, spec.Filter, spec.Comments),
	), nil
}

// NewFocusSequence creates a focus sequence block with the fixed focus
// exposure settings.
func NewFocusSequence(defaults *Defaults, spec FocusSpec) (*Block, error) {
	if err := checkSpec(defaults, spec); err != nil {
		return nil, fmt.Errorf("focus sequence: %v", err)
	}
	return newBlock(KindFocusSequence, defaults,
		Params{
			"template_name":   "WFI_cal_FocusSeq",
			"det_win1_uit1":   focusExpTime,
			"det_win1_offset": focusOffset,
			"seq_nexpo":       focusExposures,
			"target_ra":       spec.RA.HMS().Unsigned(),
			"target_dec":      spec.Dec.DMS().String(),
		},
		commonParams(spec.Name, spec.Filter, spec.Comments),
	), nil
}

// NewScience creates a science exposure block.
func NewScience(defaults *Defaults, spec ScienceSpec) (*Block, error) {
	if err := checkSpec(defaults, spec); err != nil {
		return nil, fmt.Errorf("science block: %v", err)
	}
	return newBlock(KindScience, defaults,
		Params{
			"det_win1_uit1": spec.ExpTime,
			"seq_nexpo":     spec.NumExp,
			"target_ra":     spec.RA.HMS().Unsigned(),
			"target_dec":    spec.Dec.DMS().String(),
		},
		commonParams(spec.Name, spec.Filter, spec.Comments),
	), nil
}

func checkSpec(defaults *Defaults, spec interface{}) error {
	if defaults == nil || len(defaults.params) == 0 {
		return fmt.Errorf("no defaults loaded")
	}
	if err := validate.Struct(spec); err != nil {
		return err
	}
	return nil
}

func commonParams(name, filter, comments string) Params {
	return Params{
		"ob_name":                      name,
		"observation_description_name": name,
		"ins_filter_name":              filter,
		"user_comments":                comments,
	}
}

func newBlock(kind Kind, defaults *Defaults, constants, caller Params) *Block {
	return &Block{
		Kind:   kind,
		params: merge(defaults.params, constants, caller),
	}
}

// Name returns the block name.
func (b *Block) Name() string {
	name, _ := b.params["ob_name"].(string)
	return name
}

// Param returns the parameter stored under key.
func (b *Block) Param(key string) (interface{}, bool) {
	v, ok := b.params[key]
	return v, ok
}

// Update merges the given fields into the block's parameter set, overwriting
// on key collision. Drivers use it to set e.g. flat-field brightness targets.
func (b *Block) Update(fields Params) {
	for k, v := range fields {
		b.params[k] = v
	}
}

// Render executes the block's OBX template with its parameter set.
// It fails if the template references a key that is not in the set.
func (b *Block) Render() ([]byte, error) {
	templ, ok := kindTemplates[b.Kind]
	if !ok {
		return nil, fmt.Errorf("no template associated with block kind %s", b.Kind)
	}

	t, err := template.New(b.Kind.String()).Option("missingkey=error").Parse(templ)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %v", b.Kind, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, map[string]interface{}(b.params)); err != nil {
		return nil, fmt.Errorf("render %s block %q: %v", b.Kind, b.Name(), err)
	}
	return buf.Bytes(), nil
}

// Write renders the block and writes it to filename.
// An existing file is only overwritten if clobber is set.
func (b *Block) Write(filename string, clobber bool) error {
	if _, err := os.Stat(filename); err == nil && !clobber {
		return fmt.Errorf("filename %s already exists", filename)
	}

	if !strings.EqualFold(filepath.Ext(filename), ".obx") {
		log.Printf("W! filename %q does not have an OBX extension", filename)
	}

	contents, err := b.Render()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, contents, 0644)
}
