package obx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func loadTestDefaults(t *testing.T) *Defaults {
	t.Helper()
	defaults, err := LoadDefaults("testdata/defaults.yaml")
	if err != nil {
		t.Fatalf("%v", err)
	}
	return defaults
}

func TestNewScience(t *testing.T) {
	assert := assert.New(t)
	defaults := loadTestDefaults(t)

	block, err := NewScience(defaults, ScienceSpec{
		Name:    "atg.sci.test",
		Filter:  "MB#516/16_ESO871",
		RA:      266.4168,
		Dec:     -28.9360,
		ExpTime: 100,
		NumExp:  5,
	})
	assert.NoError(err)
	assert.Equal(KindScience, block.Kind)
	assert.Equal("atg.sci.test", block.Name())

	contents, err := block.Render()
	assert.NoError(err)
	rendered := string(contents)
	assert.Contains(rendered, `ra "17:45:40.03200"`)
	assert.Contains(rendered, `dec "-28:56:09.60000"`)
	assert.Contains(rendered, `DET1.WIN1.UIT1 "100"`)
	assert.Contains(rendered, `SEQ.NEXPO "5"`)
	assert.Contains(rendered, `INS.FILT1.NAME "MB#516/16_ESO871"`)
	assert.Contains(rendered, `TEMPLATE.NAME "WFI_img_obs_Exp"`)
}

func TestNewScience_MissingFields(t *testing.T) {
	defaults := loadTestDefaults(t)

	_, err := NewScience(defaults, ScienceSpec{Name: "atg.sci.test", Filter: "BB#Rc/162_ESO844"})
	assert.Error(t, err, "exposure time and count are required")

	_, err = NewScience(defaults, ScienceSpec{Filter: "BB#Rc/162_ESO844", ExpTime: 100, NumExp: 5})
	assert.Error(t, err, "name is required")

	_, err = NewScience(nil, ScienceSpec{Name: "x", Filter: "y", ExpTime: 100, NumExp: 5})
	assert.Error(t, err, "defaults are required")
}

func TestNewFocusSequence(t *testing.T) {
	assert := assert.New(t)
	defaults := loadTestDefaults(t)

	block, err := NewFocusSequence(defaults, FocusSpec{Name: "atg.cal.focus", Filter: "BB#Rc/162_ESO844"})
	assert.NoError(err)

	contents, err := block.Render()
	assert.NoError(err)
	rendered := string(contents)
	assert.Contains(rendered, `TEMPLATE.NAME "WFI_cal_FocusSeq"`)
	assert.Contains(rendered, `DET1.WIN1.UIT1 "15"`)
	assert.Contains(rendered, `DET1.WIN1.OFFSET "50"`)
	assert.Contains(rendered, `SEQ.NEXPO "9"`)
	assert.Contains(rendered, `ra "00:00:00.00000"`, "zero RA, sign stripped")
	assert.Contains(rendered, `dec "+00:00:00.00000"`, "zero Dec formats positive")
}

func TestNewFlats(t *testing.T) {
	assert := assert.New(t)
	defaults := loadTestDefaults(t)

	sky, err := NewSkyFlat(defaults, FlatSpec{Name: "atg.cal.skyflat", Filter: "BB#Rc/162_ESO844"})
	assert.NoError(err)
	dome, err := NewDomeFlat(defaults, FlatSpec{Name: "atg.cal.domeflat", Filter: "BB#Rc/162_ESO844"})
	assert.NoError(err)

	skyContents, err := sky.Render()
	assert.NoError(err)
	assert.Contains(string(skyContents), `TEMPLATE.NAME "WFI_img_cal_SkyFlat"`)

	domeContents, err := dome.Render()
	assert.NoError(err)
	assert.Contains(string(domeContents), `TEMPLATE.NAME "WFI_img_cal_DomeFlat"`)
}

func TestBlock_Update(t *testing.T) {
	assert := assert.New(t)
	defaults := loadTestDefaults(t)

	flat, err := NewSkyFlat(defaults, FlatSpec{Name: "atg.cal.skyflat", Filter: "BB#Rc/162_ESO844"})
	assert.NoError(err)

	// flat-field brightness target and exposure count
	flat.Update(Params{"det_win1_level": 25000, "seq_nexpo": 10})

	rendered, err := flat.Render()
	assert.NoError(err)
	assert.Contains(string(rendered), `DET1.WIN1.LEVEL "25000"`)
	assert.Contains(string(rendered), `SEQ.NEXPO "10"`)
}

func TestMerge_LastLayerWins(t *testing.T) {
	assert := assert.New(t)

	merged := merge(
		Params{"seq_nexpo": 1, "det_win1_uit1": 0},
		Params{"seq_nexpo": 9},
		Params{"seq_nexpo": 5, "ob_name": "x"},
	)
	assert.Equal(5, merged["seq_nexpo"])
	assert.Equal(0, merged["det_win1_uit1"])
	assert.Equal("x", merged["ob_name"])
}

func TestBlock_RenderDeterministic(t *testing.T) {
	assert := assert.New(t)
	defaults := loadTestDefaults(t)

	spec := ScienceSpec{Name: "atg.sci.p040m20", Filter: "BB#Rc/162_ESO844", RA: 266.4168, Dec: -28.9360, ExpTime: 200, NumExp: 3}

	b1, err := NewScience(defaults, spec)
	assert.NoError(err)
	b2, err := NewScience(defaults, spec)
	assert.NoError(err)

	c1, err := b1.Render()
	assert.NoError(err)
	c2, err := b2.Render()
	assert.NoError(err)
	assert.Equal(c1, c2, "identical inputs render byte-identical output")
}

func TestBlock_RenderMissingParam(t *testing.T) {
	block := &Block{Kind: KindScience, params: Params{"ob_name": "atg.sci.test"}}
	_, err := block.Render()
	assert.Error(t, err, "placeholders without parameters must fail the render")
}

func TestBlock_RenderNoTemplate(t *testing.T) {
	block := &Block{params: Params{}}
	_, err := block.Render()
	assert.Error(t, err, "a block without a concrete kind must not render")
}

func TestBlock_Write(t *testing.T) {
	assert := assert.New(t)
	defaults := loadTestDefaults(t)
	dir := t.TempDir()

	block, err := NewScience(defaults, ScienceSpec{
		Name: "atg.sci.test", Filter: "BB#Rc/162_ESO844", RA: 266.4168, Dec: -28.9360, ExpTime: 100, NumExp: 5,
	})
	assert.NoError(err)

	filename := filepath.Join(dir, "atg.sci.test.obx")
	assert.NoError(block.Write(filename, false))

	written, err := os.ReadFile(filename)
	assert.NoError(err)
	assert.True(strings.Contains(string(written), `name "atg.sci.test"`))

	// existing file, no clobber: must fail and leave the file untouched
	block.Update(Params{"seq_nexpo": 99})
	err = block.Write(filename, false)
	assert.Error(err)
	unchanged, err := os.ReadFile(filename)
	assert.NoError(err)
	assert.Equal(written, unchanged)

	// clobber replaces the contents
	assert.NoError(block.Write(filename, true))
	replaced, err := os.ReadFile(filename)
	assert.NoError(err)
	assert.Contains(string(replaced), `SEQ.NEXPO "99"`)
	assert.NotEqual(written, replaced)
}

func TestBlock_WriteOddSuffix(t *testing.T) {
	// a non-.obx suffix is only warned about, the write proceeds
	assert := assert.New(t)
	defaults := loadTestDefaults(t)

	block, err := NewSkyFlat(defaults, FlatSpec{Name: "atg.cal.skyflat", Filter: "BB#Rc/162_ESO844"})
	assert.NoError(err)

	filename := filepath.Join(t.TempDir(), "atg.cal.skyflat.txt")
	assert.NoError(block.Write(filename, false))
	_, err = os.Stat(filename)
	assert.NoError(err)
}
