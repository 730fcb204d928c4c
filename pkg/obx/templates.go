package obx

// OBX templates, one per block kind. Sky and dome flats share one template
// and are distinguished by the template_name parameter. Placeholders are a
// flat named-field fill; every placeholder must have a parameter at write
// time.

var kindTemplates = map[Kind]string{
	KindSkyFlat:       flatTempl,
	KindDomeFlat:      flatTempl,
	KindFocusSequence: focusTempl,
	KindScience:       scienceTempl,
}

// flatTempl is the template for sky and dome flat field OBs.
const flatTempl = `IMPEX.VER "{{.impex_ver}}"

type "C"
name "{{.ob_name}}"
userComments "{{.user_comments}}"
userPriority "{{.user_priority}}"
InstrumentComments ""

OBSERVATION.DESCRIPTION.NAME "{{.observation_description_name}}"
instrument "{{.instrument}}"

TEMPLATE.NAME "{{.template_name}}"
DET1.WIN1.UIT1 "{{.det_win1_uit1}}"
DET1.WIN1.BINX "{{.det_win1_binx}}"
DET1.WIN1.BINY "{{.det_win1_biny}}"
DET1.WIN1.LEVEL "{{.det_win1_level}}"
SEQ.NEXPO "{{.seq_nexpo}}"
INS.FILT1.NAME "{{.ins_filter_name}}"
`

// focusTempl is the template for focus sequence OBs.
const focusTempl = `IMPEX.VER "{{.impex_ver}}"

type "C"
name "{{.ob_name}}"
userComments "{{.user_comments}}"
userPriority "{{.user_priority}}"
InstrumentComments ""

OBSERVATION.DESCRIPTION.NAME "{{.observation_description_name}}"
instrument "{{.instrument}}"

TEMPLATE.NAME "{{.template_name}}"
DET1.WIN1.UIT1 "{{.det_win1_uit1}}"
DET1.WIN1.OFFSET "{{.det_win1_offset}}"
DET1.WIN1.BINX "{{.det_win1_binx}}"
DET1.WIN1.BINY "{{.det_win1_biny}}"
SEQ.NEXPO "{{.seq_nexpo}}"
INS.FILT1.NAME "{{.ins_filter_name}}"

TARGET.NAME "{{.ob_name}}"
ra "{{.target_ra}}"
dec "{{.target_dec}}"
equinox "{{.equinox}}"
epoch "{{.epoch}}"
`

// scienceTempl is the template for science exposure OBs.
const scienceTempl = `IMPEX.VER "{{.impex_ver}}"

type "O"
name "{{.ob_name}}"
userComments "{{.user_comments}}"
userPriority "{{.user_priority}}"
InstrumentComments ""

OBSERVATION.DESCRIPTION.NAME "{{.observation_description_name}}"
instrument "{{.instrument}}"

TEMPLATE.NAME "WFI_img_obs_Exp"
DET1.WIN1.UIT1 "{{.det_win1_uit1}}"
DET1.WIN1.BINX "{{.det_win1_binx}}"
DET1.WIN1.BINY "{{.det_win1_biny}}"
SEQ.NEXPO "{{.seq_nexpo}}"
INS.FILT1.NAME "{{.ins_filter_name}}"

TARGET.NAME "{{.ob_name}}"
ra "{{.target_ra}}"
dec "{{.target_dec}}"
equinox "{{.equinox}}"
epoch "{{.epoch}}"
`
