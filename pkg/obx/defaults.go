package obx

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults is the baseline instrument and detector parameter set shared as
// the base layer of every observation block. It is loaded from a YAML
// document once per run and passed to the block constructors.
type Defaults struct {
	params Params
}

// LoadDefaults reads the defaults document from path.
// A missing or malformed document is fatal for the run; there are no
// fallback defaults.
func LoadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defaults: %v", err)
	}

	params := Params{}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("parse defaults %s: %v", path, err)
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("defaults %s contains no parameters", path)
	}

	return &Defaults{params: params}, nil
}

// Param returns the default value stored under key.
func (d *Defaults) Param(key string) (interface{}, bool) {
	v, ok := d.params[key]
	return v, ok
}
