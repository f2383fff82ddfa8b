package markup

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// File is the on-disk shape of a custom rule set.
//
//	removes: ["[m1]", "[/m]"]
//	replaces:
//	  - {search: "[b]", replace: "<b>"}
type File struct {
	Removes  []string  `yaml:"removes"  json:"removes"`
	Replaces []Replace `yaml:"replaces" json:"replaces"`
}

// LoadRules reads a custom rule set from a YAML (or JSON) file and returns it
// as Custom rules.
func LoadRules(path string) (Rules, error) {
	if _, err := os.Stat(path); err != nil {
		return Rules{}, fmt.Errorf("markup rules: file %s: %w", path, err)
	}

	var f File
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return Rules{}, fmt.Errorf("markup rules: read %s: %w", path, err)
	}

	return Custom(f.Removes, f.Replaces), nil
}
