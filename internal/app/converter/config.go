package converter

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/dslconv/internal/config"
	"github.com/heartmarshall/dslconv/internal/dsl/markup"
)

// RuleSet is a resolved markup configuration.
type RuleSet struct {
	Name  string // "default", "none" or "custom"
	Rules markup.Rules
}

// ResolveRules turns the convert section of the configuration into rules.
// A non-empty RulesPath always selects the custom rule file, whatever Markup says.
func ResolveRules(cfg config.ConvertConfig) (RuleSet, error) {
	if cfg.RulesPath != "" {
		rules, err := markup.LoadRules(cfg.RulesPath)
		if err != nil {
			return RuleSet{}, err
		}
		return RuleSet{Name: markup.NameCustom, Rules: rules}, nil
	}

	name := strings.ToLower(strings.TrimSpace(cfg.Markup))
	if name == markup.NameCustom {
		return RuleSet{}, fmt.Errorf("markup %q requires a rules file", name)
	}
	rules, err := markup.ByName(name)
	if err != nil {
		return RuleSet{}, err
	}
	if name == "" {
		name = markup.NameDefault
	}
	return RuleSet{Name: name, Rules: rules}, nil
}
