package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/Georgi-Piskov/barin-alp-system/internal/categorizer"
	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"

	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk shape of a categorization rule set.
type ruleFile struct {
	Rules []categorizer.Rule `yaml:"rules"`
}

// LoadRules reads categorization rules from the YAML file at path. A
// missing file is not an error: the built-in rule set is returned so the
// engine works out of the box.
func LoadRules(path string, logger logging.Logger) ([]categorizer.Rule, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if path == "" {
		return categorizer.DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("rules file not found, using built-in rules",
				logging.Field{Key: "path", Value: path})
			return categorizer.DefaultRules(), nil
		}
		return nil, fmt.Errorf("reading rules file %s: %w", path, err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	if len(f.Rules) == 0 {
		logger.Warn("rules file contains no rules, using built-in rules",
			logging.Field{Key: "path", Value: path})
		return categorizer.DefaultRules(), nil
	}

	for i, rule := range f.Rules {
		if rule.Category == "" {
			return nil, fmt.Errorf("rules file %s: rule %d has no category", path, i)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rules file %s: rule %d (%s) has no keywords", path, i, rule.Category)
		}
	}

	logger.Info("loaded categorization rules",
		logging.Field{Key: "path", Value: path},
		logging.Field{Key: "rules", Value: len(f.Rules)})
	return f.Rules, nil
}
