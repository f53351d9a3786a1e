package ruleset

import (
	"errors"
	"fmt"
	"os"

	playground "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/K3nguruh/validation/pkg/validation"
)

type (
	// RuleSet is an ordered list of fields and the rules applied to each.
	RuleSet struct {
		Separator string  `yaml:"separator,omitempty"`
		Fields    []Field `yaml:"fields" validate:"required,min=1,unique=Name,dive"`
	}

	// Field names a record entry and its rules.
	Field struct {
		Name     string `yaml:"name" validate:"required"`
		Alias    string `yaml:"alias,omitempty"`
		Optional bool   `yaml:"optional,omitempty"`
		Rules    []Rule `yaml:"rules" validate:"required,min=1,dive"`
	}

	// Rule is a rule spec such as "min||16" with the message used when it fails.
	Rule struct {
		Spec    string `yaml:"rule" validate:"required"`
		Message string `yaml:"message" validate:"required"`
	}
)

// structure checks rule files right after decoding.
var structure = playground.New()

// Load reads and parses the rule file at path.
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Parse decodes a rule file and checks that every field has a name and at
// least one rule, and that every rule has a spec and a message. Rule names
// are resolved later, when the rule set is applied to a session.
func Parse(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	if err := structure.Struct(&rs); err != nil {
		return nil, errors.Join(ErrInvalidRuleSet, err)
	}
	return &rs, nil
}

// Options returns the session options the rule set requires.
func (rs *RuleSet) Options() []validation.Option {
	if rs.Separator == "" {
		return nil
	}
	return []validation.Option{validation.WithSeparator(rs.Separator)}
}

// Validate runs every field of the rule set against record on s and returns
// the resulting error map. s is reset by the call, so it can be reused.
// Create s with rs.Options() when the rule file sets its own separator.
func (rs *RuleSet) Validate(s *validation.Session, record validation.Record) (validation.ErrorMap, error) {
	for _, f := range rs.Fields {
		if _, ok := record[f.Name]; !ok && f.Optional {
			continue
		}

		s.BindFromRecord(record, f.Name)
		if f.Alias != "" {
			s.SetAlias(f.Alias)
		}
		for _, r := range f.Rules {
			s.AttachRule(r.Spec, r.Message)
		}
		s.Evaluate()

		if s.Err() != nil {
			break
		}
	}
	return s.Errors()
}
