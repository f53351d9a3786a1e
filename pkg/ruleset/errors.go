package ruleset

import "errors"

var (
	// ErrReadFile is returned when a rule or record file cannot be read.
	ErrReadFile = errors.New("failed to read file")

	// ErrDecode is returned when a document is not valid YAML or JSON.
	ErrDecode = errors.New("failed to decode document")

	// ErrInvalidRuleSet is returned when a rule file fails structural checks.
	ErrInvalidRuleSet = errors.New("invalid rule set")
)
