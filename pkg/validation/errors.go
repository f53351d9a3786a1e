package validation

import (
	"errors"

	"github.com/K3nguruh/validation/pkg/validator"
)

// Configuration errors. They indicate a programming mistake, abort the session
// and are never mixed into the ErrorMap.
var (
	// ErrUnknownRule is returned when a rule name has no predicate.
	ErrUnknownRule = validator.ErrUnknownPredicate

	// ErrInvalidRule is returned when a rule spec has no rule name.
	ErrInvalidRule = errors.New("invalid rule spec")

	// ErrMissingArgument is returned when a rule gets fewer arguments than its predicate needs.
	ErrMissingArgument = errors.New("missing rule argument")

	// ErrFieldNotFound is returned when a record has no entry for the requested field.
	ErrFieldNotFound = errors.New("field not found in record")

	// ErrNotBound is returned when rules are attached or evaluated before a value is bound.
	ErrNotBound = errors.New("no value bound")

	// ErrInvalidAlias is returned for an empty alias.
	ErrInvalidAlias = errors.New("invalid alias")
)
