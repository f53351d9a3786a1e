package validator

import "errors"

// Registry errors. Predicates themselves never return errors.
var (
	// ErrUnknownPredicate is returned when a rule name has no registered predicate.
	ErrUnknownPredicate = errors.New("unknown validation rule")

	// ErrDuplicatePredicate is returned when a rule name is registered twice.
	ErrDuplicatePredicate = errors.New("validation rule already registered")

	// ErrInvalidDefinition is returned for definitions without a name or predicate.
	ErrInvalidDefinition = errors.New("invalid rule definition")
)
