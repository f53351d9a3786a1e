package validator

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Predicate reports whether value satisfies a rule with the given arguments.
// Predicates never panic on bad input; anything they cannot interpret fails.
type Predicate func(value any, args ...string) bool

// Definition binds a predicate to the rule name it is dispatched under.
type Definition struct {
	Name string
	// Arity is the number of arguments the predicate needs. Extra arguments
	// are passed through and may be ignored.
	Arity int
	Check Predicate
}

// Registry is an immutable lookup table from rule name to predicate.
// It is safe for concurrent use.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry builds a registry from defs. Names are matched case-insensitively.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	if err := r.add(defs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Default returns the registry holding the built-in predicates.
func Default() *Registry {
	return defaultRegistry
}

// Lookup resolves name to its definition.
func (r *Registry) Lookup(name string) (Definition, error) {
	def, ok := r.defs[normalizeName(name)]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}
	return def, nil
}

// Has reports whether name resolves to a predicate.
func (r *Registry) Has(name string) bool {
	_, ok := r.defs[normalizeName(name)]
	return ok
}

// Extend returns a copy of the registry with defs added. The receiver is left
// untouched, so extending Default() never affects other users of it.
func (r *Registry) Extend(defs ...Definition) (*Registry, error) {
	next := &Registry{defs: make(map[string]Definition, len(r.defs)+len(defs))}
	for k, v := range r.defs {
		next.defs[k] = v
	}
	if err := next.add(defs...); err != nil {
		return nil, err
	}
	return next, nil
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for _, def := range r.defs {
		names = append(names, def.Name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) add(defs ...Definition) error {
	for _, def := range defs {
		key := normalizeName(def.Name)
		switch {
		case key == "":
			return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
		case def.Check == nil:
			return fmt.Errorf("%w: %q has no predicate", ErrInvalidDefinition, def.Name)
		case def.Arity < 0:
			return fmt.Errorf("%w: %q has negative arity", ErrInvalidDefinition, def.Name)
		}
		if _, exists := r.defs[key]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicatePredicate, def.Name)
		}
		def.Name = key
		r.defs[key] = def
	}
	return nil
}

// normalizeName folds case so "Required", "REQUIRED" and "required" all
// resolve to the same predicate.
func normalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

var defaultRegistry = mustRegistry(
	Definition{Name: "required", Check: func(v any, _ ...string) bool {
		return Required(v)
	}},
	Definition{Name: "equal", Arity: 1, Check: func(v any, args ...string) bool {
		return Equal(v, args[0])
	}},
	Definition{Name: "match", Arity: 1, Check: func(v any, args ...string) bool {
		return Match(v, args[0])
	}},
	Definition{Name: "email", Check: func(v any, _ ...string) bool {
		return Email(v)
	}},
	Definition{Name: "url", Check: func(v any, _ ...string) bool {
		return URL(v)
	}},
	Definition{Name: "date", Check: func(v any, args ...string) bool {
		return Date(v, args...)
	}},
	Definition{Name: "min", Arity: 1, Check: func(v any, args ...string) bool {
		return Min(v, args[0], args[1:]...)
	}},
	Definition{Name: "max", Arity: 1, Check: func(v any, args ...string) bool {
		return Max(v, args[0], args[1:]...)
	}},
	Definition{Name: "between", Arity: 2, Check: func(v any, args ...string) bool {
		return Between(v, args[0], args[1], args[2:]...)
	}},
	Definition{Name: "less", Arity: 1, Check: func(v any, args ...string) bool {
		return Less(v, args[0], args[1:]...)
	}},
	Definition{Name: "greater", Arity: 1, Check: func(v any, args ...string) bool {
		return Greater(v, args[0], args[1:]...)
	}},
)

func mustRegistry(defs ...Definition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return r
}
