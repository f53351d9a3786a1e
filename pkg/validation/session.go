package validation

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/K3nguruh/validation/pkg/logger"
	"github.com/K3nguruh/validation/pkg/sanitizer"
	"github.com/K3nguruh/validation/pkg/validator"
)

// Record is a key/value input such as decoded form fields.
type Record map[string]any

// rule is a RuleSpec resolved against the registry when it is attached.
type rule struct {
	spec RuleSpec
	def  validator.Definition
}

// Session validates a sequence of values and collects one error message per
// alias. Every method returns the session so calls can be chained:
//
//	s.Bind(post["age"]).
//	    SetAlias("age").
//	    AttachRule("required", "Please enter your age.").
//	    AttachRule("min||16", "You must be 16 or older.").
//	    Evaluate()
//
// A configuration error (unknown rule, missing record field, ...) aborts the
// session: later calls do nothing until Errors resets it. A Session is not
// safe for concurrent use; create one per validation pass.
type Session struct {
	id        string
	registry  *validator.Registry
	separator string
	sanitize  sanitizer.Func
	logger    *slog.Logger

	bound bool
	value string
	alias string
	rules []rule

	errors ErrorMap
	seq    int
	err    error
}

// New creates a session using the built-in predicates.
func New(opts ...Option) *Session {
	s := &Session{
		id:        uuid.NewString(),
		registry:  validator.Default(),
		separator: DefaultSeparator,
		sanitize:  sanitizer.Trim,
		logger:    logger.Discard(),
		errors:    make(ErrorMap),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("validation"), logger.SessionID(s.id))
	return s
}

// ID returns the identifier attached to this session's log records.
func (s *Session) ID() string { return s.id }

// Alias returns the alias of the currently bound value.
func (s *Session) Alias() string { return s.alias }

// Value returns the sanitized form of the currently bound value.
func (s *Session) Value() string { return s.value }

// Err returns the configuration error that aborted the session, if any.
func (s *Session) Err() error { return s.err }

// Bind makes value the subject of the following rules. Pending rules are
// dropped and the value gets the next sequence number as its alias.
func (s *Session) Bind(value any) *Session {
	if s.err != nil {
		return s
	}

	s.bind(value, strconv.Itoa(s.seq))
	s.seq++
	return s
}

// BindFromRecord binds record[field] under the alias field. A missing field
// is a configuration error.
func (s *Session) BindFromRecord(record Record, field string) *Session {
	if s.err != nil {
		return s
	}

	value, ok := record[field]
	if !ok {
		return s.abort(fmt.Errorf("%w: %q", ErrFieldNotFound, field), logger.Field(field))
	}

	s.bind(value, field)
	return s
}

// SetAlias changes the alias of the bound value without touching the value.
func (s *Session) SetAlias(name string) *Session {
	switch {
	case s.err != nil:
		return s
	case !s.bound:
		return s.abort(fmt.Errorf("%w: cannot set alias %q", ErrNotBound, name))
	case name == "":
		return s.abort(fmt.Errorf("%w: alias must not be empty", ErrInvalidAlias))
	}

	s.alias = name
	return s
}

// AttachRule appends a rule to the bound value. spec is a rule name
// optionally followed by separator-delimited arguments, e.g. "min||16".
// The rule is resolved immediately but not evaluated.
func (s *Session) AttachRule(spec, message string) *Session {
	if s.err != nil {
		return s
	}
	if !s.bound {
		return s.abort(fmt.Errorf("%w: cannot attach rule %q", ErrNotBound, spec))
	}

	r, err := ParseRule(spec, s.separator)
	if err != nil {
		return s.abort(err, logger.Alias(s.alias))
	}
	r.Message = message

	def, err := s.registry.Lookup(r.Name)
	if err != nil {
		return s.abort(err, logger.Alias(s.alias), logger.Rule(r.Name))
	}
	if len(r.Args) < def.Arity {
		return s.abort(
			fmt.Errorf("%w: rule %q needs %d argument(s), got %d", ErrMissingArgument, r.Name, def.Arity, len(r.Args)),
			logger.Alias(s.alias), logger.Rule(r.Name),
		)
	}

	s.rules = append(s.rules, rule{spec: r, def: def})
	return s
}

// Evaluate runs the attached rules in order. The first failing rule records
// its message under the alias and stops evaluation; when all rules pass any
// earlier entry for the alias is removed. The rules are consumed either way.
func (s *Session) Evaluate() *Session {
	if s.err != nil {
		return s
	}
	if !s.bound {
		return s.abort(fmt.Errorf("%w: nothing to evaluate", ErrNotBound))
	}
	if len(s.rules) == 0 {
		return s
	}

	rules := s.rules
	s.rules = nil

	for _, r := range rules {
		if !r.def.Check(s.value, r.spec.Args...) {
			s.errors[s.alias] = r.spec.Message
			s.logger.Debug("rule failed", logger.Alias(s.alias), logger.Rule(r.def.Name))
			return s
		}
	}

	delete(s.errors, s.alias)
	return s
}

// Errors returns the messages collected since the session was created or
// last reset, then resets it: the error map, the alias sequence, the bound
// value and any configuration error are cleared so the session can validate
// a new batch. If the batch was aborted, the configuration error is returned
// instead of the map.
func (s *Session) Errors() (ErrorMap, error) {
	errs, err := s.errors, s.err
	s.reset()

	if err != nil {
		return nil, err
	}
	s.logger.Debug("validation batch completed", logger.Count("failed", len(errs)))
	return errs, nil
}

// MustErrors is like Errors but panics on a configuration error.
func (s *Session) MustErrors() ErrorMap {
	errs, err := s.Errors()
	if err != nil {
		panic(fmt.Sprintf("validation: %v", err))
	}
	return errs
}

func (s *Session) bind(value any, alias string) {
	s.bound = true
	s.value = s.sanitize(validator.Stringify(value))
	s.alias = alias
	s.rules = nil
}

func (s *Session) abort(err error, attrs ...slog.Attr) *Session {
	s.err = err
	s.rules = nil

	args := make([]any, 0, len(attrs)+1)
	args = append(args, logger.Error(err))
	for _, a := range attrs {
		args = append(args, a)
	}
	s.logger.Error("invalid validation configuration", args...)
	return s
}

func (s *Session) reset() {
	s.bound = false
	s.value = ""
	s.alias = ""
	s.rules = nil
	s.errors = make(ErrorMap)
	s.seq = 0
	s.err = nil
}
