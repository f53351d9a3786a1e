package validation

import (
	"fmt"
	"strings"
)

// DefaultSeparator delimits the rule name and its arguments in a rule spec.
const DefaultSeparator = "||"

// RuleSpec is a parsed rule: the predicate name, its arguments and the
// message recorded when the predicate fails.
type RuleSpec struct {
	Name    string
	Args    []string
	Message string
}

// String renders the rule back into spec form using DefaultSeparator.
func (r RuleSpec) String() string {
	return strings.Join(append([]string{r.Name}, r.Args...), DefaultSeparator)
}

// ParseRule splits spec into a rule name and arguments, e.g.
// "between||1||10" becomes {Name: "between", Args: ["1", "10"]}.
// Arguments are kept verbatim, including empty ones; only the name is trimmed.
// An empty separator means DefaultSeparator.
func ParseRule(spec, separator string) (RuleSpec, error) {
	if separator == "" {
		separator = DefaultSeparator
	}

	parts := strings.Split(spec, separator)
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return RuleSpec{}, fmt.Errorf("%w: %q has no rule name", ErrInvalidRule, spec)
	}

	r := RuleSpec{Name: name}
	if len(parts) > 1 {
		r.Args = parts[1:]
	}
	return r, nil
}
