// Package validation binds values to ordered rule lists and collects the
// first failure of each value into an ErrorMap.
//
// A Session is a fluent builder. Bind (or BindFromRecord) selects a value,
// AttachRule queues rules written as "name||arg||arg", and Evaluate runs them
// in order, stopping at the first failure:
//
//	s := validation.New()
//
//	s.BindFromRecord(post, "id").
//	    AttachRule("required", "Please enter an ID.").
//	    AttachRule(`match||[1-9]\d{3}`, "Please enter a valid ID.").
//	    Evaluate()
//
//	s.BindFromRecord(post, "age").
//	    AttachRule("min||16", "You must be 16 or older.").
//	    Evaluate()
//
//	errs, err := s.Errors()
//
// Rule names resolve through a validator.Registry; see package validator for
// the predicates and their comparison semantics.
//
// # Error handling
//
// Validation failures end up in the ErrorMap and never stop other fields from
// being validated. Configuration errors (an unknown rule name, too few rule
// arguments, a field missing from the record, using the session before a value
// is bound) abort the session instead: every later call is a no-op, Err
// reports the cause, Errors returns it in place of the map and MustErrors
// panics with it.
//
// # Batches
//
// Errors hands back the collected map and resets the session, including the
// counter used for automatic aliases, so the same Session can validate the
// next batch without being rebuilt. Calling Errors twice in a row yields an
// empty map the second time.
package validation
