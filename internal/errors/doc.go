// Package errors provides the structured error type used across the character creator.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// optional metadata. The console layer uses the code to decide whether a
// failure is an input problem that should be shown inline and re-prompted,
// or something that ends the current command.
//
// # Input errors (re-prompted)
//
//	errors.InvalidArgumentf("%q is not a number", input)        // malformed number
//	errors.OutOfRangef("pick a number between 1 and %d", n)     // menu index out of range
//	errors.FailedPreconditionf("%s has already been assigned", a) // ability reused
//
// # Command errors (fatal)
//
//	errors.NotFoundf("race %q not found", id) // unknown catalog key
//	errors.Canceled("input closed")           // stdin reached EOF
//
// Wrapping keeps the original code:
//
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to allocate ability scores")
//	}
//
// Dependency validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	return vb.Build()
package errors
