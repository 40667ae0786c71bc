package classify

import "errors"

// Matcher reports whether a failure belongs to one tolerable failure kind.
//
// Matchers replace runtime type hierarchies: subtype-style matching is
// expressed through errors.Is/errors.As over wrapped causes, or an arbitrary
// predicate.
type Matcher interface {
	Matches(err error) bool
}

// MatcherFunc adapts a predicate to the Matcher interface.
type MatcherFunc func(error) bool

func (f MatcherFunc) Matches(err error) bool {
	return f(err)
}

// Is matches failures equal to (or wrapping) target, per errors.Is.
func Is(target error) Matcher {
	return MatcherFunc(func(err error) bool {
		return errors.Is(err, target)
	})
}

// As matches failures whose chain contains a T, per errors.As.
func As[T error]() Matcher {
	return MatcherFunc(func(err error) bool {
		var t T
		return errors.As(err, &t)
	})
}
