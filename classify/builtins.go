package classify

import (
	"context"
	"errors"
)

// Built-in matcher registry names.
const (
	MatcherAny       = "any"
	MatcherTimeout   = "timeout"
	MatcherTemporary = "temporary"
	MatcherCanceled  = "canceled"
)

// RegisterBuiltins registers the core matchers into reg.
func RegisterBuiltins(reg *Registry) {
	if reg == nil {
		return
	}
	reg.Register(MatcherAny, Any())
	reg.Register(MatcherTimeout, MatcherFunc(isTimeout))
	reg.Register(MatcherTemporary, MatcherFunc(isTemporary))
	reg.Register(MatcherCanceled, Is(context.Canceled))
}

// Any matches every non-nil failure. It is the default whitelist entry when a
// plan names no tolerable failure kinds.
func Any() Matcher {
	return MatcherFunc(func(err error) bool {
		return err != nil
	})
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

func isTemporary(err error) bool {
	var t interface{ Temporary() bool }
	return errors.As(err, &t) && t.Temporary()
}
