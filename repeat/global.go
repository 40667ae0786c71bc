package repeat

import (
	"log"
	"sync"
)

var (
	globalRunner *Runner
	globalOnce   sync.Once
)

// DefaultRunner returns the shared, lazy-initialized default runner.
// It uses NewRunner() if SetGlobal has not been called.
func DefaultRunner() *Runner {
	globalOnce.Do(func() {
		if globalRunner == nil {
			globalRunner = NewRunner()
		}
	})
	return globalRunner
}

// SetGlobal configures the default runner.
// It must be called before DefaultRunner() is used (e.g. at startup).
// If called after initialization, it logs a warning and does nothing.
func SetGlobal(r *Runner) {
	if r == nil {
		return
	}

	if globalRunner != nil {
		log.Printf("repeat: SetGlobal called after global runner already initialized; ignoring.")
		return
	}

	globalOnce.Do(func() {
		globalRunner = r
	})
}
