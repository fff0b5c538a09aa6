package timer

import (
	"log"
	"time"
)

// Track returns a function that, when executed, logs the duration since
// Track was called.
// Usage: defer timer.Track("FunctionName")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		log.Printf("[TIME] %s took %v", name, time.Since(start))
	}
}
