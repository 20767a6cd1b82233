package app

import (
	"os"
	"sync"
	"sync/atomic"
)

const testModeEnv = "MELODEX_TEST_MODE"

var (
	testModeFlag atomic.Bool
	testModeOnce sync.Once
)

func detectTestMode() {
	testModeFlag.Store(os.Getenv(testModeEnv) == "1")
}

// InTestMode reports whether MELODEX_TEST_MODE=1 was set. main exits early
// in that case so test binaries never open network listeners or databases.
func InTestMode() bool {
	testModeOnce.Do(detectTestMode)
	return testModeFlag.Load()
}

// RefreshTestMode re-reads the environment, for tests that toggle the flag.
func RefreshTestMode() {
	detectTestMode()
}
