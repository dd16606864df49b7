// Package todoenv reads the environment variables that adjust tl defaults.
package todoenv

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/amonks/tasklist/internal/paths"
)

const (
	// StateDirEnvVar overrides the default state directory.
	StateDirEnvVar = "TASKLIST_STATE_DIR"

	// NowEnvVar pins the clock to an RFC 3339 timestamp.
	NowEnvVar = "TASKLIST_NOW"
)

// StateDir returns the state directory named by the environment, falling
// back to the default under the home directory.
func StateDir() (string, error) {
	return paths.ResolveWithDefault(strings.TrimSpace(os.Getenv(StateDirEnvVar)), paths.DefaultStateDir)
}

// Clock returns the clock implied by the environment: a fixed time when
// NowEnvVar is set, otherwise time.Now.
func Clock() (func() time.Time, error) {
	value := strings.TrimSpace(os.Getenv(NowEnvVar))
	if value == "" {
		return time.Now, nil
	}
	fixed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", NowEnvVar, err)
	}
	return func() time.Time { return fixed }, nil
}
