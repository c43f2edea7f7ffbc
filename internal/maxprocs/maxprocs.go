// Package maxprocs adjusts GOMAXPROCS to match the process's cgroup CPU
// quota at startup.
package maxprocs

import (
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
)

// Adjust sets GOMAXPROCS from the cgroup CPU quota, logging the outcome
// instead of failing the process if it cannot be determined.
func Adjust(logger *zap.Logger) {
	_, err := maxprocs.Set()
	if err != nil {
		logger.Warn("failed to set GOMAXPROCS", zap.Error(err))
	}
}
