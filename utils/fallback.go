package utils

import (
	"go.uber.org/zap"
)

// WithFallback runs an upstream call and substitutes deterministic mock data
// when it fails. Every provider adapter routes its live call through this so
// the fallback and its telemetry stay uniform. The fallback path is always
// logged so synthetic results are distinguishable from genuine ones.
func WithFallback[T any](provider string, call func() (T, error), mock func() T) T {
	out, err := call()
	if err != nil {
		GetLogger().Warn("Provider call failed, serving fallback data",
			zap.String("provider", provider),
			zap.Error(err),
		)
		return mock()
	}
	return out
}
