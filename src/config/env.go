package config

import (
	"os"
	"strconv"

	"github.com/go-logr/logr"
)

// geometryOverride returns the value of the environment variable key parsed
// with parse. When the variable is unset or does not parse, current is kept.
func geometryOverride[T any](key string, current T, parse func(string) (T, error), logger logr.Logger) T {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return current
	}

	v, err := parse(raw)
	if err != nil {
		logger.Error(err, "Ignoring geometry override", "key", key, "raw", raw, "keeping", current)
		return current
	}
	logger.Info("Geometry override applied", "key", key, "from", current, "to", v)
	return v
}

// EnvInt reads an integer geometry parameter from key, falling back to current.
func EnvInt(key string, current int, logger logr.Logger) int {
	return geometryOverride(key, current, strconv.Atoi, logger)
}

// EnvFloat reads a floating point geometry parameter from key, falling back to current.
func EnvFloat(key string, current float64, logger logr.Logger) float64 {
	parse := func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
	return geometryOverride(key, current, parse, logger)
}
