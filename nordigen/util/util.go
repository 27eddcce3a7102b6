package util

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "nordigen.util")

// DebugEnabled turns on resty request/response dumps.
func DebugEnabled() bool {
	return EnvBool("NORDIGEN_DEBUG")
}

// HttpTraceEnabled turns on per request timing traces logged at debug level.
func HttpTraceEnabled() bool {
	return EnvBool("NORDIGEN_HTTP_TRACE")
}

// EnvBool false when the variable is unset or not a boolean.
func EnvBool(key string) bool {
	bv, err := strconv.ParseBool(GetEnvOrDefault(key, "false"))
	return err == nil && bv
}

// GetEnvOrFailed value of a required variable. Unset or blank ends the process through logger.Fatal.
func GetEnvOrFailed(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		logger.WithField("variable", key).Fatal("required environment variable is not set")
	}
	return v
}

func GetEnvOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
