package config

import (
	"os"
	"strconv"
)

// IsDebug reads TAAL_DEBUG as a boolean ("1", "true", ...).
func IsDebug() bool {
	on, _ := strconv.ParseBool(os.Getenv("TAAL_DEBUG"))
	return on
}
