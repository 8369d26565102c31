// Package config snapshots the process environment into a plain map with
// typed getters. Keys used by this backend:
//
//	DATABASE_URL        postgres connection string
//	JWT_SECRET          session token signing secret
//	JWT_EXPIRE_MINUTES  session token lifetime (default 10080 = 7 days)
//	CLIENT_URL          allowed cross-origin frontend URL
//	PORT                listen port (default 5000)
//	UPLOADS_DIR         static upload directory (default "uploads")
//	READ_TIMEOUT_SECONDS, WRITE_TIMEOUT_SECONDS, IDLE_TIMEOUT_SECONDS
//	                    HTTP server timeouts (defaults 60/60/120)
package config

import (
	"os"
	"strconv"
	"strings"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	s, ok := config[key]
	if !ok || s == "" {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
