package config

import "os"

// Development reports whether MINES_MODE asks for a development build. It is
// read before any config file so that early startup logging is verbose too.
func Development() bool {
	mode, ok := os.LookupEnv("MINES_MODE")
	if !ok {
		return false
	}
	return mode == ModeDevelopment
}
