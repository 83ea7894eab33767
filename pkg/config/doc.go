// Package config loads the numregex command line defaults from the
// environment.
//
// Values come from NUMREGEX_* variables, optionally seeded from one or more
// .env files through github.com/joho/godotenv and parsed with
// github.com/caarlos0/env/v11. Variables already present in the process
// environment win over .env files.
//
//	NUMREGEX_LOCALE         locale or profile name (default en-US)
//	NUMREGEX_PROFILES_FILE  YAML document with custom profiles
//	NUMREGEX_CACHE_SIZE     compiled pattern cache capacity (default 128)
//	NUMREGEX_ENV            development, staging or production (default development)
//	NUMREGEX_LOG_LEVEL      debug, info, warn or error (default info); overrides the NUMREGEX_ENV preset
//	NUMREGEX_LOG_FORMAT     json or text; overrides the NUMREGEX_ENV preset
//
// # Error Handling
//
// Load returns errors matching ErrParsingConfig when a variable cannot be
// parsed and ErrInvalidConfig when a parsed value is out of range.
package config
