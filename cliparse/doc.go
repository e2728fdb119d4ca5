// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - Environment: development, production or test (default: development)
  - SecureCookies: Secure flag on session cookies
  - DatabaseURL: Database connection string (default for sqlite: profilefeed.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - IPHashSalt: Secret for reporter IP hashing (required)
  - OptionsFile: YAML override for report policy/feedback options
  - FontDir: Directory holding the Gilroy font files (default: public/fonts)
  - AllowedOrigins: Origins allowed to make credentialed cross-origin requests

# CLI Flags

	-env-file        .env file to load (default: .env)
	-p               Server port
	-env             Runtime environment
	-secure-cookies  true or false
	-d               Database URL
	-t               Database type
	-ip-salt         IP hash salt
	-options         Report options YAML
	-fonts           Font directory
	-origins         Allowed origins, comma-separated
	-read-only-profiles  true to reject experience writes

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	APP_ENV             → -env
	SECURE_COOKIES      → -secure-cookies
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	IP_HASH_SALT        → -ip-salt
	REPORT_OPTIONS_FILE → -options
	FONT_DIR            → -fonts
	ALLOWED_ORIGINS     → -origins
	READ_ONLY_PROFILES  → -read-only-profiles

CLI flags take precedence over environment variables, and the process
environment takes precedence over the .env file.

# Secure Cookies

When SECURE_COOKIES is not set, DefaultSecureCookies decides from the
environment: development and production both get Secure cookies, test
does not.
*/
package cliparse
