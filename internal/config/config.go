// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
)

// Options holds the configuration values for the application.
type Options struct {
	// Address defines the server's listening address (ip:port).
	Address string `json:"address"`

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string `json:"database_dsn"`

	// TokenSecret is the HMAC secret used to sign and verify session tokens.
	TokenSecret string `json:"token_secret"`

	// CORSOrigin is the single origin allowed credentialed cross-origin access.
	CORSOrigin string `json:"cors_origin"`

	// RequireAuth attaches the session-token verifier to the data routes.
	// Off by default: the API surface is public unless explicitly guarded.
	RequireAuth bool `json:"require_auth"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Address, "a", ":5000", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.TokenSecret, "s", "", "session token signing secret")
	flag.StringVar(&options.CORSOrigin, "o", "http://localhost:5173", "allowed CORS origin")
	flag.BoolVar(&options.RequireAuth, "auth", false, "require a session token on data routes")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Address = serverAddress
	}

	if port := os.Getenv("PORT"); port != "" {
		options.Address = ":" + strings.TrimPrefix(port, ":")
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if secret := os.Getenv("ACCESS_TOKEN_SECRET"); secret != "" {
		options.TokenSecret = secret
	}

	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		options.CORSOrigin = origin
	}

	if v := os.Getenv("REQUIRE_AUTH"); v != "" {
		options.RequireAuth = strings.EqualFold(v, "true") || v == "1"
	}

	return options
}
