// Package config loads application configuration from environment
// variables into tagged structs.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// The default .env file in the working directory is read once, if it exists,
// before the first Load. Variables already present in the process
// environment are never overridden by .env files.
//
// Each successfully parsed struct type is cached for the lifetime of the
// process; failed loads are not cached. Reset clears the cache, which
// tests use after changing the environment.
package config
