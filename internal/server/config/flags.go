package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-m string   variant: notes | waitlist
//	-b string   storage backend: memory | postgres | sqlite
//	-d string   database DSN
//	-s string   session cookie HMAC secret key
//	-t int      session validity, minutes
//	-k string   session backend: storage | redis
//	-r string   redis address
//	-p string   redis password
//	-l string   log level
//
// args are filtered with flagx.FilterArgs first, so -c/-config and foreign
// flags do not break parsing. -t is given in whole minutes.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-m", "-b", "-d", "-s", "-t", "-k", "-r", "-p", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.Variant, "m", config.Variant, "application variant (notes|waitlist)")
	fs.StringVar(&config.StorageBackend, "b", config.StorageBackend, "storage backend (memory|postgres|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session validity (in minutes)")

	fs.StringVar(&config.SessionBackend, "k", config.SessionBackend, "session backend (storage|redis)")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.RedisPassword, "p", config.RedisPassword, "redis password")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only an explicit -t overrides, so a sub-minute value from JSON survives.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
		}
	})
	return nil
}
