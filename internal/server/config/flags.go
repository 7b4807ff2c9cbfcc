package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/flagx"
)

// parseFlags overlays command-line flags onto config.
//
//	-a string     HTTP bind address (e.g. ":8080")
//	-driver string  database driver: sqlite or pgx
//	-d string     database DSN
//	-busy int     SQLite busy timeout, milliseconds
//	-s string     session token secret
//	-t int        session lifetime, minutes
//	-secure       send the session cookie with the Secure attribute
//	-u, -p string S3 credentials
//	-b string     S3 bucket
//	-g string     S3 region
//	-e string     S3 base endpoint
func parseFlags(config *Config) {
	args := flagx.FilterArgsWithBools(os.Args[1:],
		[]string{"-a", "-driver", "-d", "-busy", "-s", "-t", "-u", "-p", "-b", "-g", "-e"},
		[]string{"-secure"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "driver", config.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	busyTimeout := fs.Int64("busy", config.BusyTimeout.Milliseconds(), "sqlite busy timeout (in milliseconds)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session lifetime (in minutes)")
	fs.BoolVar(&config.SecureCookies, "secure", config.SecureCookies, "secure session cookie")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.BusyTimeout = time.Duration(*busyTimeout) * time.Millisecond
	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
}
