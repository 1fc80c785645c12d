package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-w string   HTTP bind address (e.g., ":5000")
//	-d string   database DSN
//	-s string   JWT HMAC secret key
//	-t int      session token validity, minutes
//	-k int      bcrypt cost
//	-o int      store call timeout, seconds
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-i string   public image base URL
//	-l string   log level (debug, info, warn, error)
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-w", "-d", "-s", "-t", "-k", "-o", "-u", "-p", "-b", "-g", "-e", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenTTL := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.IntVar(&config.PasswordHashCost, "k", config.PasswordHashCost, "bcrypt cost")
	storeTimeout := fs.Int("o", int(config.StoreTimeout.Seconds()), "store timeout (in seconds)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.ImageBaseURL, "i", config.ImageBaseURL, "public image base URL")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*tokenTTL) * time.Minute
		case "o":
			config.StoreTimeout = time.Duration(*storeTimeout) * time.Second
		}
	})
}
