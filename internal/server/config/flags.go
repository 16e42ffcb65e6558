package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/tuchka/internal/flagx"
)

var serverFlags = []string{
	"-a", "-g", "-d", "-s", "-issuer", "-audience", "-reset-ttl", "-min-password",
	"-redis", "-redis-password", "-redis-db",
	"-u", "-p", "-b", "-r", "-e", "-otlp", "-log-level",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string           HTTP bind address (e.g. ":8080")
//	-g string           gRPC bind address (e.g. ":50051")
//	-d string           PostgreSQL DSN
//	-s string           JWT HMAC secret key
//	-issuer string      JWT issuer
//	-audience string    JWT audience
//	-reset-ttl duration password reset token lifetime
//	-min-password int   minimum password length
//	-redis string       Redis address
//	-redis-password     Redis password
//	-redis-db int       Redis database number
//	-u / -p string      S3 root user / password
//	-b string           S3 bucket
//	-r string           S3 region
//	-e string           S3 base endpoint
//	-otlp string        OTLP/HTTP trace endpoint
//	-log-level string   debug, info, warn or error
//
// Unknown arguments are dropped by flagx.FilterArgs first, so -c and the
// like do not break parsing.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrHTTP, "a", cfg.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&cfg.EndpointAddrGRPC, "g", cfg.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	fs.StringVar(&cfg.Issuer, "issuer", cfg.Issuer, "token issuer")
	fs.StringVar(&cfg.Audience, "audience", cfg.Audience, "token audience")
	fs.DurationVar(&cfg.ResetTokenTTL, "reset-ttl", cfg.ResetTokenTTL, "reset token lifetime")
	fs.IntVar(&cfg.MinPasswordLength, "min-password", cfg.MinPasswordLength, "minimum password length")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.RedisPassword, "redis-password", cfg.RedisPassword, "redis password")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "redis database")
	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 root user")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 root password")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "r", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.OTLPEndpoint, "otlp", cfg.OTLPEndpoint, "OTLP trace endpoint")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	return fs.Parse(flagx.FilterArgs(args, serverFlags))
}
