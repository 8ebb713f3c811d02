package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the configuration flags registered on a command
// line flag set. Zero values mean "not given" and do not override other
// sources.
type Flags struct {
	httpAddress    string
	wsAddress      string
	requestTimeout time.Duration
	databaseDSN    string
	pollInterval   time.Duration
	defaultToken   string
	logFile        string
	jsonConfigPath string
}

// RegisterFlags registers all configuration flags on fs and returns the
// holder the parsed values land in.
//
// Flags:
//
//	-a/--address        backend REST base URL
//	--ws-address        push channel base URL
//	--request-timeout   request timeout (e.g., "15s")
//	-d/--dsn            local sqlite database path
//	--poll-interval     polling interval (e.g., "5s")
//	--default-token     fallback bearer credential
//	--log-file          log file path
//	-c/--config         json file path with configs
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.httpAddress, "address", "a", "", "Backend REST base URL")
	fs.StringVar(&f.wsAddress, "ws-address", "", "Push channel base URL (derived from --address when empty)")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVarP(&f.databaseDSN, "dsn", "d", "", "Local sqlite database path")
	fs.DurationVar(&f.pollInterval, "poll-interval", 0, "Polling interval (e.g., 5s)")
	fs.StringVar(&f.defaultToken, "default-token", "", "Fallback bearer credential")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")

	return f
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultToken: f.defaultToken,
			LogFile:      f.logFile,
		},
		Storage: Storage{
			DB: DB{DSN: f.databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    f.httpAddress,
			WSAddress:      f.wsAddress,
			RequestTimeout: f.requestTimeout,
		},
		Workers: Workers{
			PollInterval: f.pollInterval,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}
