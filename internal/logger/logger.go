package logger

import (
	"io"
	stdlog "log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "scs-sentence-server"

// Init configures the global zerolog logger and routes the standard library
// logger through it. Development environments get a human readable console.
func Init(logLevelStr string, appEnv string) {
	var output io.Writer = os.Stdout
	if isDevelopment(appEnv) {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	Setup(output, logLevelStr)
}

// Setup points the global logger at w with the given level.
func Setup(w io.Writer, logLevelStr string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil || parsedLevel == zerolog.NoLevel {
		parsedLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsedLevel)

	log.Logger = zerolog.New(w).With().Timestamp().Str("service", serviceName).Logger()
	if err != nil {
		log.Warn().Err(err).Msgf("Invalid log level '%s', defaulting to 'info'", logLevelStr)
	}

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)
}

func isDevelopment(appEnv string) bool {
	env := strings.ToLower(appEnv)
	return env == "development" || env == "dev"
}
