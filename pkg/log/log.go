package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type LogFormat string

var (
	Pretty LogFormat = "pretty"
	JSON   LogFormat = "json"
	Text   LogFormat = "text"
)

var (
	stderr = zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Stdout carries generated values when the output format is json.
	// Everything else is logged to stderr so stdout can be piped
	Stdout = zerolog.New(os.Stdout).With().Timestamp().Logger()

	globalFormat LogFormat = "pretty"

	Fatal = stderr.Fatal
	Error = stderr.Error
	Warn  = stderr.Warn
	Info  = stderr.Info
	Debug = stderr.Debug
	Trace = stderr.Trace

	GetLevel = stderr.GetLevel
)

const (
	FatalLevel = zerolog.FatalLevel
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
	TraceLevel = zerolog.TraceLevel
)

var (
	ErrUnsupportedFormat = fmt.Errorf("unsupported format. supported 'json', 'pretty', 'text'")
)

// rebind points the package level helpers at the current stderr logger.
// zerolog loggers are values, so the method values go stale whenever stderr is replaced
func rebind() {
	Fatal = stderr.Fatal
	Error = stderr.Error
	Warn = stderr.Warn
	Info = stderr.Info
	Debug = stderr.Debug
	Trace = stderr.Trace
	GetLevel = stderr.GetLevel
}

func SetLevelString(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	stderr = stderr.Level(l)
	Stdout = Stdout.Level(l)
	rebind()
	return nil
}

// SetOutput redirects the diagnostic logger. Mostly useful for tests and for silencing
// the logger with io.Discard
func SetOutput(w io.Writer) {
	stderr = stderr.Output(w)
	rebind()
}

func GetLogFormat() LogFormat {
	return globalFormat
}

func SetFormat(format string) error {
	switch format {
	case "json", "":
		globalFormat = JSON
	case "pretty":
		stderr = stderr.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false, TimeFormat: "3:04PM"})
		globalFormat = Pretty
	case "text":
		stderr = stderr.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true, TimeFormat: "3:04PM"})
		globalFormat = Text
	default:
		return ErrUnsupportedFormat
	}
	rebind()
	return nil
}
