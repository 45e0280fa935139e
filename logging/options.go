package logging

import (
	"io"
	"os"

	"github.com/go-kit/kit/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Special values for Options.File that name a standard stream rather than a file on disk.
const (
	StdoutFile = "stdout"
	StderrFile = "stderr"
)

// Options stores the configuration of a Logger, normally unmarshaled from the "log" key of the
// crue10 configuration.  Anything other than a standard stream in File is a rolling file.
type Options struct {
	// File is where log output goes.  Empty means the console writer given to NewTo, "stdout" and
	// "stderr" name the process streams, and any other value is the path of a rolling log file.
	File string `json:"file"`

	// MaxSize is the size in megabytes at which a log file is rolled
	MaxSize int `json:"maxsize"`

	// MaxAge is the number of days rolled files are kept
	MaxAge int `json:"maxage"`

	// MaxBackups is the number of rolled files kept
	MaxBackups int `json:"maxbackups"`

	// JSON selects JSON output instead of logfmt.
	JSON bool `json:"json"`

	// Level is the least severe level written: ERROR, INFO, WARN, or DEBUG.  Any unrecognized string,
	// including the empty string, is equivalent to passing ERROR.
	Level string `json:"level"`
}

// output resolves File into a writer.  console is used when File is empty.
func (o *Options) output(console io.Writer) io.Writer {
	var file string
	if o != nil {
		file = o.File
	}

	switch file {
	case "":
		return log.NewSyncWriter(console)

	case StdoutFile:
		return log.NewSyncWriter(os.Stdout)

	case StderrFile:
		return log.NewSyncWriter(os.Stderr)

	default:
		return &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    o.MaxSize,
			MaxAge:     o.MaxAge,
			MaxBackups: o.MaxBackups,
		}
	}
}

func (o *Options) loggerFactory() func(io.Writer) log.Logger {
	if o != nil && o.JSON {
		return log.NewJSONLogger
	}

	return log.NewLogfmtLogger
}

func (o *Options) level() string {
	if o != nil {
		return o.Level
	}

	return ""
}
