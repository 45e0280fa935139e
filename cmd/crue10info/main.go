// crue10info prints the distribution descriptor of a crue10 source tree.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/CNR-Engineering/Crue10-tools-sub001/config"
	"github.com/CNR-Engineering/Crue10-tools-sub001/logging"
	"github.com/CNR-Engineering/Crue10-tools-sub001/pkginfo"
	"github.com/CNR-Engineering/Crue10-tools-sub001/stopwatch"
	"github.com/CNR-Engineering/Crue10-tools-sub001/tracing"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	applicationName = "crue10info"

	rootFlag         = "root"
	requirementsFlag = "requirements"
	dataFlag         = "data"
	formatFlag       = "format"
	zapFlag          = "zap"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.StringP(config.FileFlag, "f", "", "the configuration file to use.  Overrides the search path.")
	fs.StringP(config.NameFlag, "n", applicationName, "the configuration file name, without extension, to search for")
	fs.String(rootFlag, ".", "the source tree to describe")
	fs.String(requirementsFlag, pkginfo.DefaultRequirementsFile, "the requirements file, relative to the root")
	fs.String(dataFlag, pkginfo.DefaultDataDir, "the package data directory, relative to the root")
	fs.String(formatFlag, pkginfo.FormatJSON, "the output format: json or msgpack")
	fs.Bool(zapFlag, false, "log through zap rather than the configured go-kit logger")
	return fs
}

// withLogger attaches the command's logger to ctx.  Both the zap and the go-kit loggers write to
// console unless the configuration names a log file, so stdout only ever carries the descriptor.
func withLogger(ctx context.Context, v *viper.Viper, console io.Writer) (context.Context, error) {
	if v.GetBool(zapFlag) {
		l := zap.New(zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.Lock(zapcore.AddSync(console)),
			zap.InfoLevel,
		))

		return sallust.With(ctx, l), nil
	}

	o, err := logging.FromViper(logging.Sub(v))
	if err != nil {
		return nil, err
	}

	return logging.WithLogger(ctx, logging.NewTo(o, console)), nil
}

// run executes the command with the given arguments, writing the descriptor to stdout and
// diagnostics to stderr.  The return value is the process exit code.
func run(arguments []string, stdout, stderr io.Writer) int {
	fs := newFlagSet()
	fs.SetOutput(stderr)
	if err := fs.Parse(arguments); err != nil {
		return 2
	}

	v, err := config.New(config.StdOptions(applicationName, fs))
	if err == nil {
		err = config.Read(v)
	}

	if err != nil {
		fmt.Fprintf(stderr, "Unable to load configuration: %s\n", err)
		return 1
	}

	ctx, err := withLogger(context.Background(), v, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Unable to create logger: %s\n", err)
		return 1
	}

	var (
		logger = logging.GetLogger(ctx)
		sw     = stopwatch.New()
		tracer = tracing.NewTracer(tracing.WithOutput(stderr), tracing.WithLogger(logger))
		load   = tracing.Func3(tracer, pkginfo.Load)
	)

	sw.Reset()
	d, err := load(ctx, os.DirFS(v.GetString(rootFlag)), &pkginfo.Options{
		RequirementsFile: v.GetString(requirementsFlag),
		DataDir:          v.GetString(dataFlag),
	})

	if err != nil {
		return 1
	}

	if err := d.Encode(stdout, v.GetString(formatFlag)); err != nil {
		fmt.Fprintf(stderr, "Unable to encode descriptor: %s\n", err)
		return 1
	}

	logging.Info(logger).Log(
		logging.MessageKey(), "described source tree",
		"root", v.GetString(rootFlag),
		"elapsed", sw.Elapsed(false),
	)

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
