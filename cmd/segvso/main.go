package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/revelaction/segvso/config"
)

var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

const (
	envDocPath = "SEGVSO_DOC_PATH"
	envConfig  = "SEGVSO_CONFIG"
)

// UI contains the input and output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "segvso: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                 "segvso",
		Usage:                "extract verb, subject and object sequences from dependency parsed documents",
		Version:              fmt.Sprintf("%s (commit: %s)", BuildTag, BuildCommit),
		Reader:               ui.In,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		HideVersion:          true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{envConfig},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "debug logging to stderr",
			},
		},
		Commands: []*cli.Command{
			extractCmd(ui),
			decodeCmd(ui),
			statCmd(ui),
			countCmd(ui),
			sentenceCmd(ui),
			importCmd(ui),
			queryCmd(ui),
			bashCmd(ui),
			versionCmd(ui),
		},
	}
}

// env is the configuration shared by the commands.
type env struct {
	cfg    config.Config
	logger *zap.Logger
}

func newEnv(c *cli.Context, ui UI) (env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return env{}, err
	}

	return env{cfg: cfg, logger: newLogger(c.Bool("verbose"), ui.Err)}, nil
}

// newLogger logs JSON at info level, or in console format at debug level
// when verbose.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if verbose {
		enc := zap.NewDevelopmentEncoderConfig()
		return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.DebugLevel))
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), zapcore.InfoLevel))
}

func docPathFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "doc-path",
		Aliases:  []string{"d"},
		Usage:    "Path to docs directory or SQLite file",
		EnvVars:  []string{envDocPath},
		Required: true,
	}
}

func noProgressFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "no-progress",
		Usage: "do not show the progress bar",
	}
}
