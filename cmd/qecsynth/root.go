package main

import (
	"io"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/squid2010/qecsynth"
	"github.com/squid2010/qecsynth/codes"
	"github.com/squid2010/qecsynth/config"
)

// options are the flags shared by every subcommand. A flag only overrides
// the config file when it is set explicitly.
type options struct {
	configPath string
	logLevel   string
	code       string
	shape      string
	n          int
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "qecsynth",
		Short:         "Stabilizer code circuit synthesizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := o.load(cmd.Flags()); err != nil {
				return err
			}
			return o.setupLogger(cmd.ErrOrStderr())
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "YAML config file")
	flags.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&o.code, "code", "", "stabilizer code (five-qubit, shor, steane)")
	flags.StringVar(&o.shape, "shape", "", "logical state (one-qubit, bell, ghz, unencoded-ghz)")
	flags.IntVar(&o.n, "n", 0, "number of qubits of a ghz state")

	root.AddCommand(newSynthCmd(o))
	root.AddCommand(newRunCmd(o))
	root.AddCommand(newTableCmd(o))
	return root
}

func (o *options) load(flags *pflag.FlagSet) error {
	o.cfg = config.Default()
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}
	if flags.Changed("log-level") {
		o.cfg.LogLevel = o.logLevel
	}
	if flags.Changed("code") {
		o.cfg.Code = o.code
	}
	if flags.Changed("shape") {
		o.cfg.Shape = o.shape
	}
	if flags.Changed("n") {
		o.cfg.LogicalQubits = o.n
	}
	return nil
}

// setupLogger sends log lines to w so they never mix with circuit output.
func (o *options) setupLogger(w io.Writer) error {
	level, err := zerolog.ParseLevel(o.cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetOutput(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
	log := logger.Logger()
	logger.Set(log.Level(level))
	return nil
}

func (o *options) synthesize() (*qecsynth.Result, error) {
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	code, err := codes.ByName(o.cfg.Code)
	if err != nil {
		return nil, err
	}
	shape, err := qecsynth.ParseShape(o.cfg.Shape)
	if err != nil {
		return nil, err
	}
	return qecsynth.Synthesize(code, shape, o.cfg.LogicalQubits)
}
