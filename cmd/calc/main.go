package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	banner        = "Calculator with variables A-Z. Enter '.' to exit."
	minimalBanner = "Calculator. Enter '.' to exit."
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		flags      = defaultConfig()
		given      []string
	)
	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions with variables A-Z",
		Long: `Calc evaluates arithmetic expressions using + - * / % ^, parentheses, and
the single-letter variables A through Z, which start at 0 and are set by
assignments like "A = B = 5".

With arguments, calc evaluates each one in order. Otherwise it reads one
expression per line until a line containing only "." or the end of input.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if configFile != "" {
				if err := loadConfig(configFile, &cfg); err != nil {
					return err
				}
			}
			fs := cmd.Flags()
			if fs.Changed("prompt") {
				cfg.Prompt = flags.Prompt
			}
			if fs.Changed("fmt") {
				cfg.Format = flags.Format
			}
			if fs.Changed("minimal") {
				cfg.Minimal = flags.Minimal
			}
			if fs.Changed("log-level") {
				cfg.LogLevel = flags.LogLevel
			}
			for _, g := range given {
				if err := cfg.addGiven(g); err != nil {
					return err
				}
			}
			return run(cmd, cfg, args)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "configuration file (YAML)")
	pf.StringArrayVar(&given, "given", nil, "name=value variable definition (any number of times)")
	pf.BoolVar(&flags.Minimal, "minimal", false, "disable variables")
	pf.StringVar(&flags.Format, "fmt", flags.Format, "result formatting verb")
	pf.StringVar(&flags.Prompt, "prompt", flags.Prompt, "prompt for interactive input")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level (debug, info, warn, error)")
	return cmd
}

func run(cmd *cobra.Command, cfg config, args []string) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: color.NoColor}).
		Level(level).
		With().
		Timestamp().
		Str("component", "calc").
		Logger()

	e, err := cfg.evaluator()
	if err != nil {
		return err
	}
	r := &repl{
		e:      e,
		out:    cmd.OutOrStdout(),
		errs:   cmd.ErrOrStderr(),
		format: cfg.Format,
		log:    logger,
	}
	if len(args) > 0 {
		return r.args(args)
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b := banner
		if cfg.Minimal {
			b = minimalBanner
		}
		logger.Debug().Str("mode", "terminal").Msg("reading input")
		rw := struct {
			io.Reader
			io.Writer
		}{f, cmd.OutOrStdout()}
		return r.interactive(int(f.Fd()), rw, b, cfg.Prompt)
	}
	logger.Debug().Str("mode", "scan").Msg("reading input")
	return r.scan(in)
}
