package main

import (
	"io"
	"log"
	"os"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	config    string
	format    string
	maxDepth  int
	noHistory bool
	noColor   bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "flt",
		Short: "Parse arithmetic expressions interactively",
		Long: `flt reads one arithmetic expression per line and prints its syntax tree.

Expressions use decimal numbers, + - * /, prefix -, and parentheses.
Ctrl+C or Ctrl+D exits.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			logger := log.New(io.Discard, log.Prefix(), log.Flags())
			if f.verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			}
			return runREPL(cmd, cfg, logger)
		},
	}
	f.addFlags(cmd)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (f *rootFlags) addFlags(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "config file (default $XDG_CONFIG_HOME/flt/config.toml)")
	fl.StringVar(&f.format, "format", formatDebug, `tree output format, "debug" or "infix"`)
	fl.IntVar(&f.maxDepth, "max-depth", 0, "maximum expression nesting, 0 for no limit")
	fl.BoolVar(&f.noHistory, "no-history", false, "don't read or write line history")
	fl.BoolVar(&f.noColor, "no-color", false, "disable styled output")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "report history file problems")
}

// load reads the config file and applies any flags given on the command line.
func (f *rootFlags) load(cmd *cobra.Command) (Config, error) {
	path, required := f.config, true
	if path == "" {
		path, required = defaultConfigPath(), false
	}
	cfg, err := LoadConfig(path, required)
	if err != nil {
		return Config{}, err
	}
	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	if f.noHistory {
		cfg.HistoryFile = ""
	}
	if f.noColor {
		cfg.Color = false
	}
	return cfg, cfg.Validate()
}

// runREPL runs the REPL on the terminal.
func runREPL(cmd *cobra.Command, cfg Config, logger *log.Logger) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := cfg.historyPath()
	if hist != "" {
		if fi, err := os.Open(hist); err == nil {
			if _, err := ln.ReadHistory(fi); err != nil {
				logger.Printf("reading history: %v", err)
			}
			fi.Close()
		} else if !os.IsNotExist(err) {
			logger.Printf("opening history: %v", err)
		}
	}

	r := newREPL(cfg, ln, cmd.OutOrStdout(), cmd.ErrOrStderr())
	err := r.run()

	if hist != "" {
		if fo, err := os.Create(hist); err == nil {
			if _, err := ln.WriteHistory(fo); err != nil {
				logger.Printf("writing history: %v", err)
			}
			fo.Close()
		} else {
			logger.Printf("saving history: %v", err)
		}
	}
	return err
}
