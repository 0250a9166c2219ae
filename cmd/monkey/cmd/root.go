package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/monkey/pkg/core/config"
	"github.com/msto63/monkey/pkg/core/logging"
	"github.com/msto63/monkey/pkg/parser"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	logFile   *os.File // general.log_file, open while a command runs
)

var rootCmd = &cobra.Command{
	Use:   "monkey",
	Short: "Monkey - Lexer und Parser für die Monkey-Sprache",
	Long: `monkey zerlegt Monkey-Quelltext in Tokens und baut daraus einen
Syntaxbaum (AST).

Ohne Unterbefehl startet die interaktive REPL.

Befehle:
  repl     - Interaktive Eingabeschleife
  tokens   - Token-Strom einer Datei ausgeben
  parse    - Datei parsen und den AST ausgeben
  version  - Versionsinformationen`,
	Args:               cobra.NoArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runREPL,
}

// Execute runs the root command until it finishes or the process is
// interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer closeLogFile()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $MONKEY_CONFIG oder ./monkey.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// setup loads the configuration and installs the process logger
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	appConfig = cfg

	level := cfg.General.LogLevel
	if verbose {
		level = "debug"
	}

	var extra []io.Writer
	if cfg.General.LogFile != "" {
		closeLogFile()
		f, err := os.OpenFile(cfg.General.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("log-datei öffnen: %w", err)
		}
		logFile = f
		extra = append(extra, f)
	}

	logging.SetDefault(logging.NewLogger(logging.LoggerConfig{
		ServiceName:       "monkey",
		Level:             level,
		Format:            cfg.General.LogFormat,
		Output:            cmd.ErrOrStderr(),
		AdditionalOutputs: extra,
	}))
	return nil
}

// teardown releases what setup opened
func teardown(cmd *cobra.Command, args []string) error {
	return closeLogFile()
}

func closeLogFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	if err != nil {
		return fmt.Errorf("log-datei schließen: %w", err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("config laden: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadFromEnv()
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config laden: %w", err)
	}
	return cfg, nil
}

// parserOptions maps the loaded configuration onto parser options
func parserOptions() parser.Options {
	opts := parser.Options{Logger: logging.Default()}
	if appConfig != nil {
		opts.MaxDepth = appConfig.Parser.MaxDepth
		opts.MaxInputLength = appConfig.Parser.MaxInputLength
	}
	return opts
}

// readSource reads the named file, or standard input for "-" or no argument
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("standardeingabe lesen: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("datei lesen: %w", err)
	}
	return string(data), nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Fehler: %v\n", err)
}
