package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/monkey/internal/repl"
	"github.com/msto63/monkey/pkg/core/logging"
)

var (
	replMode  string
	replColor string
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interaktive Eingabeschleife",
	Long: `Liest Zeilen ein und gibt je nach Modus Tokens oder den AST aus.

Modi:
  tokens  - ein Token pro Zeile
  ast     - Programm in Normalform, z.B. ((1 + (2 * 3)))
  tree    - eingerückter Syntaxbaum

Befehle in der REPL:
  :mode [tokens|ast|tree]
  :quit

Beispiele:
  monkey repl
  monkey repl --mode ast
  echo "let x = 1 + 2;" | monkey repl --mode tree`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVarP(&replMode, "mode", "m", "", "Ausgabemodus (tokens, ast, tree)")
	replCmd.Flags().StringVar(&replColor, "color", "", "Farben (auto, always, never)")
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg := appConfig.REPL

	modeName := cfg.Mode
	if replMode != "" {
		modeName = replMode
	}
	mode, err := repl.ParseMode(modeName)
	if err != nil {
		return err
	}

	color := cfg.Color
	if replColor != "" {
		color = replColor
	}

	return repl.Start(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), repl.Options{
		Prompt:      cfg.Prompt,
		Mode:        mode,
		HistoryFile: cfg.HistoryFile,
		Color:       color,
		Parser:      parserOptions(),
		Logger:      logging.Default(),
	})
}
