package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/monkey/pkg/ast"
	"github.com/msto63/monkey/pkg/parser"
)

var (
	parseFormat string
	parseStats  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [datei|-]",
	Short: "Datei parsen und AST ausgeben",
	Long: `Parst eine Datei und gibt den Syntaxbaum aus.

Formate:
  text  - Programm in Normalform (Standard)
  tree  - eingerückter Syntaxbaum
  yaml  - Syntaxbaum als YAML
  json  - Syntaxbaum als JSON

Mit --stats wird statt des Baums eine Übersicht ausgegeben: Anzahl der
Anweisungen, Schachtelungstiefe sowie Bezeichner, Zahlen, Aufrufe und
Funktionen.

Beispiele:
  monkey parse programm.monkey
  monkey parse --format yaml programm.monkey
  echo "1 + 2 * 3" | monkey parse --format tree`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "Ausgabeformat (text, tree, yaml, json)")
	parseCmd.Flags().BoolVar(&parseStats, "stats", false, "Statistik statt Syntaxbaum ausgeben")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(source, parserOptions())
	if err != nil {
		return err
	}

	if parseStats {
		return writeStats(cmd.OutOrStdout(), program)
	}
	return writeProgram(cmd.OutOrStdout(), program, parseFormat)
}

func writeStats(w io.Writer, program *ast.Program) error {
	c := ast.Collect(program)

	names := make(map[string]struct{}, len(c.Identifiers))
	for _, id := range c.Identifiers {
		names[id.Name] = struct{}{}
	}

	_, err := fmt.Fprintf(w, "statements:  %d\ndepth:       %d\nidentifiers: %d (%d distinct)\nintegers:    %d\ncalls:       %d\nfunctions:   %d\n",
		len(program.Statements), ast.Depth(program),
		len(c.Identifiers), len(names), len(c.Integers), len(c.Calls), len(c.Functions))
	return err
}

func writeProgram(w io.Writer, program *ast.Program, format string) error {
	switch format {
	case "text":
		if s := program.String(); s != "" {
			fmt.Fprintln(w, s)
		}
		return nil
	case "tree":
		_, err := fmt.Fprint(w, ast.Dump(program))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Tree(program)); err != nil {
			return fmt.Errorf("yaml kodieren: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ast.Tree(program)); err != nil {
			return fmt.Errorf("json kodieren: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unbekanntes Format %q (text, tree, yaml, json)", format)
	}
}
