package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/monkey/pkg/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [datei|-]",
	Short: "Token-Strom ausgeben",
	Long: `Zerlegt eine Datei in Tokens und gibt sie mit Position aus.

Beispiele:
  monkey tokens programm.monkey
  echo "let x = 5;" | monkey tokens`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	// every token is printed, including the ILLEGAL one an overflow leaves
	// behind, before the lexing error is returned
	tokens, lexErr := lexer.Tokenize(source)

	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintf(out, "%s\t%s\n", tok.Pos, tok)
	}
	return lexErr
}
