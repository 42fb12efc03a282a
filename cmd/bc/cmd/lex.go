package cmd

import (
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/parkertenbroeck/bc/internal/diag"
	"github.com/parkertenbroeck/bc/internal/lexer"
	"github.com/parkertenbroeck/bc/internal/token"
)

var (
	evalExpr         string
	showPos          bool
	showKind         bool
	onlyErrors       bool
	preserveComments bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a bc source file or expression",
	Long: `Tokenize a bc program and print the resulting tokens.

Examples:
  bc lex program.bc
  bc lex -e "1 + 2 * 3"
  bc lex --show-kind --show-pos program.bc
  bc lex --only-errors program.bc`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexSource,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showKind, "show-kind", false, "show token kind names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens and diagnostics")
	lexCmd.Flags().BoolVar(&preserveComments, "comments", false, "emit comment tokens instead of discarding them")
}

func lexSource(cmd *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return errors.Annotatef(err, "reading %s", filename)
		}
		input = string(content)
	default:
		return errors.New("provide a file path or use -e for inline source")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("tokenizing %s (%d bytes)\n---\n", filename, len(input))
	}

	l := lexer.New(input, lexer.WithPreserveComments(preserveComments), lexer.WithTracing(verbose))

	count, illegal := 0, 0
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			if !onlyErrors || illegal == 0 {
				printToken(tok)
			}
			break
		}
		if onlyErrors && tok.Kind != token.ILLEGAL {
			continue
		}
		count++
		if tok.Kind == token.ILLEGAL {
			illegal++
		}
		printToken(tok)
	}

	if diags := l.Diagnostics(); len(diags) > 0 {
		fmt.Println(diag.FormatAll(diags, filename, input, false))
	}

	if verbose {
		fmt.Printf("---\ntokens: %d, illegal: %d\n", count, illegal)
	}

	if onlyErrors && illegal > 0 {
		return errors.Errorf("found %d illegal token(s)", illegal)
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if showKind {
		out = fmt.Sprintf("[%-14s]", tok.Kind)
	}
	switch {
	case tok.Kind == token.EOF:
		out += " EOF"
	case tok.Literal == "":
		out += fmt.Sprintf(" %s", tok.Kind)
	default:
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		out += fmt.Sprintf(" @%s", tok.Span)
	}
	fmt.Println(out)
}
