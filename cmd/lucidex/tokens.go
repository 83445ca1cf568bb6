package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gnana997/lucidex/pkg/tokens"
)

type tokensOptions struct {
	tokensDir  string
	jsonOutput bool
}

func newTokensCmd(app *appContext) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Browse design tokens",
	}
	cmd.PersistentFlags().StringVar(&opts.tokensDir, "tokens-dir", "", "Directory of token documents (default: embedded tokens)")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	store := func() (*tokens.Store, error) {
		return loadTokenStore(firstNonEmpty(opts.tokensDir, app.config.TokensDir), app.logger)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List token categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store()
			if err != nil {
				return err
			}
			return renderCategories(cmd.OutOrStdout(), s.Categories(), opts.jsonOutput)
		},
	})

	var category, typ, themeName string
	search := &cobra.Command{
		Use:   "search [query]",
		Short: "Search tokens by name, description or variable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store()
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			res := s.Search(query, tokens.Filters{Category: category, Type: tokens.TokenType(typ)})
			return renderTokens(cmd.OutOrStdout(), res, tokens.ParseTheme(themeName), opts.jsonOutput)
		},
	}
	search.Flags().StringVar(&category, "category", "", "Only tokens of this category")
	search.Flags().StringVar(&typ, "type", "", "Only tokens of this type (color, spacing, typography, shadow, border-radius)")
	search.Flags().StringVar(&themeName, "theme", "light", "Theme whose values are shown")
	cmd.AddCommand(search)

	var valueTheme string
	value := &cobra.Command{
		Use:   "value <id>",
		Short: "Print the value of a token id such as colors:brand-maroon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store()
			if err != nil {
				return err
			}
			token, ok := s.Token(args[0])
			if !ok {
				return fmt.Errorf("unknown token: %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), tokens.GetTokenValue(token, tokens.ParseTheme(valueTheme)))
			return nil
		},
	}
	value.Flags().StringVar(&valueTheme, "theme", "light", "light or dark")
	cmd.AddCommand(value)

	return cmd
}

func renderCategories(w io.Writer, cats []tokens.CategoryInfo, asJSON bool) error {
	if asJSON {
		return writeJSON(w, cats)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("KEY")+"\t"+headerStyle.Render("TYPE")+"\t"+headerStyle.Render("TOKENS")+"\t"+headerStyle.Render("DESCRIPTION"))
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", c.Key, c.Type, c.TokenCount, mutedStyle.Render(c.Description))
	}
	return tw.Flush()
}

func renderTokens(w io.Writer, res *tokens.TokenIndex, th tokens.Theme, asJSON bool) error {
	if asJSON {
		return writeJSON(w, res)
	}
	if res.Len() == 0 {
		fmt.Fprintln(w, "No tokens found.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("ID")+"\t"+headerStyle.Render("VARIABLE")+"\t"+headerStyle.Render("VALUE"))
	res.Each(func(id string, entry tokens.IndexEntry) bool {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, entry.Token.Variable, tokens.GetTokenValue(entry.Token, th))
		return true
	})
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
