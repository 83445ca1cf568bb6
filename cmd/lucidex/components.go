package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type componentsOptions struct {
	category    string
	catalogPath string
	jsonOutput  bool
}

func newComponentsCmd(app *appContext) *cobra.Command {
	opts := &componentsOptions{}

	cmd := &cobra.Command{
		Use:   "components [keyword]",
		Short: "List builder component templates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := loadCatalog(firstNonEmpty(opts.catalogPath, app.config.CatalogPath))
			if err != nil {
				return err
			}
			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}
			comps := qs.ListComponents(opts.category, keyword)

			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(w, comps)
			}
			if len(comps) == 0 {
				fmt.Fprintln(w, "No components found.")
				return nil
			}
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, headerStyle.Render("ID")+"\t"+headerStyle.Render("TYPE")+"\t"+headerStyle.Render("CATEGORY")+"\t"+headerStyle.Render("DESCRIPTION"))
			for _, c := range comps {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Type, c.Category, mutedStyle.Render(c.Description))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Only templates in this category")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "Component catalog JSON (default: embedded catalog)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
