package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnana997/lucidex/pkg/builder"
	"github.com/gnana997/lucidex/pkg/parser"
)

type layoutCodeOptions struct {
	framework string
	check     bool
}

func newLayoutCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Work with exported builder layouts",
	}
	cmd.AddCommand(newLayoutCodeCmd(app))
	return cmd
}

func newLayoutCodeCmd(app *appContext) *cobra.Command {
	opts := &layoutCodeOptions{}

	cmd := &cobra.Command{
		Use:   "code <layout.json>",
		Short: "Generate framework code from an exported layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			framework := builder.ParseFramework(firstNonEmpty(opts.framework, app.config.Framework))
			return runLayoutCode(cmd.OutOrStdout(), cmd.ErrOrStderr(), app, args[0], framework, opts.check)
		},
	}

	cmd.Flags().StringVar(&opts.framework, "framework", "", "react, nextjs, typescript, html or blazor (default react)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Syntax-check the generated code and fail on errors")

	return cmd
}

func runLayoutCode(out, errOut io.Writer, app *appContext, path string, framework builder.Framework, check bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read layout: %w", err)
	}

	b := builder.New(builder.WithLogger(app.logger))
	if err := b.ImportLayout(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	code := b.GenerateCode(framework)
	fmt.Fprint(out, code)

	if !check {
		return nil
	}

	manager := parser.NewManager(app.logger)
	defer manager.Close()
	result, err := parser.NewChecker(manager, app.logger).Check(code, framework)
	if err != nil {
		return err
	}
	if !result.Supported {
		fmt.Fprintf(errOut, "%s\n", mutedStyle.Render(fmt.Sprintf("no syntax check for %s", framework)))
		return nil
	}
	for _, issue := range result.Issues {
		fmt.Fprintf(errOut, "%s:%d:%d: %s %s\n", path, issue.Line, issue.Column, failStyle.Render(issue.Kind), issue.Text)
	}
	if !result.Valid {
		return fmt.Errorf("generated %s code has %d syntax issue(s)", framework, len(result.Issues))
	}
	fmt.Fprintf(errOut, "%s %s, %d component(s)\n", passStyle.Render("ok"), result.Grammar, len(result.Components))
	return nil
}
