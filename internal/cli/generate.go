package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moldgen/mold/internal/generator"
	"github.com/moldgen/mold/internal/manifest"
	"github.com/moldgen/mold/internal/template"
	"github.com/moldgen/mold/pkg/version"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"g"},
	Short:   "Generate code into an existing project",
	Long: `Generate code into the project in the current directory.

Generation is idempotent: re-running a generator that already ran
reports "skipped" and leaves every file byte-identical.`,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(newResourceCmd())
	generateCmd.AddCommand(newAuthCmd())
}

func newResourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource <name>",
		Short: "Generate a CRUD resource",
		Long: `Generate a CRUD resource: model, handler, and route files under
internal/<name>/, wired into the shared route table.

Example:
  mold generate resource post`,
		Args: cobra.ExactArgs(1),
		RunE: runResource,
	}
	cmd.Flags().Bool("force", false, "Regenerate even if the resource already exists")
	return cmd
}

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Generate JWT authentication",
		Long: `Generate JWT authentication middleware and install it on the server.

The middleware reads its signing secret from the ` + "`MOLD_JWT_SECRET`" + `
environment variable at startup; no secret is written into source.`,
		Args: cobra.NoArgs,
		RunE: runAuth,
	}
	cmd.Flags().Bool("force", false, "Regenerate even if auth is already enabled")
	return cmd
}

// newGenerator builds a Generator rooted at the working directory.
func newGenerator() (*generator.Generator, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}
	fsys, err := template.Embedded()
	if err != nil {
		return nil, "", fmt.Errorf("load embedded templates: %w", err)
	}
	g := generator.New(manifest.NewStore(nil), template.NewRenderer(fsys), version.GetVersion(), nil)
	return g, cwd, nil
}

func runResource(cmd *cobra.Command, args []string) error {
	g, cwd, err := newGenerator()
	if err != nil {
		return err
	}

	res, err := g.Resource(cwd, args[0], getBoolFlag(cmd, "force"))
	if err != nil {
		return err
	}
	printGenerateResult(cmd, "Resource "+res.Name, res)
	return nil
}

func runAuth(cmd *cobra.Command, _ []string) error {
	g, cwd, err := newGenerator()
	if err != nil {
		return err
	}

	res, err := g.Auth(cwd, getBoolFlag(cmd, "force"))
	if err != nil {
		return err
	}
	printGenerateResult(cmd, "Auth", res)
	return nil
}

func printGenerateResult(cmd *cobra.Command, title string, res *generator.Result) {
	out := cmd.OutOrStdout()

	if res.Outcome == generator.OutcomeSkipped {
		_, _ = fmt.Fprintln(out, cliWarn.Render("skipped")+" "+title+" is already generated (use --force to regenerate)")
		return
	}

	var pairs []kvPair
	for _, f := range res.CreatedFiles {
		pairs = append(pairs, kvPair{"create", f})
	}
	for _, f := range res.MutatedFiles {
		pairs = append(pairs, kvPair{"update", f})
	}
	_, _ = fmt.Fprintln(out, renderSuccessCard(title+" generated", renderKeyValueLines(pairs)))
}
