package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/moldgen/mold/internal/manifest"
	"github.com/moldgen/mold/internal/scaffold"
	"github.com/moldgen/mold/internal/template"
	"github.com/moldgen/mold/internal/ui"
	"github.com/moldgen/mold/pkg/version"
)

var newCmd = &cobra.Command{
	Use:   "new <project>",
	Short: "Create a new project",
	Long: `Create a new project directory from the embedded templates.

The generated service uses Gin, listens on the configured port, and
carries the marker comments later generate commands insert into.

Examples:
  mold new blogapi
  mold new blogapi --module github.com/acme/blogapi --port 9090`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("module", "", "Go module path of the generated service (default: project name)")
	newCmd.Flags().String("name", "", "Project name (default: directory base name)")
	newCmd.Flags().Int("port", 8080, "HTTP listen port of the generated service")
	newCmd.Flags().Bool("force", false, "Overwrite files that already exist in the target directory")
	newCmd.Flags().Bool("non-interactive", false, "Never prompt; use flags and defaults")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

func runNew(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve project path %q: %w", args[0], err)
	}

	name := getStringFlag(cmd, "name")
	if name == "" {
		name = filepath.Base(dir)
	}

	module := getStringFlag(cmd, "module")
	if module == "" {
		module, err = promptModule(cmd, name)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Cancelled.")
				return nil
			}
			return err
		}
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return err
	}

	fsys, err := template.Embedded()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}
	renderer := template.NewRenderer(fsys)
	store := manifest.NewStore(nil)
	sc := scaffold.New(fsys, renderer, store, nil)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	spin := ui.StartSpinner(cmd.OutOrStdout(), "Creating "+name)
	result, err := sc.Scaffold(ctx, scaffold.Options{
		Dir:     dir,
		Name:    name,
		Module:  module,
		Port:    port,
		Version: version.GetVersion(),
		Force:   getBoolFlag(cmd, "force"),
	})
	spin.Stop()
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Module", module},
			{"Port", fmt.Sprintf("%d", port)},
			{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
		}),
		"",
		cliMuted.Render("Next: cd " + args[0] + " && go mod tidy && go run ."),
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Project "+name+" created", details...))
	return nil
}

// promptModule asks for the module path on a terminal; otherwise the project
// name doubles as the module path.
func promptModule(cmd *cobra.Command, name string) (string, error) {
	if getBoolFlag(cmd, "non-interactive") || !isatty.IsTerminal(os.Stdin.Fd()) {
		return name, nil
	}

	module := name
	input := huh.NewInput().
		Title("Module path").
		Description("Go module path of the generated service").
		Placeholder(name).
		Value(&module)
	if err := huh.NewForm(huh.NewGroup(input)).WithAccessible(false).Run(); err != nil {
		return "", err
	}
	if module == "" {
		module = name
	}
	return module, nil
}
