package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Flags
	templateDir string
	targetDir   string
	extensions  []string
	filenames   []string
	verbose     bool
	dryRun      bool
	jsonOutput  bool
	configPath  string

	// Colors for help output sections
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for skeletor.
var rootCmd = &cobra.Command{
	Use:     "skeletor NAME -t TEMPLATE",
	Version: "dev",
	Short:   "Copy a project layout template into a new project",
	Long: `skeletor copies a project layout template into the specified directory.

Every "project_name" in file and directory names is replaced with NAME.
Files selected with --extension or --filename are rendered as templates with
{{ project_name }} available; all other files are copied unchanged.
Existing files are never overwritten.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runScaffold,
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors section titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableLocalFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	flags := rootCmd.Flags()
	flags.StringVarP(&templateDir, "template", "t", "", "Path to the template directory")
	flags.StringVarP(&targetDir, "directory", "d", "", "The directory where the template should be copied into.\nDefaults to a new directory named after the project in the current directory")
	flags.StringArrayVarP(&extensions, "extension", "e", nil, "File extension to render (repeatable)")
	flags.StringArrayVarP(&filenames, "filename", "f", nil, "File name to render (repeatable)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	flags.BoolVar(&dryRun, "dry-run", false, "Show what would be created without writing anything")
	flags.BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	flags.StringVar(&configPath, "config", "", "Path to the config file (default: $SKELETOR_ROOT/config.yaml)")

	_ = rootCmd.MarkFlagRequired("template")
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
