package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/skeletor/internal/engine"
	"github.com/danieljhkim/skeletor/internal/render"
)

func runScaffold(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.MergeFlags(extensions, filenames, verbose)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	eng := newEngine(logger)

	req := &engine.ScaffoldRequest{
		Name:            args[0],
		TemplateDir:     templateDir,
		TargetDir:       targetDir,
		CWD:             cwd,
		Rule:            render.NewRule(cfg.Extensions, cfg.Filenames),
		ExcludeSuffixes: cfg.ExcludeSuffixes,
		DryRun:          dryRun,
	}

	result, err := eng.Scaffold(req)

	if jsonOutput && result != nil {
		if jerr := outputJSON(cmd.OutOrStdout(), result); jerr != nil {
			return jerr
		}
		return err
	}

	if err != nil {
		if result != nil && len(result.Conflicts) > 0 {
			out := cmd.ErrOrStderr()
			PrintSection(out, "Conflicts Detected")
			for _, conflict := range result.Conflicts {
				PrintError(out, fmt.Sprintf("%s: %s", conflict.Path, conflict.Reason))
			}
			fmt.Fprintln(out)
		}
		return err
	}

	if result.DryRun {
		printDryRun(cmd, result)
		return nil
	}

	if cfg.Verbose {
		PrintSuccess(cmd.ErrOrStderr(), fmt.Sprintf("Created %s in %s",
			PrintCount(result.FileCount(), "file", "files"), result.TargetRoot))
	}
	return nil
}

func printDryRun(cmd *cobra.Command, result *engine.ScaffoldResult) {
	out := cmd.OutOrStdout()

	PrintSection(out, "Dry Run")
	PrintLabelValue(out, "Template", result.TemplateRoot)
	PrintLabelValue(out, "Target", result.TargetRoot)
	if targetDir == "" {
		PrintWarning(out, "Target directory would be created")
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Would apply %s\n", PrintCount(len(result.Operations), "operation", "operations"))
	if len(result.Operations) == 0 {
		return
	}

	ops := make([]string, 0, len(result.Operations))
	for _, op := range result.Operations {
		ops = append(ops, fmt.Sprintf("%s: %s", op.Type, op.RelPath))
	}
	PrintList(out, ops, 1)
}
