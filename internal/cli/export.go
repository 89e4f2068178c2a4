package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lockstep/internal/app"
	"lockstep/internal/types"
)

type exportOptions struct {
	Lock      string
	Engine    string
	OutputDir string
	Formats   []string
}

func newExportCommand() *cobra.Command {
	opts := exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dependency graph to files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Lock, "lock", "", "Lock file path")
	cmd.Flags().StringVar(&opts.Engine, "engine", "semver", "Range engine (semver, pep440, deb)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().StringSliceVar(&opts.Formats, "format", []string{"json"}, "Export formats (json, yaml, dot)")
	_ = viper.BindPFlag("lock", cmd.Flags().Lookup("lock"))
	_ = viper.BindPFlag("engine", cmd.Flags().Lookup("engine"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("formats", cmd.Flags().Lookup("format"))
	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, opts exportOptions) error {
	outputDir := resolveString(cmd, opts.OutputDir, "output", "output")
	names := resolveStrings(cmd, opts.Formats, "formats", "format")
	formats := make([]types.ExportFormat, 0, len(names))
	for _, name := range names {
		formats = append(formats, types.ExportFormat(name))
	}

	service := newAppService()
	result, err := service.Export(ctx, app.ExportRequest{
		LockPath:  resolveString(cmd, opts.Lock, "lock", "lock"),
		Engine:    types.RangeEngine(resolveString(cmd, opts.Engine, "engine", "engine")),
		OutputDir: outputDir,
		Formats:   formats,
	})
	if err != nil {
		return err
	}
	for _, file := range result.Files {
		fmt.Printf("wrote %s\n", filepath.Join(outputDir, file))
	}
	return nil
}
