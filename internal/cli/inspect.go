package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lockstep/internal/app"
	"lockstep/internal/types"
)

type inspectOptions struct {
	Lock   string
	Engine string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the dependency graph of a lock file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Lock, "lock", "", "Lock file path")
	cmd.Flags().StringVar(&opts.Engine, "engine", "semver", "Range engine (semver, pep440, deb)")
	_ = viper.BindPFlag("lock", cmd.Flags().Lookup("lock"))
	_ = viper.BindPFlag("engine", cmd.Flags().Lookup("engine"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		LockPath: resolveString(cmd, opts.Lock, "lock", "lock"),
		Engine:   types.RangeEngine(resolveString(cmd, opts.Engine, "engine", "engine")),
	})
	if err != nil {
		return err
	}

	fmt.Printf("packages: %d\n", result.Packages)
	fmt.Printf("edges: %d\n", result.Edges)
	fmt.Printf("roots: %d\n", result.Roots)
	fmt.Printf("max depth: %d\n", result.MaxDepth)
	return nil
}
