package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lockstep/internal/app"
	"lockstep/internal/types"
)

type queryOptions struct {
	Lock   string
	Engine string
	Name   string
	Range  string
}

func newQueryCommand() *cobra.Command {
	opts := queryOptions{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Look one package up by name and optional range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Lock, "lock", "", "Lock file path")
	cmd.Flags().StringVar(&opts.Engine, "engine", "semver", "Range engine (semver, pep440, deb)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Package name")
	cmd.Flags().StringVar(&opts.Range, "range", "", "Range the version must satisfy")
	_ = viper.BindPFlag("lock", cmd.Flags().Lookup("lock"))
	_ = viper.BindPFlag("engine", cmd.Flags().Lookup("engine"))
	return cmd
}

func runQuery(ctx context.Context, cmd *cobra.Command, opts queryOptions) error {
	service := newAppService()
	result, err := service.Query(ctx, app.QueryRequest{
		LockPath: resolveString(cmd, opts.Lock, "lock", "lock"),
		Engine:   types.RangeEngine(resolveString(cmd, opts.Engine, "engine", "engine")),
		Name:     opts.Name,
		Range:    opts.Range,
	})
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Printf("no package found for %s\n", opts.Name)
		return nil
	}

	fmt.Println(result.ID)
	if result.Resolved != "" {
		fmt.Printf("  resolved: %s\n", result.Resolved)
	}
	if result.Integrity != "" {
		fmt.Printf("  integrity: %s\n", result.Integrity)
	}
	if len(result.SatisfiedVersions) > 0 {
		fmt.Printf("  satisfies: %s\n", strings.Join(result.SatisfiedVersions, ", "))
	}
	if result.Depth != nil {
		fmt.Printf("  depth: %d\n", *result.Depth)
	}
	if len(result.Dependencies) > 0 {
		fmt.Printf("  dependencies: %s\n", strings.Join(result.Dependencies, ", "))
	}
	if len(result.Dependants) > 0 {
		fmt.Printf("  dependants: %s\n", strings.Join(result.Dependants, ", "))
	}
	return nil
}
