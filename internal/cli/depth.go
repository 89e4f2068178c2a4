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

type depthOptions struct {
	Lock   string
	Engine string
	From   int
	To     int
	Roots  []string
}

func newDepthCommand() *cobra.Command {
	opts := depthOptions{}
	cmd := &cobra.Command{
		Use:   "depth",
		Short: "Group packages by hop distance from the roots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDepth(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Lock, "lock", "", "Lock file path")
	cmd.Flags().StringVar(&opts.Engine, "engine", "semver", "Range engine (semver, pep440, deb)")
	cmd.Flags().IntVar(&opts.From, "from", 0, "First depth to include")
	cmd.Flags().IntVar(&opts.To, "to", -1, "Depth to stop before (-1 = unbounded)")
	cmd.Flags().StringSliceVar(&opts.Roots, "root", nil, "Root package ids (name@version) to recompute depths from")
	_ = viper.BindPFlag("lock", cmd.Flags().Lookup("lock"))
	_ = viper.BindPFlag("engine", cmd.Flags().Lookup("engine"))
	_ = viper.BindPFlag("depth_from", cmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("depth_to", cmd.Flags().Lookup("to"))
	return cmd
}

func runDepth(ctx context.Context, cmd *cobra.Command, opts depthOptions) error {
	service := newAppService()
	result, err := service.Depth(ctx, app.DepthRequest{
		LockPath: resolveString(cmd, opts.Lock, "lock", "lock"),
		Engine:   types.RangeEngine(resolveString(cmd, opts.Engine, "engine", "engine")),
		From:     resolveInt(cmd, opts.From, "depth_from", "from"),
		To:       resolveInt(cmd, opts.To, "depth_to", "to"),
		Roots:    opts.Roots,
	})
	if err != nil {
		return err
	}

	for _, band := range result.Bands {
		fmt.Printf("depth %d: %s\n", band.Depth, strings.Join(band.Packages, ", "))
	}
	fmt.Printf("max depth: %d\n", result.MaxDepth)
	return nil
}
