package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"artificer/internal/app"
)

type planOptions struct {
	Platform  string
	OutputDir string
	Project   string
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Assemble the build plan for a target platform",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Target platform (e.g. aarch64-darwin)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().StringVar(&opts.Project, "project", "dev", "Project name for the development environment")

	_ = viper.BindPFlag("platform", cmd.Flags().Lookup("platform"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))

	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service := newAppService()
	result, err := service.Compose(ctx, app.ComposeRequest{
		Platform:  resolveString(cmd, opts.Platform, "platform", "platform"),
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
		Project:   resolveString(cmd, opts.Project, "project", "project"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("planned: %s (%s), %d artifacts -> %s\n",
		result.Project, result.Platform, result.Artifacts, result.OutputDir)
	return nil
}
