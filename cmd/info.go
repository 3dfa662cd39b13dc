package cmd

import (
	"github.com/hance08/txengine/internal/config"
	"github.com/hance08/txengine/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
}

func NewInfoCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display the effective configuration after config file, environment and flags are merged.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: cfg,
			}

			return runner.Run(cmd)
		},
	}
}

func (r *infoRunner) Run(cmd *cobra.Command) error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	items := views.SystemInfoItem{
		ConfigPath:  configPath,
		ConfigFound: r.cfg.ConfigPath != "",
		BatchSize:   r.cfg.Engine.BatchSize,
		Format:      r.cfg.Output.Format,
		Summary:     r.cfg.Output.Summary,
		LogLevel:    r.cfg.Log.Level,
		MetricsFile: r.cfg.Metrics.File,
	}

	return views.RenderSystemInfo(cmd.OutOrStdout(), items)
}
