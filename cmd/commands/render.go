package commands

// Offline rendering from a JSON file of day records, no token or network needed

import (
	"fmt"

	"mario-graph/internal/config"
	"mario-graph/internal/features/contributions"
	"mario-graph/internal/features/generate"
	"mario-graph/internal/infra/fs"
	"mario-graph/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the SVG from a local JSON file",
		Long: `Render the contribution graph from a file shaped [{"date":"2024-01-01","count":3}, ...].
The last --window records are used. No GitHub token is required.`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}

	flags := renderCmd.Flags()
	flags.String("input", "", "JSON file with day records (required)")
	flags.String("user", "your-username", "Login shown in the footer (env: GITHUB_USER_NAME)")
	flags.Int("window", contributions.DefaultWindow, "Number of most recent days to chart (env: CHART_WINDOW)")
	flags.String("logs-dir", "logs", "Directory for app.log (env: APP_LOGS_DIR)")
	config.RegisterOutputFlags(flags)
	_ = renderCmd.MarkFlagRequired("input")
	return renderCmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.ValidateOffline(); err != nil {
		return err
	}
	if err := log.Init(cfg.App.LogsDir); err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")

	var days []contributions.DayRecord
	if err := fs.LoadJSON(input, &days); err != nil {
		log.LogError("Failed to load day records", zap.String("input", input), zap.Error(err))
		return err
	}
	for _, d := range days {
		if d.Count < 0 {
			return fmt.Errorf("negative count %d for %s in %s", d.Count, d.Date, input)
		}
	}
	days = contributions.Tail(days, cfg.Chart.Window)

	res, err := generate.Render(days, generate.Options{
		Login:       cfg.GitHub.User,
		Window:      cfg.Chart.Window,
		OutputPath:  cfg.Output.Path,
		PreviewPath: cfg.Output.PreviewPath,
	}, nil)
	if err != nil {
		log.LogError("Failed to render contribution graph", zap.Error(err))
		return err
	}

	reportResult(res)
	return nil
}
