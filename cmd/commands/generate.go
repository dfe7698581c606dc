package commands

import (
	"fmt"

	"mario-graph/internal/clients_api/github"
	"mario-graph/internal/clients_api/telegram"
	"mario-graph/internal/config"
	"mario-graph/internal/features/generate"
	"mario-graph/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	// Token is checked before logs are opened or any request is made.
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := log.Init(cfg.App.LogsDir); err != nil {
		return err
	}

	log.LogInfo("Starting contribution graph generation",
		zap.String("user", cfg.GitHub.User),
		zap.Int("window", cfg.Chart.Window),
		zap.String("output", cfg.Output.Path))

	client := github.NewClient(github.Options{
		Endpoint:   cfg.GitHub.Endpoint,
		Token:      cfg.GitHub.Token,
		Timeout:    cfg.GitHub.Timeout(),
		MaxRetries: cfg.GitHub.MaxRetries,
	})

	deps := generate.Deps{Source: client}
	if cfg.Telegram.Enabled() {
		publisher, err := telegram.NewPublisher(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.LogError("Failed to set up Telegram publishing", zap.Error(err))
			return err
		}
		deps.Publisher = publisher
	}

	res, err := generate.Run(cmd.Context(), generate.Options{
		Login:       cfg.GitHub.User,
		Window:      cfg.Chart.Window,
		OutputPath:  cfg.Output.Path,
		PreviewPath: cfg.Output.PreviewPath,
	}, deps)
	if err != nil {
		log.LogError("Failed to generate contribution graph", zap.Error(err))
		return err
	}

	reportResult(res)
	return nil
}

func reportResult(res *generate.Result) {
	log.LogSuccess(fmt.Sprintf("%s created", res.OutputPath), zap.Int("days", res.Days))
	if res.PreviewPath != "" {
		log.LogSuccess(fmt.Sprintf("%s created", res.PreviewPath))
	}
}
