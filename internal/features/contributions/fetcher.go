package contributions

import (
	"context"
	"fmt"
	"time"

	"mario-graph/internal/clients_api/github"
	"mario-graph/internal/infra/log"

	"go.uber.org/zap"
)

// Source returns a year of contribution days, oldest first.
// *github.Client satisfies it.
type Source interface {
	ContributionDays(ctx context.Context, login string) ([]github.ContributionDay, error)
}

// Fetch queries src once for login and keeps the last window days.
func Fetch(ctx context.Context, src Source, login string, window int) ([]DayRecord, error) {
	if login == "" {
		return nil, fmt.Errorf("account login cannot be empty")
	}
	if window <= 0 {
		window = DefaultWindow
	}

	startTime := time.Now()
	raw, err := src.ContributionDays(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contributions for %s: %w", login, err)
	}

	days := make([]DayRecord, 0, len(raw))
	for _, d := range raw {
		days = append(days, DayRecord{Date: d.Date, Count: d.ContributionCount})
	}
	days = Tail(days, window)

	log.LogInfo("Fetched contributions",
		zap.String("login", login),
		zap.Int("total_days", len(raw)),
		zap.Int("kept_days", len(days)),
		zap.Int64("duration_ms", time.Since(startTime).Milliseconds()))

	return days, nil
}
