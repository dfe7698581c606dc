package generate

// One-shot pipeline: fetch contributions, render the SVG, write it,
// then optionally write a PNG preview and publish it

import (
	"context"
	"fmt"
	"time"

	"mario-graph/internal/features/contributions"
	"mario-graph/internal/features/mario_chart"
	"mario-graph/internal/infra/fs"
	"mario-graph/internal/infra/log"

	"go.uber.org/zap"
)

// DefaultOutputPath is where the SVG lands unless configured otherwise.
const DefaultOutputPath = "dist/mario-contribution-graph.svg"

// Publisher delivers a PNG preview somewhere outside the filesystem.
type Publisher interface {
	PublishChart(png []byte, caption string) error
}

type Options struct {
	Login       string
	Window      int
	OutputPath  string
	PreviewPath string // empty disables the PNG preview file
}

type Deps struct {
	Source    contributions.Source
	Publisher Publisher // optional
}

type Result struct {
	Days        int
	OutputPath  string
	PreviewPath string
	Published   bool
}

// Run fetches once and writes the artifacts. Nothing is written if the fetch fails.
func Run(ctx context.Context, opts Options, deps Deps) (*Result, error) {
	if deps.Source == nil {
		return nil, fmt.Errorf("contribution source is required")
	}

	days, err := contributions.Fetch(ctx, deps.Source, opts.Login, opts.Window)
	if err != nil {
		return nil, err
	}

	return Render(days, opts, deps.Publisher)
}

// Render writes artifacts for days that are already loaded.
func Render(days []contributions.DayRecord, opts Options, publisher Publisher) (*Result, error) {
	startTime := time.Now()
	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}

	if err := fs.WriteFileAtomic(outputPath, mario_chart.RenderSVG(days, opts.Login)); err != nil {
		return nil, fmt.Errorf("failed to write chart: %w", err)
	}

	result := &Result{Days: len(days), OutputPath: outputPath}

	log.LogInfo("Chart rendered",
		zap.String("file", outputPath),
		zap.Int("days", len(days)),
		zap.Int64("duration_ms", time.Since(startTime).Milliseconds()))

	if opts.PreviewPath == "" && publisher == nil {
		return result, nil
	}

	png, err := mario_chart.EncodePreviewPNG(days, opts.Login)
	if err != nil {
		return nil, err
	}

	if opts.PreviewPath != "" {
		if err := fs.WriteFileAtomic(opts.PreviewPath, png); err != nil {
			return nil, fmt.Errorf("failed to write preview: %w", err)
		}
		result.PreviewPath = opts.PreviewPath
	}

	if publisher != nil {
		if err := publisher.PublishChart(png, mario_chart.Footer(opts.Login)); err != nil {
			return nil, err
		}
		result.Published = true
	}

	return result, nil
}
