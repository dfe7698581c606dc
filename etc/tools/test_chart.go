package main

import (
	"fmt"
	"os"

	"mario-graph/internal/features/contributions"
	"mario-graph/internal/features/generate"
)

// go run etc/tools/test_chart.go
// Writes etc/charts/sample.svg and etc/charts/sample.png from synthetic data, no token needed.
func main() {
	fmt.Println("Generating sample chart...")

	days := make([]contributions.DayRecord, contributions.DefaultWindow)
	for i := range days {
		days[i] = contributions.DayRecord{
			Date:  fmt.Sprintf("day %02d", i+1),
			Count: (i * 7) % 11,
		}
	}

	res, err := generate.Render(days, generate.Options{
		Login:       "sample",
		OutputPath:  "etc/charts/sample.svg",
		PreviewPath: "etc/charts/sample.png",
	}, nil)
	if err != nil {
		fmt.Printf("Error generating chart: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Chart generated successfully: %s (preview %s)\n", res.OutputPath, res.PreviewPath)
}
