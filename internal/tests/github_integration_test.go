//go:build integration

package tests

import (
	"context"
	"os"
	"testing"
	"time"

	"mario-graph/internal/clients_api/github"
	"mario-graph/internal/features/contributions"
)

// TestIntegration_GitHub_ContributionDays hits the real GraphQL API.
// Needs GITHUB_TOKEN; GITHUB_USER_NAME defaults to "octocat".
func TestIntegration_GitHub_ContributionDays(t *testing.T) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		t.Skip("GITHUB_TOKEN is not set; cannot run GitHub integration test")
	}
	login := os.Getenv("GITHUB_USER_NAME")
	if login == "" {
		login = "octocat"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	c := github.NewClient(github.Options{Token: token, Timeout: 30 * time.Second})

	days, err := contributions.Fetch(ctx, c, login, contributions.DefaultWindow)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(days) != contributions.DefaultWindow {
		t.Fatalf("expected %d days, got %d", contributions.DefaultWindow, len(days))
	}
	for i := 1; i < len(days); i++ {
		if days[i-1].Date >= days[i].Date {
			t.Fatalf("days out of order at %d: %s >= %s", i, days[i-1].Date, days[i].Date)
		}
	}
}

func TestIntegration_GitHub_UnknownUser(t *testing.T) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		t.Skip("GITHUB_TOKEN is not set; cannot run GitHub integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	c := github.NewClient(github.Options{Token: token, Timeout: 30 * time.Second})
	if _, err := c.ContributionDays(ctx, "this-user-should-not-exist-0000000000000"); err == nil {
		t.Fatalf("expected an error for an unknown login")
	}
}
