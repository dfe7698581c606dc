package github

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mario-graph/internal/infra/log"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

const contributionsQuery = `
query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

const weeksPath = "data.user.contributionsCollection.contributionCalendar.weeks"

// ErrNoContributionData means the response had no calendar, e.g. an unknown login.
var ErrNoContributionData = errors.New("no contribution data in response")

// ContributionDay is one calendar day as returned by GitHub.
type ContributionDay struct {
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
}

// GraphQLError is a response carrying a top-level "errors" member.
// Detail holds the error array pretty-printed as received.
type GraphQLError struct {
	Messages []string
	Detail   string
}

func (e *GraphQLError) Error() string {
	if e.Detail == "" {
		return "GraphQL error: " + strings.Join(e.Messages, "; ")
	}
	return "GraphQL error\n" + e.Detail
}

// ContributionDays fetches the last year of contribution days for login,
// flattened from weekly groups into one chronological slice.
func (c *Client) ContributionDays(ctx context.Context, login string) ([]ContributionDay, error) {
	body, err := c.Query(ctx, contributionsQuery, map[string]interface{}{"login": login})
	if err != nil {
		return nil, fmt.Errorf("contributions query failed: %w", err)
	}
	return parseContributionDays(body)
}

func parseContributionDays(body []byte) ([]ContributionDay, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON in GraphQL response")
	}

	if errs := gjson.GetBytes(body, "errors"); errs.Exists() && errs.Type != gjson.Null {
		gqlErr := &GraphQLError{
			Detail: strings.TrimSpace(string(pretty.Pretty([]byte(errs.Raw)))),
		}
		for _, m := range errs.Get("#.message").Array() {
			gqlErr.Messages = append(gqlErr.Messages, m.String())
		}
		log.LogError("GraphQL error", zap.Strings("messages", gqlErr.Messages))
		return nil, gqlErr
	}

	weeks := gjson.GetBytes(body, weeksPath)
	if !weeks.IsArray() {
		return nil, ErrNoContributionData
	}

	var days []ContributionDay
	weeks.ForEach(func(_, week gjson.Result) bool {
		week.Get("contributionDays").ForEach(func(_, day gjson.Result) bool {
			days = append(days, ContributionDay{
				Date:              day.Get("date").String(),
				ContributionCount: int(day.Get("contributionCount").Int()),
			})
			return true
		})
		return true
	})

	log.LogDebug("Parsed contribution calendar",
		zap.Int("weeks", len(weeks.Array())),
		zap.Int("days", len(days)))

	return days, nil
}
