package contributions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mario-graph/internal/clients_api/github"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	days  []github.ContributionDay
	err   error
	calls int
	login string
}

func (s *stubSource) ContributionDays(_ context.Context, login string) ([]github.ContributionDay, error) {
	s.calls++
	s.login = login
	return s.days, s.err
}

func yearOfDays(n int) []github.ContributionDay {
	out := make([]github.ContributionDay, n)
	for i := range out {
		out[i] = github.ContributionDay{Date: fmt.Sprintf("day-%03d", i), ContributionCount: i % 5}
	}
	return out
}

func TestFetch_KeepsLastWindowInOrder(t *testing.T) {
	src := &stubSource{days: yearOfDays(365)}

	days, err := Fetch(context.Background(), src, "alice", DefaultWindow)
	require.NoError(t, err)

	require.Len(t, days, 70)
	assert.Equal(t, "day-295", days[0].Date)
	assert.Equal(t, "day-364", days[69].Date)
	for i := 1; i < len(days); i++ {
		assert.Less(t, days[i-1].Date, days[i].Date)
	}
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, "alice", src.login)
}

func TestFetch_ShortHistory(t *testing.T) {
	src := &stubSource{days: yearOfDays(3)}

	days, err := Fetch(context.Background(), src, "alice", 70)
	require.NoError(t, err)
	assert.Equal(t, []DayRecord{
		{Date: "day-000", Count: 0},
		{Date: "day-001", Count: 1},
		{Date: "day-002", Count: 2},
	}, days)
}

func TestFetch_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	src := &stubSource{err: boom}

	_, err := Fetch(context.Background(), src, "alice", 70)
	assert.ErrorIs(t, err, boom)
}

func TestFetch_EmptyLogin(t *testing.T) {
	src := &stubSource{}

	_, err := Fetch(context.Background(), src, "", 70)
	assert.Error(t, err)
	assert.Zero(t, src.calls)
}

func TestTail(t *testing.T) {
	days := []DayRecord{{"a", 1}, {"b", 2}, {"c", 3}}

	assert.Equal(t, []DayRecord{{"b", 2}, {"c", 3}}, Tail(days, 2))
	assert.Equal(t, days, Tail(days, 10))
	assert.Empty(t, Tail(days, 0))

	tail := Tail(days, 3)
	tail[0].Count = 99
	assert.Equal(t, 1, days[0].Count, "Tail must copy")
}

func TestMaxCount(t *testing.T) {
	assert.Equal(t, 1, MaxCount(nil))
	assert.Equal(t, 1, MaxCount([]DayRecord{{"a", 0}}))
	assert.Equal(t, 9, MaxCount([]DayRecord{{"a", 3}, {"b", 9}, {"c", 2}}))
}
