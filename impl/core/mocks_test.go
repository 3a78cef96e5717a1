package core

import (
	"CallRelay/entity"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockQuickBase struct {
	mock.Mock
}

func (m *MockQuickBase) CreateRecord(ctx context.Context, submissionID string, record entity.QuickBaseRecord) ([]byte, error) {
	args := m.Called(ctx, submissionID, record)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}

type countingMetrics struct {
	outcomes  map[string]int
	durations int
}

func (m *countingMetrics) Outcome(outcome string) {
	if m.outcomes == nil {
		m.outcomes = make(map[string]int)
	}
	m.outcomes[outcome]++
}

func (m *countingMetrics) ForwardDuration(time.Duration) {
	m.durations++
}

// fixedNow is 2024-03-05 21:04:05 UTC, 1:04:05 PM in Los Angeles.
var fixedNow = time.Date(2024, time.March, 5, 21, 4, 5, 0, time.UTC)

func newTestCore(qb QuickBaseService) *Core {
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.SetTrigger("Cita Spanish")
	c.SetQuickBaseService(qb)
	c.now = func() time.Time { return fixedNow }
	return c
}
