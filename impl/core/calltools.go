package core

import (
	"CallRelay/entity"
	"CallRelay/internal/lib/metrics"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// sampleEvent stands in for an empty body on the test endpoint.
var sampleEvent = []byte(`{
	"first_name": "Test",
	"last_name": "User",
	"phone": "5551234567",
	"address": "123 Test St",
	"city": "Los Angeles",
	"state": "CA",
	"zip": "90001",
	"disposition": "Cita Spanish"
}`)

// Disposition returns the call outcome label of event, or "" if it has none.
func (c *Core) Disposition(event *entity.CallEvent) string {
	return event.Field(dispositionAliases...)
}

// Matches reports whether disposition equals the trigger, ignoring case.
// A blank disposition never matches.
func (c *Core) Matches(disposition string) bool {
	return disposition != "" && strings.EqualFold(disposition, c.trigger)
}

// HandleCallEvent forwards event to QuickBase when its disposition matches
// the trigger and skips it otherwise.
func (c *Core) HandleCallEvent(ctx context.Context, event *entity.CallEvent) (*entity.CallOutcome, error) {
	disposition := c.Disposition(event)
	log := c.log.With(slog.String("disposition", disposition))

	if !c.Matches(disposition) {
		reason := fmt.Sprintf("Disposition %q does not match target %q", disposition, c.trigger)
		log.With(slog.String("trigger", c.trigger)).Info("skipping call event")
		c.outcome(metrics.OutcomeSkipped)
		return &entity.CallOutcome{
			Action:      entity.ActionSkipped,
			Disposition: disposition,
			Reason:      reason,
		}, nil
	}

	log.Info("disposition matches, creating record")
	body, err := c.forward(ctx, event)
	if err != nil {
		return nil, err
	}

	return &entity.CallOutcome{
		Action:      entity.ActionCreated,
		Disposition: disposition,
		Response:    body,
	}, nil
}

// CreateTestRecord forwards event without checking the disposition. An empty
// event is replaced with a fixed sample lead.
func (c *Core) CreateTestRecord(ctx context.Context, event *entity.CallEvent) ([]byte, error) {
	if event == nil || event.IsEmpty() {
		event = entity.NewCallEvent(sampleEvent)
	}
	return c.forward(ctx, event)
}

func (c *Core) forward(ctx context.Context, event *entity.CallEvent) ([]byte, error) {
	if c.quickBase == nil {
		c.outcome(metrics.OutcomeFailed)
		return nil, fmt.Errorf("quickbase service not available")
	}

	submissionID := uuid.NewString()
	record := c.MapToQuickBase(event)

	t1 := time.Now()
	body, err := c.quickBase.CreateRecord(ctx, submissionID, record)
	if c.metrics != nil {
		c.metrics.ForwardDuration(time.Since(t1))
	}
	if err != nil {
		c.outcome(metrics.OutcomeFailed)
		return nil, fmt.Errorf("create record %s: %w", submissionID, err)
	}

	c.outcome(metrics.OutcomeCreated)
	return body, nil
}
