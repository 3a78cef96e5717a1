package core

import (
	"CallRelay/entity"
	"CallRelay/internal/lib/sl"
	"context"
	"log/slog"
	"time"
	_ "time/tzdata"
)

const (
	serviceName = "CallTools to QuickBase Webhook"
	notesZone   = "America/Los_Angeles"
)

type QuickBaseService interface {
	// CreateRecord inserts one row and returns the raw QuickBase response
	CreateRecord(ctx context.Context, submissionID string, record entity.QuickBaseRecord) ([]byte, error)
}

type Metrics interface {
	Outcome(outcome string)
	ForwardDuration(d time.Duration)
}

type Core struct {
	trigger   string
	quickBase QuickBaseService
	metrics   Metrics
	notesLoc  *time.Location
	now       func() time.Time
	log       *slog.Logger
}

func New(log *slog.Logger) *Core {
	loc, err := time.LoadLocation(notesZone)
	if err != nil {
		log.With(sl.Err(err)).Warn("load notes time zone")
		loc = time.FixedZone("PST", -8*60*60)
	}
	return &Core{
		notesLoc: loc,
		now:      time.Now,
		log:      log.With(sl.Module("core")),
	}
}

func (c *Core) SetTrigger(disposition string) {
	c.trigger = disposition
}

func (c *Core) SetQuickBaseService(qb QuickBaseService) {
	c.quickBase = qb
}

func (c *Core) SetMetrics(m Metrics) {
	c.metrics = m
}

func (c *Core) Status() entity.ServiceStatus {
	return entity.ServiceStatus{
		Status:             "ok",
		Service:            serviceName,
		DispositionTrigger: c.trigger,
	}
}

func (c *Core) outcome(outcome string) {
	if c.metrics != nil {
		c.metrics.Outcome(outcome)
	}
}
