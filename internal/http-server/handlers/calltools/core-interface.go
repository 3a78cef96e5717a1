package calltools

import (
	"CallRelay/entity"
	"context"
)

type Core interface {
	HandleCallEvent(ctx context.Context, event *entity.CallEvent) (*entity.CallOutcome, error)
}
