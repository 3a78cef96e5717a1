package test_record

import (
	"CallRelay/entity"
	"context"
)

type Core interface {
	CreateTestRecord(ctx context.Context, event *entity.CallEvent) ([]byte, error)
}
