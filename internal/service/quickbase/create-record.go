package quickbase

import (
	"CallRelay/entity"
	"CallRelay/internal/lib/sl"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// CreateRecord drops empty fields from record and inserts it as a single row.
// The raw QuickBase response body is returned on success.
func (s *Service) CreateRecord(ctx context.Context, submissionID string, record entity.QuickBaseRecord) ([]byte, error) {
	log := s.log.With(
		slog.String("submission_id", submissionID),
		slog.String("table", s.tableID),
	)

	payload := entity.QuickBaseInsert{
		To:   s.tableID,
		Data: []entity.QuickBaseRecord{record.Compact()},
	}

	if body, err := json.Marshal(payload); err == nil {
		log.Debug("quickbase payload", slog.String("payload", string(body)))
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(recordsPath)
	if err != nil {
		log.With(sl.Err(err)).Warn("send request")
		return nil, fmt.Errorf("send request: %w", err)
	}

	if !resp.IsSuccess() {
		respErr := &ResponseError{Status: resp.StatusCode(), Body: resp.Body()}
		log.With(
			slog.Int("status", respErr.Status),
			sl.Err(respErr),
		).Warn("create record")
		return nil, respErr
	}

	log.With(
		slog.Int("status", resp.StatusCode()),
		slog.Int("fields", len(payload.Data[0])),
	).Info("record created")

	return resp.Body(), nil
}
