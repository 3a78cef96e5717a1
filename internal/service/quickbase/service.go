// Package quickbase creates records through the QuickBase JSON API.
package quickbase

import (
	"CallRelay/internal/config"
	"CallRelay/internal/lib/sl"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

const recordsPath = "/v1/records"

type Service struct {
	client  *resty.Client
	tableID string
	log     *slog.Logger
}

func NewQuickBaseService(conf *config.Config, logger *slog.Logger) *Service {
	client := resty.New().
		SetBaseURL(conf.QuickBase.BaseURL).
		SetHeader("QB-Realm-Hostname", conf.QuickBase.Realm).
		SetHeader("Authorization", "QB-USER-TOKEN "+conf.QuickBase.UserToken).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)
	if conf.QuickBase.AppToken != "" {
		client.SetHeader("QB-App-Token", conf.QuickBase.AppToken)
	}
	if conf.QuickBase.Timeout > 0 {
		client.SetTimeout(conf.QuickBase.Timeout)
	}

	return &Service{
		client:  client,
		tableID: conf.QuickBase.TableID,
		log:     logger.With(sl.Module("quickbase service")),
	}
}

// ResponseError is a non-2xx answer from QuickBase.
type ResponseError struct {
	Status int
	Body   []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("quickbase responded with %d: %s", e.Status, string(e.Body))
}

func (e *ResponseError) ResponseBody() []byte {
	return e.Body
}
