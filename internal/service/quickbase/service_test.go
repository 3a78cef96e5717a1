package quickbase

import (
	"CallRelay/entity"
	"CallRelay/internal/config"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc, appToken string) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &config.Config{}
	conf.QuickBase.BaseURL = srv.URL
	conf.QuickBase.Realm = "example.quickbase.com"
	conf.QuickBase.UserToken = "b1234_token"
	conf.QuickBase.AppToken = appToken
	conf.QuickBase.TableID = "bsc9dxrdu"

	return NewQuickBaseService(conf, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateRecord(t *testing.T) {
	var gotHeaders http.Header
	var gotBody entity.QuickBaseInsert
	calls := 0

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/records", r.URL.Path)
		gotHeaders = r.Header.Clone()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"metadata":{"createdRecordIds":[42]}}`))
	}, "")

	record := entity.QuickBaseRecord{
		"92":  {Value: "Ana"},
		"93":  {Value: ""},
		"109": {Value: "(555) 123-4567"},
	}

	body, err := svc.CreateRecord(context.Background(), "sub-1", record)
	require.NoError(t, err)
	assert.JSONEq(t, `{"metadata":{"createdRecordIds":[42]}}`, string(body))
	assert.Equal(t, 1, calls)

	assert.Equal(t, "example.quickbase.com", gotHeaders.Get("QB-Realm-Hostname"))
	assert.Equal(t, "QB-USER-TOKEN b1234_token", gotHeaders.Get("Authorization"))
	assert.Contains(t, gotHeaders.Get("Content-Type"), "application/json")
	assert.Empty(t, gotHeaders.Get("QB-App-Token"))

	assert.Equal(t, "bsc9dxrdu", gotBody.To)
	require.Len(t, gotBody.Data, 1)
	assert.Equal(t, entity.QuickBaseRecord{
		"92":  {Value: "Ana"},
		"109": {Value: "(555) 123-4567"},
	}, gotBody.Data[0])
}

func TestCreateRecord_AppToken(t *testing.T) {
	var appToken string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		appToken = r.Header.Get("QB-App-Token")
		_, _ = w.Write([]byte(`{}`))
	}, "app_token")

	_, err := svc.CreateRecord(context.Background(), "sub-2", entity.QuickBaseRecord{"92": {Value: "Ana"}})
	require.NoError(t, err)
	assert.Equal(t, "app_token", appToken)
}

func TestCreateRecord_DownstreamError(t *testing.T) {
	calls := 0
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Access denied","description":"User token is invalid"}`))
	}, "")

	body, err := svc.CreateRecord(context.Background(), "sub-3", entity.QuickBaseRecord{"92": {Value: "Ana"}})
	require.Error(t, err)
	assert.Nil(t, body)
	assert.Equal(t, 1, calls, "no retries")

	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusUnauthorized, respErr.Status)
	assert.JSONEq(t, `{"message":"Access denied","description":"User token is invalid"}`, string(respErr.ResponseBody()))
}

func TestCreateRecord_TransportError(t *testing.T) {
	conf := &config.Config{}
	conf.QuickBase.BaseURL = "http://127.0.0.1:1"
	conf.QuickBase.TableID = "bsc9dxrdu"
	svc := NewQuickBaseService(conf, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.CreateRecord(context.Background(), "sub-4", entity.QuickBaseRecord{"92": {Value: "Ana"}})
	require.Error(t, err)

	var respErr *ResponseError
	assert.False(t, errors.As(err, &respErr))
	assert.Contains(t, err.Error(), "send request")
}
