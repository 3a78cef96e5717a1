package response

import (
	"encoding/json"
	"errors"
)

type Response struct {
	Success           bool            `json:"success"`
	Action            string          `json:"action,omitempty"`
	Reason            string          `json:"reason,omitempty"`
	QuickBaseResponse json.RawMessage `json:"quickbase_response,omitempty"`
	Error             any             `json:"error,omitempty"`
}

// BodyError is implemented by errors that carry a downstream response body.
type BodyError interface {
	error
	ResponseBody() []byte
}

func Ok(body []byte) Response {
	return Response{
		Success:           true,
		QuickBaseResponse: downstream(body),
	}
}

func Skipped(reason string) Response {
	return Response{
		Success: true,
		Action:  "skipped",
		Reason:  reason,
	}
}

func Created(body []byte) Response {
	return Response{
		Success:           true,
		Action:            "created",
		QuickBaseResponse: downstream(body),
	}
}

func Error(message string) Response {
	return Response{
		Success: false,
		Error:   message,
	}
}

// Failure reports the downstream body when err carries one, the message otherwise.
func Failure(err error) Response {
	var bodyErr BodyError
	if errors.As(err, &bodyErr) && len(bodyErr.ResponseBody()) > 0 {
		return Response{
			Success: false,
			Error:   Opaque(bodyErr.ResponseBody()),
		}
	}
	return Error(err.Error())
}

// Opaque passes JSON through untouched and quotes anything else.
func Opaque(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return body
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}

var jsonNull = json.RawMessage("null")

// downstream keeps quickbase_response in the output even for an empty body.
func downstream(body []byte) json.RawMessage {
	if raw := Opaque(body); raw != nil {
		return raw
	}
	return jsonNull
}
