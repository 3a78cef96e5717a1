package entity

import "encoding/json"

const (
	ActionSkipped = "skipped"
	ActionCreated = "created"
)

type CallOutcome struct {
	Action      string          `json:"action"`
	Disposition string          `json:"disposition"`
	Reason      string          `json:"reason,omitempty"`
	Response    json.RawMessage `json:"quickbase_response,omitempty"`
}

type ServiceStatus struct {
	Status             string `json:"status"`
	Service            string `json:"service"`
	DispositionTrigger string `json:"disposition_trigger"`
}
