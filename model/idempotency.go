package model

import (
	"encoding/json"
	"time"
)

// PayloadKind declares how a request payload is encoded, so hashing has a
// precisely specified domain instead of an untyped blob.
type PayloadKind string

const (
	PayloadKindNone PayloadKind = "none"
	PayloadKindJSON PayloadKind = "json"
)

// Payload is a tagged request body.
type Payload struct {
	Kind PayloadKind     `json:"kind"`
	Data json.RawMessage `json:"data,omitempty"`
}

// JSONPayload wraps raw JSON bytes as a tagged payload.
func JSONPayload(data json.RawMessage) Payload {
	return Payload{Kind: PayloadKindJSON, Data: data}
}

// EmptyPayload is the payload of a bodyless request.
func EmptyPayload() Payload {
	return Payload{Kind: PayloadKindNone}
}

// IdempotencyRecord is one deduplicated operation, identified uniquely by
// (Key, Method, Path, ActorID). While ResponseStatus is nil the operation
// is in flight; once set, the record is terminal and replayed verbatim.
type IdempotencyRecord struct {
	Key            string          `json:"key"`
	Method         string          `json:"method"`
	Path           string          `json:"path"`
	ActorID        string          `json:"actor_id"`
	RequestHash    string          `json:"request_hash"`
	ResponseStatus *int32          `json:"response_status,omitempty"`
	ResponseBody   json.RawMessage `json:"response_body,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ExpiresAt      time.Time       `json:"expires_at"`
}

// InFlight reports whether the operation has not yet completed.
func (r IdempotencyRecord) InFlight() bool {
	return r.ResponseStatus == nil
}
