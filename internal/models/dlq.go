package models

import (
	"time"
)

// FailedMessage is what a consumer parks on its dead letter topic. The origin
// fields let an operator replay it onto the topic it came from.
type FailedMessage struct {
	Key       string    `json:"key,omitempty"`
	Payload   []byte    `json:"payload"`
	Timestamp time.Time `json:"timestamp"`

	OriginTopic     string    `json:"originTopic,omitempty"`
	OriginPartition int32     `json:"originPartition"`
	OriginOffset    int64     `json:"originOffset"`
	FailedAt        time.Time `json:"failedAt"`

	CauseError error  `json:"-"`
	Error      string `json:"error"`
}

// Sealed fills the error text and failure time that are derived at publish time.
func (m FailedMessage) Sealed(now time.Time) FailedMessage {
	if m.CauseError != nil && m.Error == "" {
		m.Error = m.CauseError.Error()
	}
	if m.FailedAt.IsZero() {
		m.FailedAt = now
	}
	return m
}
