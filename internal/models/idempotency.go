package models

import (
	"crypto/sha1"
	"encoding/hex"
	"time"
)

const (
	IdempotencyStatusProcessFinished = "finished"
	IdempotencyStatusProcessPending  = "pending"

	TTLIdempotency = 24 * time.Hour

	// TTLStorefrontEvent outlives the storefront's own redelivery window.
	TTLStorefrontEvent = 7 * 24 * time.Hour

	idempotencyKeyPrefix     = "locking-FP-"
	storefrontEventKeyPrefix = "storefront-order-"
)

// Idempotency is the cached state of one back-office write, keyed by the
// X-Idempotency-Key header. A finished entry replays the stored response.
type Idempotency struct {
	CacheKey      string `json:"cacheKey"`
	StatusProcess string `json:"status"`
	// Fingerprint is the sha1 of method, path and body, so a key reused for another request is rejected.
	Fingerprint     string            `json:"fingerprint"`
	HTTPStatusCode  int               `json:"httpStatusCode"`
	ResponseBody    string            `json:"responseBody"`
	ResponseHeaders map[string]string `json:"responseHeaders"`
}

// NewIdempotency starts a pending entry for key.
func NewIdempotency(key string, request []byte) *Idempotency {
	sum := sha1.Sum(request)

	return &Idempotency{
		CacheKey:      IdempotencyCacheKey(key),
		StatusProcess: IdempotencyStatusProcessPending,
		Fingerprint:   hex.EncodeToString(sum[:]),
	}
}

func IdempotencyCacheKey(key string) string {
	return idempotencyKeyPrefix + key
}

// StorefrontEventKey marks a storefront order event as seen by the consumer.
func StorefrontEventKey(eventID string) string {
	return storefrontEventKeyPrefix + eventID
}

func (i *Idempotency) IsPending() bool {
	return i.StatusProcess == IdempotencyStatusProcessPending
}

func (i *Idempotency) IsFinished() bool {
	return i.StatusProcess == IdempotencyStatusProcessFinished
}

// SameRequest reports whether other was built from the same method, path and body.
func (i *Idempotency) SameRequest(other *Idempotency) bool {
	return other != nil && i.Fingerprint == other.Fingerprint
}

// Finish stores the response that later requests with the same key replay.
func (i *Idempotency) Finish(httpStatusCode int, responseHeaders map[string]string, responseBody string) {
	i.HTTPStatusCode = httpStatusCode
	i.ResponseHeaders = responseHeaders
	i.ResponseBody = responseBody
	i.StatusProcess = IdempotencyStatusProcessFinished
}
