package models

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryableHTTPCode(t *testing.T) {
	for code, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusBadRequest:          false,
		http.StatusConflict:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
	} {
		assert.Equal(t, want, IsRetryableHTTPCode(code), http.StatusText(code))
	}
}
