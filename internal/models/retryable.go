package models

import (
	"net/http"
)

// retryableHTTPCodes are upstream answers worth another attempt: overload,
// rate limiting and gateway failures.
var retryableHTTPCodes = map[int]struct{}{
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

func IsRetryableHTTPCode(code int) bool {
	_, ok := retryableHTTPCodes[code]
	return ok
}
