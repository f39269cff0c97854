package models

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorDetail_HTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
		wantClient bool
	}{
		{name: "not found", code: "404001", wantStatus: http.StatusNotFound, wantClient: true},
		{name: "unprocessable", code: "422001", wantStatus: http.StatusUnprocessableEntity, wantClient: true},
		{name: "internal", code: "500001", wantStatus: http.StatusInternalServerError},
		{name: "not numeric", code: "UNKNOW", wantStatus: http.StatusInternalServerError},
		{name: "too short", code: "99", wantStatus: http.StatusInternalServerError},
		{name: "unknown status", code: "499001", wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ErrorDetail{Code: tt.code, ErrorMessage: errors.New("x")}
			assert.Equal(t, tt.wantStatus, e.HTTPStatus())
			assert.Equal(t, tt.wantClient, e.IsClientError())
		})
	}
}

func TestGetErrMap(t *testing.T) {
	got := GetErrMap(ErrKeyCustomerNotFound)
	assert.Equal(t, http.StatusNotFound, got.HTTPStatus())
	assert.NotEmpty(t, got.ErrorMessage)
}
