package models

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

// HTTPStatus reads the status from the first three digits of the code, e.g. 404001 is a 404.
// Codes that do not start with a known status are a 500.
func (e ErrorDetail) HTTPStatus() int {
	if len(e.Code) < 3 {
		return http.StatusInternalServerError
	}
	status, err := strconv.Atoi(e.Code[:3])
	if err != nil || http.StatusText(status) == "" {
		return http.StatusInternalServerError
	}
	return status
}

// IsClientError reports a rejected input, which retrying cannot fix.
func (e ErrorDetail) IsClientError() bool {
	status := e.HTTPStatus()
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
