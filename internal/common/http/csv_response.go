package http

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CSVSuccessResponse streams rows as a CSV attachment.
func CSVSuccessResponse(c echo.Context, fileName string, rows [][]string) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment;filename=%s", fileName))
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv response: %w", err)
	}

	return nil
}

// WantsCSV reports whether the client asked for text/csv, by query or Accept header.
func WantsCSV(c echo.Context) bool {
	if c.QueryParam("format") == "csv" {
		return true
	}
	return c.Request().Header.Get(echo.HeaderAccept) == "text/csv"
}
