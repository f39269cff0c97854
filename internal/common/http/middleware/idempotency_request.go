package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/printhaus/go-shop-finance/internal/common"
	commonhttp "github.com/printhaus/go-shop-finance/internal/common/http"
	"github.com/printhaus/go-shop-finance/internal/models"
)

const HeaderIdempotencyKey = "X-Idempotency-Key"

func (m *AppMiddleware) CheckIdempotentRequest() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// only POST creates records
			if c.Request().Method != http.MethodPost {
				return next(c)
			}

			idempotencyKey := c.Request().Header.Get(HeaderIdempotencyKey)
			if idempotencyKey == "" {
				return commonhttp.RestErrorResponse(c, http.StatusBadRequest, common.ErrMissingIdempotencyKey)
			}

			ctx := c.Request().Context()

			body, err := readRequestBody(c.Request())
			if err != nil {
				return commonhttp.RestErrorResponse(c, http.StatusBadRequest, common.ErrReadRequestBody)
			}

			fingerprint := append([]byte(c.Request().Method+" "+c.Request().URL.Path+"\n"), body...)
			idm, err := m.getOrCreateIdempotency(ctx, idempotencyKey, fingerprint)
			if err != nil {
				switch {
				case errors.Is(err, common.ErrInvalidFingerprint):
					return commonhttp.RestErrorResponse(c, http.StatusUnprocessableEntity, err)
				case errors.Is(err, common.ErrRequestBeingProcessed):
					return commonhttp.RestErrorResponse(c, http.StatusConflict, err)
				default:
					return commonhttp.RestErrorResponse(c, http.StatusInternalServerError, err)
				}
			}

			if idm.IsFinished() {
				for k, v := range idm.ResponseHeaders {
					c.Response().Header().Set(k, v)
				}
				return c.Blob(idm.HTTPStatusCode, c.Response().Header().Get(echo.HeaderContentType), []byte(idm.ResponseBody))
			}

			resBody := m.getResponseBodyBuffer(c)
			if err = next(c); err != nil {
				c.Error(err)
			}

			statusCode := c.Response().Status
			if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
				// failed requests release the key so a retry is processed again
				return m.releaseLock(ctx, idm)
			}

			headers := make(map[string]string)
			for k, v := range c.Response().Header() {
				if len(v) > 0 {
					headers[k] = v[len(v)-1]
				}
			}
			idm.Finish(statusCode, headers, resBody.String())

			// the response is already written, a cache failure only costs the replay
			return m.saveResponseToCache(ctx, idm)
		}
	}
}

// getOrCreateIdempotency returns the cached idempotency data or takes a pending lock for a new key.
func (m *AppMiddleware) getOrCreateIdempotency(ctx context.Context, key string, fingerprint []byte) (*models.Idempotency, error) {
	idm := models.NewIdempotency(key, fingerprint)

	strIdm, err := m.cacheRepo.Get(ctx, idm.CacheKey)
	if errors.Is(err, common.ErrDataNotFound) {
		err = m.createLock(ctx, idm)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get idempotency data: %w", err)
	}

	if strIdm == "" {
		return idm, nil
	}

	var cachedIdm models.Idempotency
	err = json.Unmarshal([]byte(strIdm), &cachedIdm)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal idempotency data: %w", err)
	}

	if !idm.SameRequest(&cachedIdm) {
		return nil, common.ErrInvalidFingerprint
	}

	if cachedIdm.IsPending() {
		return nil, common.ErrRequestBeingProcessed
	}

	return &cachedIdm, nil
}

func (m *AppMiddleware) ttl() time.Duration {
	if m.conf.Idempotency.TTL > 0 {
		return m.conf.Idempotency.TTL
	}
	return models.TTLIdempotency
}

func (m *AppMiddleware) saveResponseToCache(ctx context.Context, idm *models.Idempotency) error {
	bytIdm, err := json.Marshal(idm)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency data: %w", err)
	}

	err = m.cacheRepo.Set(ctx, idm.CacheKey, string(bytIdm), m.ttl())
	if err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	return nil
}

func (m *AppMiddleware) createLock(ctx context.Context, idm *models.Idempotency) error {
	bytIdm, err := json.Marshal(idm)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency data: %w", err)
	}

	set, err := m.cacheRepo.SetIfNotExists(ctx, idm.CacheKey, string(bytIdm), m.ttl())
	if err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	// the same key may be in flight on another instance
	if !set {
		return common.ErrRequestBeingProcessed
	}

	return nil
}

func (m *AppMiddleware) releaseLock(ctx context.Context, idm *models.Idempotency) error {
	err := m.cacheRepo.Del(ctx, idm.CacheKey)
	if err != nil {
		return fmt.Errorf("failed to release idempotency data: %w", err)
	}

	return nil
}
