package services

import (
	"context"
	"errors"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/publisher"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/models"
)

func checkDatabaseError(err error, code ...string) error {
	if errors.Is(err, common.ErrNoRows) {
		err = models.GetErrMap(models.ErrKeyDataNotFound)
		if len(code) > 0 {
			err = models.GetErrMap(code[0])
		}
	} else {
		err = models.GetErrMap(models.ErrKeyDatabaseError, err.Error())
	}

	return err
}

// checkWriteError maps constraint violations of an insert. A missing parent
// row means the customer does not exist; a duplicate maps to existKey.
func checkWriteError(err error, existKey string) error {
	switch {
	case errors.Is(err, common.ErrDataNotFound):
		return models.GetErrMap(models.ErrKeyCustomerNotFound)
	case errors.Is(err, common.ErrDataExist):
		return models.GetErrMap(existKey)
	default:
		return checkDatabaseError(err)
	}
}

func pageDone(fetched int, page models.Pagination) bool {
	return uint64(fetched) < page.Limit
}

func nextPage(page models.Pagination) models.Pagination {
	return models.Pagination{Limit: page.Limit, Offset: page.Offset + page.Limit}
}

// publishEvent sends an event after the change it describes is committed. A
// failed publish is logged and does not undo the change.
func publishEvent(ctx context.Context, pub publisher.Publisher, eventType, key string, payload any) bool {
	if pub == nil {
		return false
	}

	err := pub.Publish(ctx, payload, publisher.WithKey(key), publisher.WithEventType(eventType))
	if err != nil {
		xlog.Warn(ctx, "[EVENT]", xlog.String("eventType", eventType), xlog.String("key", key), xlog.Err(err))
		return false
	}

	return true
}
