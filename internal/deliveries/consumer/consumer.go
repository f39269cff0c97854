package consumer

import (
	"context"
	"fmt"

	"github.com/printhaus/go-shop-finance/cmd/setup"
	"github.com/printhaus/go-shop-finance/internal/common/graceful"
	"github.com/printhaus/go-shop-finance/internal/deliveries/consumer/storefront_order"
)

const StorefrontOrder = "storefront_order"

// Names lists the consumers NewKafkaConsumer can build.
var Names = []string{StorefrontOrder}

func NewKafkaConsumer(
	ctx context.Context,
	consumerName string,
	contract *setup.Setup,
) (consumerProcess graceful.ProcessStartStopper, stoppers []graceful.ProcessStopper, err error) {
	switch consumerName {
	case StorefrontOrder:
		consumerProcess, err = storefront_order.New(
			ctx,
			contract.Config,
			contract.Service.Order,
			contract.RepoCache,
			contract.PublisherClient.StorefrontOrder,
			contract.Metrics,
		)
	default:
		err = fmt.Errorf("consumer type name for %s not found", consumerName)
	}

	return
}
