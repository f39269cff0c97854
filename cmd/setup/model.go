package setup

import (
	dlqpublisher "github.com/printhaus/go-shop-finance/internal/common/dlq_publisher"
	"github.com/printhaus/go-shop-finance/internal/services"
)

// PublisherClient groups the kafka publishers built once per process.
type PublisherClient struct {
	Events          services.Publishers
	StorefrontOrder dlqpublisher.Publisher
}
