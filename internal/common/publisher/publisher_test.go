package publisher

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Shopify/sarama"
	mockSarama "github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
)

func init() {
	xlog.InitForTest()
}

type installmentPaid struct {
	PolicyID  string `json:"policyId"`
	NewAnchor string `json:"newAnchor"`
}

func TestPublisher_Publish(t *testing.T) {
	const topic = "shop.policy.events"

	t.Run("success with key and headers", func(t *testing.T) {
		producer := mockSarama.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			assert.Equal(t, topic, msg.Topic)

			key, err := msg.Key.Encode()
			require.NoError(t, err)
			assert.Equal(t, "POL-1", string(key))

			headers := map[string]string{}
			for _, h := range msg.Headers {
				headers[string(h.Key)] = string(h.Value)
			}
			assert.Equal(t, "policy.installment_paid", headers[HeaderEventType])
			assert.Equal(t, "corr-9", headers[HeaderCorrelationID])

			val, err := msg.Value.Encode()
			require.NoError(t, err)
			var got installmentPaid
			require.NoError(t, json.Unmarshal(val, &got))
			assert.Equal(t, installmentPaid{PolicyID: "POL-1", NewAnchor: "2026-03-31"}, got)
			return nil
		})

		ctx := ctxdata.Sets(context.Background(), ctxdata.WithCorrelationID("corr-9"))
		p := NewPublisher(producer, topic, nil)
		err := p.Publish(ctx,
			installmentPaid{PolicyID: "POL-1", NewAnchor: "2026-03-31"},
			WithKey("POL-1"),
			WithEventType("policy.installment_paid"),
		)
		assert.NoError(t, err)
		assert.NoError(t, producer.Close())
	})

	t.Run("send failure is returned", func(t *testing.T) {
		producer := mockSarama.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		p := NewPublisher(producer, topic, nil)
		err := p.Publish(context.Background(), installmentPaid{PolicyID: "POL-2"})
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		assert.NoError(t, producer.Close())
	})

	t.Run("unmarshalable payload", func(t *testing.T) {
		producer := mockSarama.NewSyncProducer(t, nil)

		p := NewPublisher(producer, topic, nil)
		err := p.Publish(context.Background(), make(chan int))
		assert.Error(t, err)
		assert.NoError(t, producer.Close())
	})
}
