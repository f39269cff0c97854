package messaging

import (
	"errors"
	"fmt"
	"os"

	"github.com/Shopify/sarama"
	"go.uber.org/zap"

	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
)

var (
	ErrNoBrokers       = errors.New("no kafka bootstrap brokers defined, please set the brokers")
	ErrUnknownAssignor = errors.New("unknown consumer group assignor")
)

var assignors = map[string]sarama.BalanceStrategy{
	"":           sarama.BalanceStrategyRange,
	"range":      sarama.BalanceStrategyRange,
	"sticky":     sarama.BalanceStrategySticky,
	"roundrobin": sarama.BalanceStrategyRoundRobin,
}

// CreateSaramaConsumerConfig builds the consumer group config shared by every
// consumer. Verbose mode routes sarama's own logging through xlog.
func CreateSaramaConsumerConfig(cfg config.ConsumerConfig, logPrefix string) (*sarama.Config, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	strategy, ok := assignors[cfg.Assignor]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAssignor, cfg.Assignor)
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.Version = sarama.V3_0_0_0
	saramaCfg.ClientID, _ = os.Hostname()
	saramaCfg.Consumer.Return.Errors = true
	saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{strategy}

	if cfg.IsOldest {
		saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	}

	if cfg.IsVerbose {
		sarama.Logger = zap.NewStdLog(xlog.L().Named("sarama").With(zap.String("prefix", logPrefix)))
	}

	return saramaCfg, nil
}
