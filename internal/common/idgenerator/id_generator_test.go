package idgenerator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/printhaus/go-shop-finance/internal/common/idgenerator"
)

func TestGenerateID(t *testing.T) {
	t.Run("created new id with prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate(idgenerator.PrefixOrder)
		assert.Regexp(t, regexp.MustCompile(`^ORD-\d{13}[A-Za-z0-9_-]{22}$`), id)
	})

	t.Run("created new id without prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate()
		assert.Regexp(t, regexp.MustCompile(`^\d{13}[A-Za-z0-9_-]{22}$`), id)
	})

	t.Run("ids are unique", func(t *testing.T) {
		generator := idgenerator.New()
		seen := make(map[string]struct{})
		for i := 0; i < 1000; i++ {
			id := generator.Generate(idgenerator.PrefixPayment)
			_, dup := seen[id]
			assert.False(t, dup)
			seen[id] = struct{}{}
		}
	})
}
