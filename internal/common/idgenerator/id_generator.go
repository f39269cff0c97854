// Package idgenerator builds record identifiers of the form
// <PREFIX>-<unix millis><raw url base64 uuid>, which sort roughly by creation time.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PrefixCustomer      = "CUS"
	PrefixOrder         = "ORD"
	PrefixPayment       = "PAY"
	PrefixAdjustment    = "ADJ"
	PrefixPolicy        = "POL"
	PrefixPolicyPayment = "PPY"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct {
	now func() time.Time
}

func New() Generator {
	return &IDGenerator{now: time.Now}
}

func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	id := uuid.New()
	suffix := fmt.Sprintf("%d%s", g.now().UnixMilli(), base64.RawURLEncoding.EncodeToString(id[:]))

	if prefix == "" {
		return suffix
	}

	return prefix + "-" + suffix
}
