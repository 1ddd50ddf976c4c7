package order

import (
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
)

// PaymentMethod is how the customer intends to pay on delivery.
// The empty value means the customer did not say.
type PaymentMethod string

const (
	PaymentNotInformed PaymentMethod = ""
	PaymentPix         PaymentMethod = "pix"
	PaymentCash        PaymentMethod = "dinheiro"
	PaymentCard        PaymentMethod = "cartao"
)

// ParsePaymentMethod accepts "pix", "dinheiro", "cartao" or an empty string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return PaymentNotInformed, err
	}
	return m, nil
}

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentNotInformed, PaymentPix, PaymentCash, PaymentCard:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid", fmt.Errorf("%q is not a valid payment method", string(m)))
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}
