// Package placeorder implements the order-intake pipeline: an unvalidated
// order submission is validated, priced, and turned into a list of domain
// events, or rejected with a structured error. External concerns (product
// catalog, address verification, price list, letter delivery) are injected
// as collaborator functions; the pipeline itself performs no I/O.
package placeorder

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/acme/order-taking/internal/domain"
)

type UnvalidatedCustomerInfo struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
}

type UnvalidatedAddress struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	AddressLine3 string `json:"address_line_3"`
	AddressLine4 string `json:"address_line_4"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
}

type UnvalidatedOrderLine struct {
	OrderLineID string          `json:"order_line_id"`
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// UnvalidatedOrder is the untrusted input shape. Absent fields decode to
// their zero values; nothing has been checked yet.
type UnvalidatedOrder struct {
	OrderID         string                  `json:"order_id"`
	CustomerInfo    UnvalidatedCustomerInfo `json:"customer_info"`
	ShippingAddress UnvalidatedAddress      `json:"shipping_address"`
	BillingAddress  UnvalidatedAddress      `json:"billing_address"`
	Lines           []UnvalidatedOrderLine  `json:"lines"`
}

// CheckedAddress is an address the verification collaborator asserts to
// exist in the real world. Its fields still need shape validation.
type CheckedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

// Domain-level rejections a collaborator may report. Any other error from a
// collaborator is treated as an unexpected remote-service failure.
var (
	ErrAddressNotFound      = errors.New("address not found")
	ErrAddressInvalidFormat = errors.New("address has invalid format")
	ErrPriceNotFound        = errors.New("price not found")
)

type CheckProductCodeExists func(ctx context.Context, code domain.ProductCode) (bool, error)

type CheckAddressExists func(ctx context.Context, address UnvalidatedAddress) (CheckedAddress, error)

type GetProductPrice func(ctx context.Context, code domain.ProductCode) (domain.Price, error)

// HTMLString is the opaque rendered content of an acknowledgement letter.
type HTMLString string

type OrderAcknowledgment struct {
	EmailAddress domain.EmailAddress
	Letter       HTMLString
}

type SendResult int

const (
	NotSent SendResult = iota
	Sent
)

type CreateAcknowledgmentLetter func(order domain.PricedOrder) HTMLString

// SendAcknowledgment reports whether the letter went out. NotSent is a
// business outcome, not a failure: the order is still placed.
type SendAcknowledgment func(ctx context.Context, acknowledgment OrderAcknowledgment) SendResult
