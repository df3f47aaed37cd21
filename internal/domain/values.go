package domain

import (
	"encoding/json"
	"errors"
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	emailPattern      = regexp.MustCompile(`^.+@.+$`)
	widgetCodePattern = regexp.MustCompile(`^W[0-9]{4}$`)
	gizmoCodePattern  = regexp.MustCompile(`^G[0-9]{3}$`)
)

// Optional distinguishes an absent value from an invalid one. Constrained
// values that may legitimately be missing (address lines 2-4) are carried as
// Optional rather than as zero values.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) IsSome() bool {
	return o.ok
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// String50 is a free-text value of at most 50 characters. The empty string
// is valid; use NewOptionalString50 when absence must be distinguished.
type String50 struct {
	value string
}

func NewString50(raw string) (String50, error) {
	if utf8.RuneCountInString(raw) > 50 {
		return String50{}, errors.New("String50 must not be more than 50 chars")
	}
	return String50{value: raw}, nil
}

// NewOptionalString50 maps an empty raw input to the absent value. A present
// but over-length input still fails: absence and invalidity are distinct.
func NewOptionalString50(raw string) (Optional[String50], error) {
	if raw == "" {
		return None[String50](), nil
	}
	value, err := NewString50(raw)
	if err != nil {
		return None[String50](), err
	}
	return Some(value), nil
}

func (s String50) Value() string { return s.value }

func (s String50) MarshalJSON() ([]byte, error) { return marshalString(s.value) }

type EmailAddress struct {
	value string
}

func NewEmailAddress(raw string) (EmailAddress, error) {
	if !emailPattern.MatchString(raw) {
		return EmailAddress{}, errors.New("EmailAddress must match pattern .+@.+")
	}
	return EmailAddress{value: raw}, nil
}

func (e EmailAddress) Value() string { return e.value }

func (e EmailAddress) MarshalJSON() ([]byte, error) { return marshalString(e.value) }

type ZipCode struct {
	value string
}

func NewZipCode(raw string) (ZipCode, error) {
	if raw == "" {
		return ZipCode{}, errors.New("ZipCode must not be empty")
	}
	return ZipCode{value: raw}, nil
}

func (z ZipCode) Value() string { return z.value }

func (z ZipCode) MarshalJSON() ([]byte, error) { return marshalString(z.value) }

type OrderID struct {
	value string
}

func NewOrderID(raw string) (OrderID, error) {
	if raw == "" {
		return OrderID{}, errors.New("OrderId is invalid")
	}
	return OrderID{value: raw}, nil
}

func (id OrderID) Value() string { return id.value }

func (id OrderID) MarshalJSON() ([]byte, error) { return marshalString(id.value) }

type OrderLineID struct {
	value string
}

func NewOrderLineID(raw string) (OrderLineID, error) {
	if raw == "" {
		return OrderLineID{}, errors.New("OrderLineId must not be empty")
	}
	return OrderLineID{value: raw}, nil
}

func (id OrderLineID) Value() string { return id.value }

func (id OrderLineID) MarshalJSON() ([]byte, error) { return marshalString(id.value) }

// WidgetCode identifies a product sold in discrete units: "W" followed by
// exactly four digits.
type WidgetCode struct {
	value string
}

func NewWidgetCode(raw string) (WidgetCode, error) {
	if !widgetCodePattern.MatchString(raw) {
		return WidgetCode{}, errors.New("Widget code must follow format [Wxxxx], where each x is a digit (0-9)")
	}
	return WidgetCode{value: raw}, nil
}

func (c WidgetCode) Value() string { return c.value }

// GizmoCode identifies a product sold by weight: "G" followed by exactly
// three digits.
type GizmoCode struct {
	value string
}

func NewGizmoCode(raw string) (GizmoCode, error) {
	if !gizmoCodePattern.MatchString(raw) {
		return GizmoCode{}, errors.New("Gizmo code must follow format [Gxxx], where each x is a digit (0-9)")
	}
	return GizmoCode{value: raw}, nil
}

func (c GizmoCode) Value() string { return c.value }

type UnitQuantity struct {
	value int
}

func NewUnitQuantity(value int) (UnitQuantity, error) {
	if value < 0 {
		return UnitQuantity{}, errors.New("UnitQuantity must not be negative")
	}
	return UnitQuantity{value: value}, nil
}

func (q UnitQuantity) Value() int { return q.value }

type KilogramQuantity struct {
	value decimal.Decimal
}

func NewKilogramQuantity(value decimal.Decimal) (KilogramQuantity, error) {
	if value.IsNegative() {
		return KilogramQuantity{}, errors.New("KilogramQuantity must not be negative")
	}
	return KilogramQuantity{value: value}, nil
}

func (q KilogramQuantity) Value() decimal.Decimal { return q.value }

type Price struct {
	value decimal.Decimal
}

func NewPrice(value decimal.Decimal) (Price, error) {
	if value.IsNegative() {
		return Price{}, errors.New("Price must not be negative")
	}
	return Price{value: value}, nil
}

// Multiply scales a unit price by a quantity, producing a line price.
func (p Price) Multiply(quantity decimal.Decimal) (Price, error) {
	return NewPrice(p.value.Mul(quantity))
}

func (p Price) Value() decimal.Decimal { return p.value }

func (p Price) MarshalJSON() ([]byte, error) { return p.value.MarshalJSON() }

type BillingAmount struct {
	value decimal.Decimal
}

func NewBillingAmount(value decimal.Decimal) (BillingAmount, error) {
	if value.IsNegative() {
		return BillingAmount{}, errors.New("BillingAmount must not be negative")
	}
	return BillingAmount{value: value}, nil
}

// SumPrices totals a set of line prices into the order's billing amount.
func SumPrices(prices []Price) (BillingAmount, error) {
	total := decimal.Zero
	for _, price := range prices {
		total = total.Add(price.value)
	}
	return NewBillingAmount(total)
}

func (a BillingAmount) Value() decimal.Decimal { return a.value }

func (a BillingAmount) MarshalJSON() ([]byte, error) { return a.value.MarshalJSON() }

func marshalString(value string) ([]byte, error) {
	return json.Marshal(value)
}
