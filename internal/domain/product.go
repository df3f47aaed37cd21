package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductCode is a closed union over the two product families. The leading
// letter of the raw code selects the family: W for widgets, G for gizmos.
type ProductCode interface {
	productCode()
	fmt.Stringer
}

type Widget struct {
	code WidgetCode
}

func (Widget) productCode() {}

func (w Widget) WidgetCode() WidgetCode { return w.code }

func (w Widget) String() string { return w.code.Value() }

func (w Widget) MarshalJSON() ([]byte, error) { return marshalString(w.code.Value()) }

type Gizmo struct {
	code GizmoCode
}

func (Gizmo) productCode() {}

func (g Gizmo) GizmoCode() GizmoCode { return g.code }

func (g Gizmo) String() string { return g.code.Value() }

func (g Gizmo) MarshalJSON() ([]byte, error) { return marshalString(g.code.Value()) }

func NewProductCode(raw string) (ProductCode, error) {
	switch {
	case strings.HasPrefix(raw, "W"):
		code, err := NewWidgetCode(raw)
		if err != nil {
			return nil, err
		}
		return Widget{code: code}, nil
	case strings.HasPrefix(raw, "G"):
		code, err := NewGizmoCode(raw)
		if err != nil {
			return nil, err
		}
		return Gizmo{code: code}, nil
	default:
		return nil, errors.New("Product code must start with either W for Widget code or G for Gizmo code")
	}
}

// OrderQuantity is a closed union whose variant is determined by the product
// code's family: widgets are ordered in discrete units, gizmos by weight.
type OrderQuantity interface {
	orderQuantity()
	// Decimal returns the numeric value used for pricing arithmetic.
	Decimal() decimal.Decimal
}

type Units struct {
	quantity UnitQuantity
}

func (Units) orderQuantity() {}

func (u Units) Quantity() UnitQuantity { return u.quantity }

func (u Units) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(u.quantity.Value())) }

func (u Units) MarshalJSON() ([]byte, error) { return u.Decimal().MarshalJSON() }

type Kilograms struct {
	quantity KilogramQuantity
}

func (Kilograms) orderQuantity() {}

func (k Kilograms) Quantity() KilogramQuantity { return k.quantity }

func (k Kilograms) Decimal() decimal.Decimal { return k.quantity.Value() }

func (k Kilograms) MarshalJSON() ([]byte, error) { return k.Decimal().MarshalJSON() }

// NewOrderQuantity couples the quantity variant to the already-validated
// product code. Unit quantities truncate the raw amount to a whole number;
// kilogram quantities keep full decimal precision.
func NewOrderQuantity(code ProductCode, quantity decimal.Decimal) (OrderQuantity, error) {
	switch code.(type) {
	case Widget:
		units, err := NewUnitQuantity(int(quantity.IntPart()))
		if err != nil {
			return nil, err
		}
		return Units{quantity: units}, nil
	case Gizmo:
		kilograms, err := NewKilogramQuantity(quantity)
		if err != nil {
			return nil, err
		}
		return Kilograms{quantity: kilograms}, nil
	default:
		return nil, fmt.Errorf("unsupported product code type %T", code)
	}
}
