package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProductCode(t *testing.T) {
	t.Run("creates a widget for W followed by 4 digits", func(t *testing.T) {
		code, err := NewProductCode("W1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		widget, ok := code.(Widget)
		if !ok {
			t.Fatalf("expected Widget, got %T", code)
		}
		if widget.WidgetCode().Value() != "W1234" {
			t.Errorf("unexpected code: %q", widget.WidgetCode().Value())
		}
	})

	t.Run("creates a gizmo for G followed by 3 digits", func(t *testing.T) {
		code, err := NewProductCode("G321")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		gizmo, ok := code.(Gizmo)
		if !ok {
			t.Fatalf("expected Gizmo, got %T", code)
		}
		if gizmo.GizmoCode().Value() != "G321" {
			t.Errorf("unexpected code: %q", gizmo.GizmoCode().Value())
		}
	})

	t.Run("rejects an unknown leading letter", func(t *testing.T) {
		_, err := NewProductCode("X456")
		if err == nil {
			t.Fatal("expected an error")
		}
		if err.Error() != "Product code must start with either W for Widget code or G for Gizmo code" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("surfaces the widget pattern message on a bad widget code", func(t *testing.T) {
		_, err := NewProductCode("W12345")
		if err == nil {
			t.Fatal("expected an error")
		}
		if err.Error() != "Widget code must follow format [Wxxxx], where each x is a digit (0-9)" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("surfaces the gizmo pattern message on a bad gizmo code", func(t *testing.T) {
		_, err := NewProductCode("G1234")
		if err == nil {
			t.Fatal("expected an error")
		}
		if err.Error() != "Gizmo code must follow format [Gxxx], where each x is a digit (0-9)" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})
}

func TestNewOrderQuantity(t *testing.T) {
	widget, err := NewProductCode("W1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gizmo, err := NewProductCode("G123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("a widget code always yields a unit quantity", func(t *testing.T) {
		quantity, err := NewOrderQuantity(widget, decimal.NewFromInt(10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		units, ok := quantity.(Units)
		if !ok {
			t.Fatalf("expected Units, got %T", quantity)
		}
		if units.Quantity().Value() != 10 {
			t.Errorf("expected 10, got %d", units.Quantity().Value())
		}
	})

	t.Run("unit quantities truncate fractional amounts", func(t *testing.T) {
		quantity, err := NewOrderQuantity(widget, decimal.RequireFromString("10.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		units, ok := quantity.(Units)
		if !ok {
			t.Fatalf("expected Units, got %T", quantity)
		}
		if units.Quantity().Value() != 10 {
			t.Errorf("expected 10, got %d", units.Quantity().Value())
		}
	})

	t.Run("a gizmo code always yields a kilogram quantity", func(t *testing.T) {
		quantity, err := NewOrderQuantity(gizmo, decimal.RequireFromString("10.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		kilograms, ok := quantity.(Kilograms)
		if !ok {
			t.Fatalf("expected Kilograms, got %T", quantity)
		}
		if !kilograms.Quantity().Value().Equal(decimal.RequireFromString("10.5")) {
			t.Errorf("expected 10.5, got %s", kilograms.Quantity().Value())
		}
	})

	t.Run("rejects a negative quantity", func(t *testing.T) {
		if _, err := NewOrderQuantity(gizmo, decimal.RequireFromString("-1.5")); err == nil {
			t.Fatal("expected an error")
		}
		if _, err := NewOrderQuantity(widget, decimal.NewFromInt(-2)); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("pricing decimals match the variant", func(t *testing.T) {
		units, err := NewOrderQuantity(widget, decimal.NewFromInt(3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !units.Decimal().Equal(decimal.NewFromInt(3)) {
			t.Errorf("expected 3, got %s", units.Decimal())
		}

		kilograms, err := NewOrderQuantity(gizmo, decimal.RequireFromString("1.25"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !kilograms.Decimal().Equal(decimal.RequireFromString("1.25")) {
			t.Errorf("expected 1.25, got %s", kilograms.Decimal())
		}
	})
}
