package placeorder

import (
	"context"
	"errors"
	"fmt"

	"github.com/acme/order-taking/internal/domain"
)

// PriceOrder attaches a price to every validated line and totals them into
// the order's billing amount. Any lookup or arithmetic failure rejects the
// whole order; there is no partial pricing result.
func PriceOrder(ctx context.Context, getProductPrice GetProductPrice, order domain.ValidatedOrder) (domain.PricedOrder, error) {
	lines := make([]domain.PricedOrderLine, 0, len(order.Lines))
	prices := make([]domain.Price, 0, len(order.Lines))

	for _, line := range order.Lines {
		priced, err := toPricedOrderLine(ctx, getProductPrice, line)
		if err != nil {
			return domain.PricedOrder{}, err
		}
		lines = append(lines, priced)
		prices = append(prices, priced.LinePrice)
	}

	amountToBill, err := domain.SumPrices(prices)
	if err != nil {
		return domain.PricedOrder{}, pricingError(err.Error())
	}

	return domain.PricedOrder{
		OrderID:         order.OrderID,
		CustomerInfo:    order.CustomerInfo,
		ShippingAddress: order.ShippingAddress,
		BillingAddress:  order.BillingAddress,
		AmountToBill:    amountToBill,
		Lines:           lines,
	}, nil
}

func toPricedOrderLine(ctx context.Context, getProductPrice GetProductPrice, line domain.ValidatedOrderLine) (domain.PricedOrderLine, error) {
	if err := ctx.Err(); err != nil {
		return domain.PricedOrderLine{}, remoteServiceError("price list", err)
	}

	unitPrice, err := getProductPrice(ctx, line.ProductCode)
	switch {
	case err == nil:
	case errors.Is(err, ErrPriceNotFound):
		return domain.PricedOrderLine{}, pricingError(fmt.Sprintf("No price for product %s", line.ProductCode))
	default:
		return domain.PricedOrderLine{}, remoteServiceError("price list", err)
	}

	linePrice, err := unitPrice.Multiply(line.Quantity.Decimal())
	if err != nil {
		return domain.PricedOrderLine{}, pricingError(err.Error())
	}

	return domain.PricedOrderLine{
		OrderLineID: line.OrderLineID,
		ProductCode: line.ProductCode,
		Quantity:    line.Quantity,
		LinePrice:   linePrice,
	}, nil
}
