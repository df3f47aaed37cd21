package placeorder

import (
	"context"

	"github.com/acme/order-taking/internal/domain"
)

// AcknowledgeOrder renders the acknowledgement letter and attempts delivery.
// The returned event is non-nil only when the letter was actually sent; a
// NotSent outcome (or a cancelled context) still leaves the order placed.
func AcknowledgeOrder(
	ctx context.Context,
	createLetter CreateAcknowledgmentLetter,
	send SendAcknowledgment,
	order domain.PricedOrder,
) *domain.AcknowledgmentSent {
	if ctx.Err() != nil {
		return nil
	}

	acknowledgment := OrderAcknowledgment{
		EmailAddress: order.CustomerInfo.EmailAddress,
		Letter:       createLetter(order),
	}

	if send(ctx, acknowledgment) != Sent {
		return nil
	}

	event := domain.NewAcknowledgmentSent(order.OrderID, order.CustomerInfo.EmailAddress)
	return &event
}

// CreateEvents assembles the pipeline's terminal output: order-placed, then
// billable-order-placed, then the acknowledgement event when one exists.
func CreateEvents(order domain.PricedOrder, acknowledgment *domain.AcknowledgmentSent) []domain.PlaceOrderEvent {
	events := []domain.PlaceOrderEvent{
		domain.NewOrderPlaced(order),
		domain.NewBillableOrderPlaced(order.OrderID, order.BillingAddress, order.AmountToBill),
	}
	if acknowledgment != nil {
		events = append(events, *acknowledgment)
	}
	return events
}
