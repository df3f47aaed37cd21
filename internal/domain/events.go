package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlaceOrderEvent is the closed set of facts the pipeline emits once an
// order has been priced. Events are immutable; they are created exactly once
// at the end of the pipeline.
type PlaceOrderEvent interface {
	placeOrderEvent()
	// EventName identifies the event variant for logging and routing.
	EventName() string
}

type EventMeta struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newEventMeta() EventMeta {
	return EventMeta{
		EventID:    uuid.New().String(),
		OccurredAt: time.Now().UTC(),
	}
}

type OrderPlaced struct {
	EventMeta
	Order PricedOrder `json:"order"`
}

func NewOrderPlaced(order PricedOrder) OrderPlaced {
	return OrderPlaced{EventMeta: newEventMeta(), Order: order}
}

func (OrderPlaced) placeOrderEvent() {}

func (OrderPlaced) EventName() string { return "order.placed" }

// BillableOrderPlaced carries the billing-relevant subset of a placed order.
type BillableOrderPlaced struct {
	EventMeta
	OrderID        OrderID       `json:"order_id"`
	BillingAddress Address       `json:"billing_address"`
	AmountToBill   BillingAmount `json:"amount_to_bill"`
}

func NewBillableOrderPlaced(orderID OrderID, billingAddress Address, amountToBill BillingAmount) BillableOrderPlaced {
	return BillableOrderPlaced{
		EventMeta:      newEventMeta(),
		OrderID:        orderID,
		BillingAddress: billingAddress,
		AmountToBill:   amountToBill,
	}
}

func (BillableOrderPlaced) placeOrderEvent() {}

func (BillableOrderPlaced) EventName() string { return "billable_order.placed" }

// AcknowledgmentSent is emitted only when the acknowledgement letter was
// actually sent to the customer.
type AcknowledgmentSent struct {
	EventMeta
	OrderID      OrderID      `json:"order_id"`
	EmailAddress EmailAddress `json:"email_address"`
}

func NewAcknowledgmentSent(orderID OrderID, emailAddress EmailAddress) AcknowledgmentSent {
	return AcknowledgmentSent{
		EventMeta:    newEventMeta(),
		OrderID:      orderID,
		EmailAddress: emailAddress,
	}
}

func (AcknowledgmentSent) placeOrderEvent() {}

func (AcknowledgmentSent) EventName() string { return "order_acknowledgment.sent" }
