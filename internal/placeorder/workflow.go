package placeorder

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/acme/order-taking/internal/domain"
)

var tracer = otel.Tracer("placeorder")

// Collaborators bundles the injected functions the pipeline depends on.
type Collaborators struct {
	CheckProductCodeExists     CheckProductCodeExists
	CheckAddressExists         CheckAddressExists
	GetProductPrice            GetProductPrice
	CreateAcknowledgmentLetter CreateAcknowledgmentLetter
	SendAcknowledgment         SendAcknowledgment
}

// PlaceOrder runs the full pipeline: validate, price, acknowledge, and emit
// events. On failure it returns exactly one of *ValidationError,
// *PricingError or *RemoteServiceError and no events.
func PlaceOrder(ctx context.Context, collaborators Collaborators, order UnvalidatedOrder) ([]domain.PlaceOrderEvent, error) {
	ctx, span := tracer.Start(ctx, "place_order",
		trace.WithAttributes(attribute.String("order.id", order.OrderID)),
	)
	defer span.End()

	validated, err := validateStage(ctx, collaborators, order)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	priced, err := priceStage(ctx, collaborators, validated)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	acknowledgment := acknowledgeStage(ctx, collaborators, priced)

	return CreateEvents(priced, acknowledgment), nil
}

func validateStage(ctx context.Context, collaborators Collaborators, order UnvalidatedOrder) (domain.ValidatedOrder, error) {
	ctx, span := tracer.Start(ctx, "validate_order")
	defer span.End()

	validated, err := ValidateOrder(ctx, collaborators.CheckProductCodeExists, collaborators.CheckAddressExists, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return validated, err
}

func priceStage(ctx context.Context, collaborators Collaborators, order domain.ValidatedOrder) (domain.PricedOrder, error) {
	ctx, span := tracer.Start(ctx, "price_order")
	defer span.End()

	priced, err := PriceOrder(ctx, collaborators.GetProductPrice, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return priced, err
}

func acknowledgeStage(ctx context.Context, collaborators Collaborators, order domain.PricedOrder) *domain.AcknowledgmentSent {
	ctx, span := tracer.Start(ctx, "acknowledge_order")
	defer span.End()

	acknowledgment := AcknowledgeOrder(ctx, collaborators.CreateAcknowledgmentLetter, collaborators.SendAcknowledgment, order)
	span.SetAttributes(attribute.Bool("acknowledgment.sent", acknowledgment != nil))
	return acknowledgment
}
