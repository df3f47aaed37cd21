package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acme/order-taking/internal/domain"
	"github.com/acme/order-taking/internal/placeorder"
	"github.com/acme/order-taking/internal/telemetry"
)

// place-order reads an unvalidated order as JSON from a file argument (or
// stdin) and runs it through the pipeline with in-memory collaborators,
// printing the emitted events as JSON.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	ctx := context.Background()

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.InitTracerProvider(ctx, "place-order", "1.0.0")
		if err != nil {
			logger.Error("failed to init tracer provider", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				logger.Error("failed to shut down tracer provider", "error", err)
			}
		}()
	}

	order, err := readOrder(os.Args[1:])
	if err != nil {
		logger.Error("failed to read order", "error", err)
		os.Exit(1)
	}

	events, err := placeorder.PlaceOrder(ctx, newCollaborators(logger), order)
	if err != nil {
		logger.Error("order rejected", "order_id", order.OrderID, "error", err)
		os.Exit(1)
	}

	logger.Info("order placed", "order_id", order.OrderID, "events", len(events))

	if err := writeEvents(os.Stdout, events); err != nil {
		logger.Error("failed to encode events", "error", err)
		os.Exit(1)
	}
}

func readOrder(args []string) (placeorder.UnvalidatedOrder, error) {
	var reader io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return placeorder.UnvalidatedOrder{}, err
		}
		defer func() { _ = file.Close() }()
		reader = file
	}

	var order placeorder.UnvalidatedOrder
	if err := json.NewDecoder(reader).Decode(&order); err != nil {
		return placeorder.UnvalidatedOrder{}, fmt.Errorf("decode order: %w", err)
	}
	return order, nil
}

// newCollaborators builds the in-memory stand-ins for the external systems.
// PRODUCT_CODES restricts the catalog to a comma-separated set (empty means
// every well-formed code exists); DEFAULT_PRICE sets the flat unit price.
func newCollaborators(logger *slog.Logger) placeorder.Collaborators {
	catalog := map[string]bool{}
	for _, code := range strings.Split(os.Getenv("PRODUCT_CODES"), ",") {
		if code = strings.TrimSpace(code); code != "" {
			catalog[code] = true
		}
	}

	unitPrice := decimal.NewFromInt(10)
	if raw := os.Getenv("DEFAULT_PRICE"); raw != "" {
		if parsed, err := decimal.NewFromString(raw); err == nil {
			unitPrice = parsed
		} else {
			logger.Warn("ignoring unparsable DEFAULT_PRICE", "value", raw)
		}
	}

	return placeorder.Collaborators{
		CheckProductCodeExists: func(ctx context.Context, code domain.ProductCode) (bool, error) {
			return len(catalog) == 0 || catalog[code.String()], nil
		},
		CheckAddressExists: func(ctx context.Context, address placeorder.UnvalidatedAddress) (placeorder.CheckedAddress, error) {
			if address.AddressLine1 == "" || address.City == "" || address.ZipCode == "" {
				return placeorder.CheckedAddress{}, placeorder.ErrAddressInvalidFormat
			}
			return placeorder.CheckedAddress{
				AddressLine1: address.AddressLine1,
				AddressLine2: address.AddressLine2,
				AddressLine3: address.AddressLine3,
				AddressLine4: address.AddressLine4,
				City:         address.City,
				ZipCode:      address.ZipCode,
			}, nil
		},
		GetProductPrice: func(ctx context.Context, code domain.ProductCode) (domain.Price, error) {
			return domain.NewPrice(unitPrice)
		},
		CreateAcknowledgmentLetter: func(order domain.PricedOrder) placeorder.HTMLString {
			return placeorder.HTMLString(fmt.Sprintf(
				"<html><body><h1>Thank you for your order %s</h1><p>Amount to bill: %s</p></body></html>",
				order.OrderID.Value(), order.AmountToBill.Value(),
			))
		},
		SendAcknowledgment: func(ctx context.Context, acknowledgment placeorder.OrderAcknowledgment) placeorder.SendResult {
			logger.Info("acknowledgment sent", "to", acknowledgment.EmailAddress.Value())
			return placeorder.Sent
		},
	}
}

type eventEnvelope struct {
	Event string                 `json:"event"`
	Data  domain.PlaceOrderEvent `json:"data"`
}

func writeEvents(w io.Writer, events []domain.PlaceOrderEvent) error {
	envelopes := make([]eventEnvelope, 0, len(events))
	for _, event := range events {
		envelopes = append(envelopes, eventEnvelope{Event: event.EventName(), Data: event})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(envelopes)
}
