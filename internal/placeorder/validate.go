package placeorder

import (
	"context"
	"errors"
	"fmt"

	"github.com/acme/order-taking/internal/domain"
)

// ValidateOrder turns an untrusted order into a fully validated one. It
// fails fast: the first rejected field or line stops the stage. Addresses
// are checked for real-world existence before their fields are shape
// validated.
func ValidateOrder(
	ctx context.Context,
	checkProductCodeExists CheckProductCodeExists,
	checkAddressExists CheckAddressExists,
	order UnvalidatedOrder,
) (domain.ValidatedOrder, error) {
	orderID, err := toOrderID(order.OrderID)
	if err != nil {
		return domain.ValidatedOrder{}, err
	}

	customerInfo, err := toCustomerInfo(order.CustomerInfo)
	if err != nil {
		return domain.ValidatedOrder{}, err
	}

	shippingAddress, err := toValidatedAddress(ctx, checkAddressExists, order.ShippingAddress)
	if err != nil {
		return domain.ValidatedOrder{}, err
	}

	billingAddress, err := toValidatedAddress(ctx, checkAddressExists, order.BillingAddress)
	if err != nil {
		return domain.ValidatedOrder{}, err
	}

	if len(order.Lines) == 0 {
		return domain.ValidatedOrder{}, validationError("Order must contain at least one order line")
	}

	lines := make([]domain.ValidatedOrderLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		validated, err := toValidatedOrderLine(ctx, checkProductCodeExists, line)
		if err != nil {
			return domain.ValidatedOrder{}, err
		}
		lines = append(lines, validated)
	}

	return domain.ValidatedOrder{
		OrderID:         orderID,
		CustomerInfo:    customerInfo,
		ShippingAddress: shippingAddress,
		BillingAddress:  billingAddress,
		Lines:           lines,
	}, nil
}

func toOrderID(raw string) (domain.OrderID, error) {
	orderID, err := domain.NewOrderID(raw)
	if err != nil {
		return domain.OrderID{}, validationError(err.Error())
	}
	return orderID, nil
}

func toCustomerInfo(info UnvalidatedCustomerInfo) (domain.CustomerInfo, error) {
	firstName, err := domain.NewString50(info.FirstName)
	if err != nil {
		return domain.CustomerInfo{}, validationError(err.Error())
	}

	lastName, err := domain.NewString50(info.LastName)
	if err != nil {
		return domain.CustomerInfo{}, validationError(err.Error())
	}

	emailAddress, err := domain.NewEmailAddress(info.EmailAddress)
	if err != nil {
		return domain.CustomerInfo{}, validationError(err.Error())
	}

	return domain.CustomerInfo{
		Name:         domain.PersonalName{FirstName: firstName, LastName: lastName},
		EmailAddress: emailAddress,
	}, nil
}

// toValidatedAddress runs the two independent passes: existence first via
// the collaborator, then per-field shape validation of the checked result.
func toValidatedAddress(ctx context.Context, checkAddressExists CheckAddressExists, address UnvalidatedAddress) (domain.Address, error) {
	checked, err := toCheckedAddress(ctx, checkAddressExists, address)
	if err != nil {
		return domain.Address{}, err
	}
	return toAddress(checked)
}

func toCheckedAddress(ctx context.Context, checkAddressExists CheckAddressExists, address UnvalidatedAddress) (CheckedAddress, error) {
	if err := ctx.Err(); err != nil {
		return CheckedAddress{}, remoteServiceError("address verification", err)
	}

	checked, err := checkAddressExists(ctx, address)
	switch {
	case err == nil:
		return checked, nil
	case errors.Is(err, ErrAddressNotFound):
		return CheckedAddress{}, validationError("Address not found")
	case errors.Is(err, ErrAddressInvalidFormat):
		return CheckedAddress{}, validationError("Address has bad format")
	default:
		return CheckedAddress{}, remoteServiceError("address verification", err)
	}
}

func toAddress(checked CheckedAddress) (domain.Address, error) {
	addressLine1, err := domain.NewString50(checked.AddressLine1)
	if err != nil {
		return domain.Address{}, validationError(err.Error())
	}

	addressLine2, err := domain.NewOptionalString50(checked.AddressLine2)
	if err != nil {
		return domain.Address{}, validationError(err.Error())
	}

	addressLine3, err := domain.NewOptionalString50(checked.AddressLine3)
	if err != nil {
		return domain.Address{}, validationError(err.Error())
	}

	addressLine4, err := domain.NewOptionalString50(checked.AddressLine4)
	if err != nil {
		return domain.Address{}, validationError(err.Error())
	}

	city, err := domain.NewString50(checked.City)
	if err != nil {
		return domain.Address{}, validationError(err.Error())
	}

	zipCode, err := domain.NewZipCode(checked.ZipCode)
	if err != nil {
		return domain.Address{}, validationError(err.Error())
	}

	return domain.Address{
		AddressLine1: addressLine1,
		AddressLine2: addressLine2,
		AddressLine3: addressLine3,
		AddressLine4: addressLine4,
		City:         city,
		ZipCode:      zipCode,
	}, nil
}

// toProductCode validates the code's shape, then asks the catalog
// collaborator whether it exists.
func toProductCode(ctx context.Context, checkProductCodeExists CheckProductCodeExists, raw string) (domain.ProductCode, error) {
	code, err := domain.NewProductCode(raw)
	if err != nil {
		return nil, validationError(err.Error())
	}

	if err := ctx.Err(); err != nil {
		return nil, remoteServiceError("product catalog", err)
	}

	exists, err := checkProductCodeExists(ctx, code)
	if err != nil {
		return nil, remoteServiceError("product catalog", err)
	}
	if !exists {
		return nil, validationError(fmt.Sprintf("Invalid: %s", raw))
	}

	return code, nil
}

func toValidatedOrderLine(ctx context.Context, checkProductCodeExists CheckProductCodeExists, line UnvalidatedOrderLine) (domain.ValidatedOrderLine, error) {
	orderLineID, err := domain.NewOrderLineID(line.OrderLineID)
	if err != nil {
		return domain.ValidatedOrderLine{}, validationError(err.Error())
	}

	productCode, err := toProductCode(ctx, checkProductCodeExists, line.ProductCode)
	if err != nil {
		return domain.ValidatedOrderLine{}, err
	}

	quantity, err := domain.NewOrderQuantity(productCode, line.Quantity)
	if err != nil {
		return domain.ValidatedOrderLine{}, validationError(err.Error())
	}

	return domain.ValidatedOrderLine{
		OrderLineID: orderLineID,
		ProductCode: productCode,
		Quantity:    quantity,
	}, nil
}
