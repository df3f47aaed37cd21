package domain

type PersonalName struct {
	FirstName String50 `json:"first_name"`
	LastName  String50 `json:"last_name"`
}

type CustomerInfo struct {
	Name         PersonalName `json:"name"`
	EmailAddress EmailAddress `json:"email_address"`
}

// Address has passed both the real-world existence check and per-field shape
// validation. Lines 2-4 are optional.
type Address struct {
	AddressLine1 String50           `json:"address_line_1"`
	AddressLine2 Optional[String50] `json:"address_line_2"`
	AddressLine3 Optional[String50] `json:"address_line_3"`
	AddressLine4 Optional[String50] `json:"address_line_4"`
	City         String50           `json:"city"`
	ZipCode      ZipCode            `json:"zip_code"`
}

type ValidatedOrderLine struct {
	OrderLineID OrderLineID   `json:"order_line_id"`
	ProductCode ProductCode   `json:"product_code"`
	Quantity    OrderQuantity `json:"quantity"`
}

type ValidatedOrder struct {
	OrderID         OrderID              `json:"order_id"`
	CustomerInfo    CustomerInfo         `json:"customer_info"`
	ShippingAddress Address              `json:"shipping_address"`
	BillingAddress  Address              `json:"billing_address"`
	Lines           []ValidatedOrderLine `json:"lines"`
}

type PricedOrderLine struct {
	OrderLineID OrderLineID   `json:"order_line_id"`
	ProductCode ProductCode   `json:"product_code"`
	Quantity    OrderQuantity `json:"quantity"`
	LinePrice   Price         `json:"line_price"`
}

type PricedOrder struct {
	OrderID         OrderID           `json:"order_id"`
	CustomerInfo    CustomerInfo      `json:"customer_info"`
	ShippingAddress Address           `json:"shipping_address"`
	BillingAddress  Address           `json:"billing_address"`
	AmountToBill    BillingAmount     `json:"amount_to_bill"`
	Lines           []PricedOrderLine `json:"lines"`
}
