package validation

// LoginRequest is the payload for POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LinkItem is a single basket entry in a link-generation request. The
// quantity is stored as given, zero included; only the product reference
// is mandatory since a line without one can never be joined.
type LinkItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// GenerateLinkRequest is the payload for POST /api/generate-link.
// At least one product line is required.
type GenerateLinkRequest struct {
	Products []LinkItem `json:"products" validate:"required,min=1,dive"`
}

// UpdatePaymentStatusRequest is the payload for PUT /api/update-payment-status.
type UpdatePaymentStatusRequest struct {
	LinkID        string `json:"linkId" validate:"required"`
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

// OrderItem is one product line of a checkout payload. Each line carries
// its own price, quantity and shipment dimensions. Nothing is mandatory;
// the checkout flow sends whatever it has and rows are stored as given.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	SKU       string  `json:"sku"`
	Height    string  `json:"height"`
	Length    string  `json:"length"`
	Breadth   string  `json:"breadth"`
	Weight    string  `json:"weight"`
}

// SaveOrderRequest is the payload for POST /api/saveToSheet. The identity,
// address and payment fields are flat and shared across every product
// line; Products may be empty, in which case no order rows are written.
type SaveOrderRequest struct {
	OrderID      string `json:"orderId"`
	OrderDate    string `json:"orderDate"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`

	Address  string `json:"address"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Country  string `json:"country"`

	BillingName     string `json:"billingName"`
	BillingAddress  string `json:"billingAddress"`
	BillingAddress2 string `json:"billingAddress2"`
	BillingCity     string `json:"billingCity"`
	BillingState    string `json:"billingState"`
	BillingPincode  string `json:"billingPincode"`
	BillingCountry  string `json:"billingCountry"`

	TotalAmount   float64 `json:"totalAmount"`
	PaymentID     string  `json:"paymentId"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod"`

	LinkID string `json:"linkId"`

	Products []OrderItem `json:"products" validate:"omitempty,dive"`

	// CustomizationDetails maps a customization key to raw detail rows
	// destined for the matching "Custom-<key>" sheet.
	CustomizationDetails map[string][][]string `json:"customizationDetails"`
}
