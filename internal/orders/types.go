package orders

import (
	"encoding/json"
	"math"
	"strconv"
)

// Column positions within an order row. One row holds one product line of
// a logical order; sibling lines repeat the shared identity, address and
// payment columns with the same orderId.
const (
	colOrderID      = 0
	colOrderDate    = 1
	colCustomerName = 2
	colEmail        = 3
	colPhone        = 4

	colShipAddress1 = 5
	colShipAddress2 = 6
	colShipCity     = 7
	colShipState    = 8
	colShipPincode  = 9
	colShipCountry  = 10

	colBillName     = 11
	colBillAddress1 = 12
	colBillAddress2 = 13
	colBillCity     = 14
	colBillState    = 15
	colBillPincode  = 16
	colBillCountry  = 17

	colProductID   = 18
	colProductName = 19
	colQuantity    = 20
	colPrice       = 21
	colSKU         = 22
	colLineTotal   = 23
	colOrderTotal  = 24

	colPaymentID     = 25
	colPaymentStatus = 26
	colPaymentMethod = 27

	colHeight  = 28
	colLength  = 29
	colBreadth = 30
	colWeight  = 31

	colLinkID = 32
)

const rowWidth = colLinkID + 1

// Amount is a float64 whose NaN sentinel serializes as JSON null, so a
// row with an unparseable or missing money cell still produces a valid
// response.
type Amount float64

func (a Amount) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(a)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(a))
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = Amount(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

// Address is a shipping or billing address block.
type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Country  string `json:"country"`
}

// ProductLine is the product portion of one order row.
type ProductLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     Amount `json:"price"`
	SKU       string `json:"sku"`
	LineTotal Amount `json:"lineTotal"`
}

// Payment is the payment portion of one order row.
type Payment struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Method string `json:"method"`
}

// Shipment carries the package dimensions used by the courier integration.
type Shipment struct {
	Height  string `json:"height"`
	Length  string `json:"length"`
	Breadth string `json:"breadth"`
	Weight  string `json:"weight"`
}

// Order is one decoded order row, shaped the way the API returns it.
type Order struct {
	OrderID         string      `json:"orderId"`
	OrderDate       string      `json:"orderDate"`
	CustomerName    string      `json:"customerName"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	ShippingAddress Address     `json:"shippingAddress"`
	BillingName     string      `json:"billingName"`
	BillingAddress  Address     `json:"billingAddress"`
	Product         ProductLine `json:"product"`
	TotalAmount     Amount      `json:"totalAmount"`
	Payment         Payment     `json:"payment"`
	Shipment        Shipment    `json:"shipment"`
	LinkID          string      `json:"linkId,omitempty"`
}

// Decode maps a positional row onto an Order. Short rows read as empty
// trailing fields; unparseable numbers decode to NaN (floats) or 0 (ints).
func Decode(row []string) Order {
	return Order{
		OrderID:      cell(row, colOrderID),
		OrderDate:    cell(row, colOrderDate),
		CustomerName: cell(row, colCustomerName),
		Email:        cell(row, colEmail),
		Phone:        cell(row, colPhone),
		ShippingAddress: Address{
			Address1: cell(row, colShipAddress1),
			Address2: cell(row, colShipAddress2),
			City:     cell(row, colShipCity),
			State:    cell(row, colShipState),
			Pincode:  cell(row, colShipPincode),
			Country:  cell(row, colShipCountry),
		},
		BillingName: cell(row, colBillName),
		BillingAddress: Address{
			Address1: cell(row, colBillAddress1),
			Address2: cell(row, colBillAddress2),
			City:     cell(row, colBillCity),
			State:    cell(row, colBillState),
			Pincode:  cell(row, colBillPincode),
			Country:  cell(row, colBillCountry),
		},
		Product: ProductLine{
			ProductID: cell(row, colProductID),
			Name:      cell(row, colProductName),
			Quantity:  parseInt(cell(row, colQuantity)),
			Price:     parseFloat(cell(row, colPrice)),
			SKU:       cell(row, colSKU),
			LineTotal: parseFloat(cell(row, colLineTotal)),
		},
		TotalAmount: parseFloat(cell(row, colOrderTotal)),
		Payment: Payment{
			ID:     cell(row, colPaymentID),
			Status: cell(row, colPaymentStatus),
			Method: cell(row, colPaymentMethod),
		},
		Shipment: Shipment{
			Height:  cell(row, colHeight),
			Length:  cell(row, colLength),
			Breadth: cell(row, colBreadth),
			Weight:  cell(row, colWeight),
		},
		LinkID: cell(row, colLinkID),
	}
}

// Encode produces the positional row for an Order, absent values as empty
// strings.
func Encode(o Order) []string {
	row := make([]string, rowWidth)
	row[colOrderID] = o.OrderID
	row[colOrderDate] = o.OrderDate
	row[colCustomerName] = o.CustomerName
	row[colEmail] = o.Email
	row[colPhone] = o.Phone
	row[colShipAddress1] = o.ShippingAddress.Address1
	row[colShipAddress2] = o.ShippingAddress.Address2
	row[colShipCity] = o.ShippingAddress.City
	row[colShipState] = o.ShippingAddress.State
	row[colShipPincode] = o.ShippingAddress.Pincode
	row[colShipCountry] = o.ShippingAddress.Country
	row[colBillName] = o.BillingName
	row[colBillAddress1] = o.BillingAddress.Address1
	row[colBillAddress2] = o.BillingAddress.Address2
	row[colBillCity] = o.BillingAddress.City
	row[colBillState] = o.BillingAddress.State
	row[colBillPincode] = o.BillingAddress.Pincode
	row[colBillCountry] = o.BillingAddress.Country
	row[colProductID] = o.Product.ProductID
	row[colProductName] = o.Product.Name
	row[colQuantity] = strconv.Itoa(o.Product.Quantity)
	row[colPrice] = formatFloat(o.Product.Price)
	row[colSKU] = o.Product.SKU
	row[colLineTotal] = formatFloat(o.Product.LineTotal)
	row[colOrderTotal] = formatFloat(o.TotalAmount)
	row[colPaymentID] = o.Payment.ID
	row[colPaymentStatus] = o.Payment.Status
	row[colPaymentMethod] = o.Payment.Method
	row[colHeight] = o.Shipment.Height
	row[colLength] = o.Shipment.Length
	row[colBreadth] = o.Shipment.Breadth
	row[colWeight] = o.Shipment.Weight
	row[colLinkID] = o.LinkID
	return row
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) Amount {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Amount(math.NaN())
	}
	return Amount(f)
}

func formatFloat(a Amount) string {
	if math.IsNaN(float64(a)) {
		return ""
	}
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}
