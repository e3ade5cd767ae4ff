package links

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
)

// Column positions within an OrderLinks row.
const (
	colLinkID        = 0
	colProductID     = 1
	colQuantity      = 2
	colTimestamp     = 3
	colPaymentStatus = 4
)

const rowWidth = colPaymentStatus + 1

// StatusPending is the payment status every link starts in.
const StatusPending = "pending"

// Line is one (linkId, productId) row of the OrderLinks sheet. All lines
// sharing a LinkID were appended together and form one shareable basket.
type Line struct {
	LinkID        string `json:"linkId"`
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	Timestamp     string `json:"timestamp"`
	PaymentStatus string `json:"paymentStatus"`
}

// Decode maps a positional row onto a Line. Short rows are tolerated; an
// empty payment status reads as "pending", an unparseable quantity as 0.
func Decode(row []string) Line {
	status := cell(row, colPaymentStatus)
	if status == "" {
		status = StatusPending
	}
	return Line{
		LinkID:        cell(row, colLinkID),
		ProductID:     cell(row, colProductID),
		Quantity:      parseQuantity(cell(row, colQuantity)),
		Timestamp:     cell(row, colTimestamp),
		PaymentStatus: status,
	}
}

// Encode produces the positional row for a Line.
func Encode(l Line) []string {
	row := make([]string, rowWidth)
	row[colLinkID] = l.LinkID
	row[colProductID] = l.ProductID
	row[colQuantity] = strconv.Itoa(l.Quantity)
	row[colTimestamp] = l.Timestamp
	row[colPaymentStatus] = l.PaymentStatus
	return row
}

// NewLinkID returns 16 lowercase hex characters from 8 random bytes.
// Collisions are not checked; 64 bits of randomness makes them negligible
// at this system's scale.
func NewLinkID() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseQuantity(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
