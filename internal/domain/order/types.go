package order

import "math"

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusFailed    Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusFailed:
		return true
	default:
		return false
	}
}

const (
	CodeOK              = "OK"
	CodeOutOfStock      = "OUT_OF_STOCK"
	CodeProductNotFound = "PRODUCT_NOT_FOUND"
)

const MaxIdempotencyKeyLength = 255

// MaxQuantity matches the INTEGER quantity column.
const MaxQuantity = math.MaxInt32
