package product

// OutcomeKind classifies the result of a reservation attempt.
type OutcomeKind string

const (
	OutcomeAccepted OutcomeKind = "ACCEPTED"
	OutcomeRejected OutcomeKind = "REJECTED"
	OutcomeNotFound OutcomeKind = "NOT_FOUND"
)

// ReservationOutcome is transient: produced by the ledger, consumed by the
// order flow, never stored.
type ReservationOutcome struct {
	Kind        OutcomeKind
	Remaining   int
	ProductName string
}

func Accepted(remaining int, name string) ReservationOutcome {
	return ReservationOutcome{Kind: OutcomeAccepted, Remaining: remaining, ProductName: name}
}

func Rejected(remaining int, name string) ReservationOutcome {
	return ReservationOutcome{Kind: OutcomeRejected, Remaining: remaining, ProductName: name}
}

func NotFound() ReservationOutcome {
	return ReservationOutcome{Kind: OutcomeNotFound}
}

func (o ReservationOutcome) IsAccepted() bool { return o.Kind == OutcomeAccepted }

// Result codes carried over RPC.
const (
	CodeOK              = "OK"
	CodeOutOfStock      = "OUT_OF_STOCK"
	CodeProductNotFound = "PRODUCT_NOT_FOUND"
)

func (o ReservationOutcome) Code() string {
	switch o.Kind {
	case OutcomeAccepted:
		return CodeOK
	case OutcomeRejected:
		return CodeOutOfStock
	default:
		return CodeProductNotFound
	}
}

func (o ReservationOutcome) Message() string {
	switch o.Kind {
	case OutcomeAccepted:
		return "Reserved"
	case OutcomeRejected:
		return "Out of stock"
	default:
		return "Product not found"
	}
}

// Seed is a catalogue entry inserted at startup when absent.
type Seed struct {
	ID    string
	Name  string
	Stock int
}

func DefaultCatalog() []Seed {
	return []Seed{
		{ID: "product-1", Name: "Vendyz Flash Item", Stock: 1},
		{ID: "product-2", Name: "Vendyz Starter Pack", Stock: 5},
		{ID: "product-3", Name: "Vendyz Essentials Kit", Stock: 10},
	}
}
