package catalog

// UnavailableReason explains why no copy can be loaned.
type UnavailableReason string

const (
	ReasonAllBorrowed  UnavailableReason = "all_borrowed"
	ReasonUnderRepair  UnavailableReason = "under_repair"
	ReasonNotAvailable UnavailableReason = "not_available"
)

// Availability is the derived loan status of a copy list. Exactly one of the
// two shapes holds: Available with Quantity > 0 and the conditions of the
// loanable copies, or unavailable with Quantity 0, a Reason, and the
// borrowed/under-repair counts.
type Availability struct {
	Available   bool
	Quantity    int
	Reason      UnavailableReason
	Conditions  []string
	Borrowed    int
	UnderRepair int
}

// AvailabilityOf derives the availability of a copy list. Total over any
// input, including an empty list.
func AvailabilityOf(copies []Copy) Availability {
	var available, borrowed, underRepair int
	var conditions []string

	for _, c := range copies {
		switch c.Status {
		case StatusAvailable:
			available++
			conditions = append(conditions, c.Condition)
		case StatusBorrowed:
			borrowed++
		case StatusRepair:
			underRepair++
		}
	}

	if available > 0 {
		return Availability{
			Available:  true,
			Quantity:   available,
			Conditions: conditions,
		}
	}

	// A zero-copy list counts as all borrowed: every copy, vacuously, is out.
	reason := ReasonNotAvailable
	switch {
	case borrowed == len(copies):
		reason = ReasonAllBorrowed
	case underRepair > 0:
		reason = ReasonUnderRepair
	}

	return Availability{
		Reason:      reason,
		Borrowed:    borrowed,
		UnderRepair: underRepair,
	}
}
