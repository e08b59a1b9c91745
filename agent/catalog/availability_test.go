package catalog

import "testing"

func TestAvailabilityOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		copies      []Copy
		available   bool
		quantity    int
		reason      UnavailableReason
		borrowed    int
		underRepair int
		conditions  []string
	}{
		{
			name: "some copies available",
			copies: []Copy{
				{ID: "A-1", Condition: "Excellent", Status: StatusBorrowed},
				{ID: "A-2", Condition: "Good", Status: StatusAvailable},
				{ID: "A-3", Condition: "Fair", Status: StatusAvailable},
			},
			available:  true,
			quantity:   2,
			conditions: []string{"Good", "Fair"},
		},
		{
			name: "all borrowed",
			copies: []Copy{
				{ID: "B-1", Status: StatusBorrowed},
				{ID: "B-2", Status: StatusBorrowed},
			},
			reason:   ReasonAllBorrowed,
			borrowed: 2,
		},
		{
			name: "under repair beats not available",
			copies: []Copy{
				{ID: "C-1", Status: StatusBorrowed},
				{ID: "C-2", Status: StatusRepair},
			},
			reason:      ReasonUnderRepair,
			borrowed:    1,
			underRepair: 1,
		},
		{
			name: "withdrawn only",
			copies: []Copy{
				{ID: "D-1", Status: StatusWithdrawn},
			},
			reason: ReasonNotAvailable,
		},
		{
			// Zero copies means every copy is, vacuously, borrowed.
			name:   "no copies counts as all borrowed",
			copies: nil,
			reason: ReasonAllBorrowed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := AvailabilityOf(tc.copies)
			if got.Available != tc.available {
				t.Fatalf("available = %v, want %v", got.Available, tc.available)
			}
			if got.Quantity != tc.quantity {
				t.Fatalf("quantity = %d, want %d", got.Quantity, tc.quantity)
			}
			if !got.Available {
				if got.Reason != tc.reason {
					t.Fatalf("reason = %s, want %s", got.Reason, tc.reason)
				}
				if got.Borrowed != tc.borrowed {
					t.Fatalf("borrowed = %d, want %d", got.Borrowed, tc.borrowed)
				}
				if got.UnderRepair != tc.underRepair {
					t.Fatalf("under_repair = %d, want %d", got.UnderRepair, tc.underRepair)
				}
			}
			if len(got.Conditions) != len(tc.conditions) {
				t.Fatalf("conditions = %v, want %v", got.Conditions, tc.conditions)
			}
			for i := range tc.conditions {
				if got.Conditions[i] != tc.conditions[i] {
					t.Fatalf("conditions[%d] = %s, want %s", i, got.Conditions[i], tc.conditions[i])
				}
			}
		})
	}
}

func TestIsValidCopyStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []CopyStatus{StatusAvailable, StatusBorrowed, StatusRepair, StatusWithdrawn} {
		if !IsValidCopyStatus(status) {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if IsValidCopyStatus("Lost") {
		t.Fatal("expected Lost to be invalid")
	}
}
