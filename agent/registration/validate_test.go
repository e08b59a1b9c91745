package registration

import "testing"

func TestValidateName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		want  string
		valid bool
	}{
		{"Jo", "Jo", true},
		{"  Maria Lopez  ", "Maria Lopez", true},
		{"José Hernández", "José Hernández", true},
		{"O'Brien", "O'Brien", true},
		{"Jean-Luc", "Jean-Luc", true},
		{"J", "", false},
		{"12345", "", false},
		{"Mary1", "", false},
		{"", "", false},
		{"   ", "", false},
		{"a1b2c3d4", "", false}, // digits are not allowed name characters
		{"Name@Domain", "", false},
	}

	for _, tc := range cases {
		got, ok := ValidateName(tc.in)
		if ok != tc.valid {
			t.Fatalf("ValidateName(%q) valid = %v, want %v", tc.in, ok, tc.valid)
		}
		if got != tc.want {
			t.Fatalf("ValidateName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidatePhoneBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		want  string
		valid bool
	}{
		{"12345", "", false},              // 5 digits
		{"123456", "123456", true},        // 6 digits
		{"381-555-1234", "3815551234", true},
		{"(381) 555 1234", "3815551234", true},
		{"+54 381 555 1234", "543815551234", true},
		{"123456789012345", "123456789012345", true},  // 15 digits
		{"1234567890123456", "", false},               // 16 digits
		{"no digits here", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ValidatePhone(tc.in)
		if ok != tc.valid {
			t.Fatalf("ValidatePhone(%q) valid = %v, want %v", tc.in, ok, tc.valid)
		}
		if got != tc.want {
			t.Fatalf("ValidatePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsAffirmative(t *testing.T) {
	t.Parallel()

	affirmative := []string{"yes", "Yes!", "  OK  ", "vale", "perfect", "si", "yeah"}
	for _, in := range affirmative {
		if !IsAffirmative(in) {
			t.Fatalf("expected %q to be affirmative", in)
		}
	}

	negative := []string{"", "no", "maybe", "yes please", "nope"}
	for _, in := range negative {
		if IsAffirmative(in) {
			t.Fatalf("expected %q to not be affirmative", in)
		}
	}
}

func TestIsSkipRequest(t *testing.T) {
	t.Parallel()

	skips := []string{"skip", "no", "NONE", "nothing", "I prefer not to say", "skip it"}
	for _, in := range skips {
		if !IsSkipRequest(in) {
			t.Fatalf("expected %q to be a skip request", in)
		}
	}

	notSkips := []string{"", "3815551234", "call me"}
	for _, in := range notSkips {
		if IsSkipRequest(in) {
			t.Fatalf("expected %q to not be a skip request", in)
		}
	}
}
