package registration

import (
	"regexp"
	"strings"
	"unicode"
)

// Allowed name characters: letters (including the desk's accented set),
// spaces, hyphens, apostrophes.
var nameAllowedPattern = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s\-']+$`)

// punctuationPattern strips everything but letters, digits, and whitespace.
var punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

var affirmativeWords = map[string]bool{
	"yes": true, "si": true, "s": true, "y": true, "ok": true, "vale": true,
	"correct": true, "confirm": true, "clear": true, "go": true, "good": true,
	"affirmative": true, "yep": true, "yeah": true, "simon": true,
	"exact": true, "perfect": true, "fine": true,
}

var skipPhrases = []string{"skip", "no", "none", "nothing", "prefer not"}

// ValidateName checks that text looks like a person's name: at least two
// characters, not purely digits, at least half letters, and no characters
// outside the allowed set. Returns the trimmed name on success.
func ValidateName(text string) (string, bool) {
	cleaned := strings.TrimSpace(text)
	runes := []rune(cleaned)
	if len(runes) < 2 {
		return "", false
	}

	digitsOnly := true
	letters := 0
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			digitsOnly = false
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if digitsOnly {
		return "", false
	}
	if letters*2 < len(runes) {
		return "", false
	}
	if !nameAllowedPattern.MatchString(cleaned) {
		return "", false
	}

	return cleaned, true
}

// ValidatePhone extracts the digits from text and accepts 6 to 15 of them
// (short local numbers up to E.164). Returns the digit string on success.
func ValidatePhone(text string) (string, bool) {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	n := digits.Len()
	if n < 6 || n > 15 {
		return "", false
	}
	return digits.String(), true
}

// IsAffirmative reports whether text, stripped of punctuation and case, is
// one of the fixed affirmative words.
func IsAffirmative(text string) bool {
	cleaned := punctuationPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return false
	}
	return affirmativeWords[cleaned]
}

// IsSkipRequest reports whether the user wants to skip the current field,
// matching the fixed skip phrases as whole string or substring.
func IsSkipRequest(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return false
	}
	for _, phrase := range skipPhrases {
		if normalized == phrase || strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}
