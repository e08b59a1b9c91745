// Package textnorm provides locale-insensitive text folding and a small
// similarity matcher used for near-match suggestions.
package textnorm

import "strings"

var accentReplacer = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
	"ü", "u",
	"ñ", "n",
)

// Normalize lower-cases, trims, and folds a fixed set of accented characters.
// Other character classes are left untouched. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return accentReplacer.Replace(strings.TrimSpace(strings.ToLower(text)))
}

// Similarity scores two strings in [0, 1] after normalization, where 1 means
// identical. The score is the Ratcliff/Obershelp ratio over matching runs.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	total := len(na) + len(nb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchingChars(na, nb)) / float64(total)
}

// BestMatch returns the option most similar to query, provided its score
// reaches threshold.
func BestMatch(query string, options []string, threshold float64) (string, float64, bool) {
	best := ""
	bestScore := 0.0
	for _, option := range options {
		if score := Similarity(query, option); score > bestScore {
			bestScore = score
			best = option
		}
	}
	if bestScore < threshold || best == "" {
		return "", 0, false
	}
	return best, bestScore, true
}

// matchingChars counts characters covered by recursively taking the longest
// common substring and matching what remains on either side of it.
func matchingChars(a, b string) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	count := size
	count += matchingChars(a[:ai], b[:bi])
	count += matchingChars(a[ai+size:], b[bi+size:])
	return count
}

func longestCommonSubstring(a, b string) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// lengths[j] is the run length ending at a[i-1], b[j-1]
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i-1] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > size {
					size = lengths[j]
					ai = i - size
					bi = j - size
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}
