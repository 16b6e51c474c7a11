package match

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultMinSimilarity is the lowest normalized similarity a name must reach
// to be offered as a suggestion.
const DefaultMinSimilarity = 0.5

// Candidate is a known name scored against the name that was not found.
type Candidate struct {
	Name  string
	Score float64 // normalized similarity, 1.0 for identical names
}

// CandidateList is sorted by descending score, then by name.
type CandidateList []Candidate

// RankCandidates scores every known name against the missing one.
func RankCandidates(missing string, known []string) CandidateList {
	want := normalizeName(missing)

	list := make(CandidateList, 0, len(known))
	for _, name := range known {
		list = append(list, Candidate{Name: name, Score: similarity(want, normalizeName(name))})
	}

	sort.Sort(list)

	return list
}

// Suggest returns the known name closest to missing, if it is similar enough.
func Suggest(missing string, known []string) (string, bool) {
	best := RankCandidates(missing, known).Best()
	if best == nil || best.Score < DefaultMinSimilarity {
		return "", false
	}

	return best.Name, true
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Best returns the highest ranked candidate, or nil if there are none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// normalizeName folds case and drops separators, so "customer_id",
// "customerId" and "CustomerID" normalize alike.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || r == ' ' {
			return -1
		}

		return r
	}, strings.ToLower(s))
}

// similarity is 1 - editDistance/maxLen, in runes.
func similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(editDistance(a, b))/float64(longest)
}

// editDistance is the Levenshtein distance between a and b, computed over
// runes with a single rolling row.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			next := min(row[i]+1, row[i-1]+1, diag+cost)
			diag, row[i] = row[i], next
		}
	}

	return row[len(ra)]
}
