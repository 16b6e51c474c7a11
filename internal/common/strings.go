package common

// UnknownStr is printed for enum values outside their known range.
const UnknownStr = "unknown"

// Plural returns word with an "s" appended unless n is one.
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
