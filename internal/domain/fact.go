package domain

// Fact is one atomic statement about a person, as read from the fact source.
// Facts are immutable once loaded.
type Fact string

// String returns the fact text.
func (f Fact) String() string {
	return string(f)
}

// Excerpt returns at most n runes of the fact, for progress logging.
func (f Fact) Excerpt(n int) string {
	runes := []rune(f)
	if n < 0 || len(runes) <= n {
		return string(f)
	}
	return string(runes[:n])
}
