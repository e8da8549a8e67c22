// Package tagtext implements the lightweight tag protocol used for structured
// model replies: values wrapped in <tag>…</tag> and bare markers such as
// <already> or <refuse>. All string matching for model replies lives here.
package tagtext

import "strings"

// Extract returns the text strictly between the first "<tag>" in text and the
// first "</tag>" that follows it. ok is false when either delimiter is missing.
func Extract(text, tag string) (value string, ok bool) {
	_, rest, found := strings.Cut(text, "<"+tag+">")
	if !found {
		return "", false
	}
	value, _, found = strings.Cut(rest, "</"+tag+">")
	if !found {
		return "", false
	}
	return value, true
}

// HasMarker reports whether reply begins with the bare <marker>, ignoring case
// and leading whitespace.
func HasMarker(reply, marker string) bool {
	head := strings.ToLower(strings.TrimLeft(reply, " \t\r\n"))
	return strings.HasPrefix(head, "<"+strings.ToLower(marker)+">")
}
