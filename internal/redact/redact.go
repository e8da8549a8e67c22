// Package redact provides utilities for redacting credentials from strings
// before they are logged or included in error reports. Provider error bodies and
// transport errors can echo request headers or URLs, so every model-call error
// passes through here on its way to the logs.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

// Precompiled regex patterns
var (
	anthropicKeyRegex = regexp.MustCompile(`sk-ant-[A-Za-z0-9_\-]{8,}`)
	googleKeyRegex    = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`)
	bearerRegex       = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]{8,}`)
	queryKeyRegex     = regexp.MustCompile(`(?i)([?&]key=)[^&\s"']+`)
	apiKeyRegex       = regexp.MustCompile(
		`(?i)(api[_-]?key|x-api-key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Ordered: specific key shapes first so the generic pattern does not
	// swallow their prefixes.
	rules = []struct {
		pattern     *regexp.Regexp
		replacement string
	}{
		{anthropicKeyRegex, RedactedKeyPlaceholder},
		{googleKeyRegex, RedactedKeyPlaceholder},
		{bearerRegex, "Bearer " + RedactedCredentialPlaceholder},
		{queryKeyRegex, "${1}" + RedactedKeyPlaceholder},
		{apiKeyRegex, "${1}${2}" + RedactedCredentialPlaceholder},
	}
)

// String redacts credentials from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, rule := range rules {
		result = rule.pattern.ReplaceAllString(result, rule.replacement)
	}
	return result
}

// Error redacts credentials from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
