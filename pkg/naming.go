package extractor

import (
	"strings"
	"unicode"
)

// KebabCase converts an AWS-style PascalCase or camelCase name to kebab-case.
// Acronym runs stay together: "DBInstanceID" becomes "db-instance-id".
// Already-kebab input passes through unchanged and the conversion is
// idempotent. Empty input yields empty output.
func KebabCase(name string) string {
	if name == "" {
		return ""
	}

	runes := []rune(name)
	var sb strings.Builder
	sb.Grow(len(name) + len(name)/4)

	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				// boundary after a lowercase letter or digit (fooBar),
				// or at the end of an acronym run (DBInstance)
				if unicode.IsLower(prev) || unicode.IsDigit(prev) {
					sb.WriteByte('-')
				} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					sb.WriteByte('-')
				}
			}
			sb.WriteRune(unicode.ToLower(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		default:
			// any punctuation or whitespace becomes a separator
			sb.WriteByte('-')
		}
	}

	// collapse separator runs introduced by punctuation replacement
	out := sb.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}

// normalizeFieldName lowercases a member name and strips separators, so that
// "NextToken", "nextToken" and "next-token" all compare equal
func normalizeFieldName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
