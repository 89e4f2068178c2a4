package core

import "strings"

// SplitRequestList splits a comma-joined request-list key into its
// individual request tokens. Commas inside double-quoted spans do not
// split; surrounding whitespace and the quotes that protected a token
// are trimmed from every piece.
func SplitRequestList(raw string) []string {
	var tokens []string
	start := 0
	inQuote := false
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				tokens = append(tokens, trimRequestToken(raw[start:i]))
				start = i + 1
			}
		}
	}
	return append(tokens, trimRequestToken(raw[start:]))
}

func trimRequestToken(token string) string {
	trimmed := strings.TrimSpace(token)
	trimmed = strings.Trim(trimmed, `"`)
	return strings.TrimSpace(trimmed)
}

// SplitNameAndSpec splits one request token into its package name and
// effective version spec. A leading @ marks a scoped name that extends
// through the second @; otherwise the first @ ends the name. A token
// with no separator at all is a bare name with an empty spec.
func SplitNameAndSpec(token string) (string, string) {
	search := token
	offset := 0
	if strings.HasPrefix(token, "@") {
		search = token[1:]
		offset = 1
	}
	at := strings.Index(search, "@")
	if at < 0 {
		return token, ""
	}
	return token[:offset+at], effectiveSpec(token[offset+at+1:])
}

// effectiveSpec reduces a raw URL spec to the version information it
// carries: the fragment after the first # past a URL scheme marker,
// with a literal semver: prefix stripped so the remainder reads as a
// plain range. Every other spec passes through verbatim.
func effectiveSpec(spec string) string {
	scheme := strings.Index(spec, "://")
	if scheme < 0 {
		return spec
	}
	hash := strings.Index(spec[scheme:], "#")
	if hash < 0 {
		return spec
	}
	fragment := spec[scheme+hash+1:]
	return strings.TrimPrefix(fragment, "semver:")
}
