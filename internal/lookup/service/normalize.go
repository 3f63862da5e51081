package service

import (
	"net/url"
	"strings"
	"unicode"
)

// Trailing legal forms carry no matching signal: user input and registry
// entries rarely agree on them.
var legalSuffixes = []string{"group", "inc", "llc", "ltd", "plc"}

// normalizeName — canonical form of a company name for comparison:
// lowercase, whitespace collapsed, separators and punctuation dropped,
// trailing legal suffix stripped, "&" folded to "and".
func normalizeName(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "-", " ", "_", " ").Replace(out)
	out = collapseSpaces(out)

	for _, suf := range legalSuffixes {
		if strings.HasSuffix(out, " "+suf) {
			out = strings.TrimSpace(strings.TrimSuffix(out, suf))
		}
	}

	out = strings.ReplaceAll(out, "&", "and")
	out = stripPunct(out)
	return collapseSpaces(out)
}

// normalizeAddress — like normalizeName but without suffix handling.
func normalizeAddress(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "-", " ", "_", " ").Replace(out)
	return collapseSpaces(stripPunct(out))
}

// normalizePostcode — uppercase with all internal whitespace removed, so
// "l7a 5eu", "L7A  5EU" and "L7A5EU" compare equal.
func normalizePostcode(s string) string {
	out := strings.ToUpper(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, out)
}

// outwardCode — the leading block of a normalized postcode (everything
// before the 3-character inward part). Empty when the postcode is too short
// to split.
func outwardCode(pc string) string {
	if len(pc) <= 3 {
		return ""
	}
	return pc[:len(pc)-3]
}

// normalizeDomain extracts the registrable host from URL-ish text: scheme,
// leading "@" or "www.", port, path and query are all dropped. Returns ""
// for absent or unparseable input; never fails.
func normalizeDomain(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "@")
	if low := strings.ToLower(s); !strings.HasPrefix(low, "http://") && !strings.HasPrefix(low, "https://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	return host
}

// stripPunct drops everything that is not a letter, digit or space.
func stripPunct(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			return r
		}
		return -1
	}, s)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
