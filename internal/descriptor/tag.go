package descriptor

import "strings"

// token is one entry of a binding tag value: a bare name ("optional", a
// numeric id, a method name) optionally followed by parenthesized params.
type token struct {
	name   string
	params []string
}

// parseTokens tokenizes a raw tag value (e.g. "101,102,optional" or
// "Submit(401,402)") into tokens.
// Behavior:
//   - Splits on top-level commas only (commas inside parentheses do not split tokens).
//   - Trims whitespace around tokens and parameters.
//   - Empty tokens (from leading/trailing commas) are skipped.
//   - Parameters are split by commas; nested parentheses inside parameters are not parsed specially.
//   - Does not support quotes or escaping inside parameters.
func parseTokens(tag string) []token {
	var tokens []token
	if tag == "" || tag == "-" {
		return tokens
	}

	var raw []string
	depth := 0
	start := 0
	for i, r := range tag {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				raw = append(raw, strings.TrimSpace(tag[start:i]))
				start = i + 1
			}
		}
	}
	// Append the last token
	if start <= len(tag) {
		raw = append(raw, strings.TrimSpace(tag[start:]))
	}

	for _, tok := range raw {
		if tok == "" {
			continue
		}
		name := tok
		var params []string
		if idx := strings.IndexRune(tok, '('); idx != -1 && strings.HasSuffix(tok, ")") {
			name = strings.TrimSpace(tok[:idx])
			inner := strings.TrimSpace(tok[idx+1 : len(tok)-1])
			if inner != "" {
				parts := strings.Split(inner, ",")
				for _, p := range parts {
					p = strings.TrimSpace(p)
					if p != "" {
						params = append(params, p)
					}
				}
			}
		}
		if name != "" {
			tokens = append(tokens, token{name: name, params: params})
		}
	}
	return tokens
}
