package dynpath

import (
	"fmt"
	"slices"
	"strings"
)

const (
	variableDelim  = '?'
	referenceDelim = '|'
	quoteChars     = `"'`
	tokenOpen      = '<'
	tokenClose     = '>'
)

// token returns the canonical placeholder form of a variable name.
func token(name string) string {
	return string(tokenOpen) + name + string(tokenClose)
}

func unquote(value string) string {
	return strings.Trim(value, quoteChars)
}

// extractVariables rewrites every ?name? span into <name>, scanning left to right.
func extractVariables(value string) (string, error) {
	var out strings.Builder

	rest := value

	for {
		start := strings.IndexByte(rest, variableDelim)
		if start < 0 {
			out.WriteString(rest)

			break
		}

		length := strings.IndexByte(rest[start+1:], variableDelim)
		if length < 0 {
			return "", fmt.Errorf("%w: unpaired %q in %q", ErrFormat, variableDelim, value)
		}

		name := rest[start+1 : start+1+length]
		if name == "" {
			return "", fmt.Errorf("%w: empty variable name in %q", ErrFormat, value)
		}

		out.WriteString(rest[:start])
		out.WriteString(token(name))

		rest = rest[start+length+2:]
	}

	return out.String(), nil
}

// templateVariables returns the names of the <name> tokens in template in order
// of first appearance without duplicates.
func templateVariables(template string) []string {
	var names []string

	rest := template

	for {
		start := strings.IndexByte(rest, tokenOpen)
		if start < 0 {
			return names
		}

		rest = rest[start+1:]

		end := strings.IndexAny(rest, string([]byte{tokenOpen, tokenClose}))
		if end < 0 {
			return names
		}

		if rest[end] == tokenClose && end > 0 {
			names = appendUnique(names, rest[:end])
			rest = rest[end+1:]
		}
	}
}

// reference is a |section|key| marker located at value[start:end].
type reference struct {
	section string
	key     string
	start   int
	end     int
}

// nextReference finds the first reference marker in value. It reports false when
// the value contains no reference delimiter at all.
func nextReference(value string) (reference, bool, error) {
	start := strings.IndexByte(value, referenceDelim)
	if start < 0 {
		return reference{}, false, nil
	}

	sep := strings.IndexByte(value[start+1:], referenceDelim)
	if sep < 0 {
		return reference{}, false, fmt.Errorf("%w: unterminated reference in %q", ErrFormat, value)
	}

	sep += start + 1

	end := strings.IndexByte(value[sep+1:], referenceDelim)
	if end < 0 {
		return reference{}, false, fmt.Errorf("%w: unterminated reference in %q", ErrFormat, value)
	}

	end += sep + 1

	ref := reference{
		section: value[start+1 : sep],
		key:     value[sep+1 : end],
		start:   start,
		end:     end + 1,
	}

	if ref.section == "" || ref.key == "" {
		return reference{}, false, fmt.Errorf("%w: empty section or key in reference %q", ErrFormat, value[start:end+1])
	}

	return ref, true, nil
}

func appendUnique(names []string, more ...string) []string {
	for _, name := range more {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	return names
}
