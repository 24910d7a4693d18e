package markup

import (
	"regexp"
	"strings"
)

var braceRun = regexp.MustCompile(`\{([^}]+)\}`)

const (
	openBrace  = `{{ "{" }}`
	closeBrace = `{{ "}" }}`
)

// EscapeBraces rewrites every {...} run so that a Go text/template or
// html/template executing the result prints the run literally instead of
// treating it as an action. Opening braces inside a run are escaped as
// well, which keeps "{{x}}" from forming a delimiter.
func EscapeBraces(s string) string {
	matches := braceRun.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(matches)*(len(openBrace)+len(closeBrace)))

	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		b.WriteString(openBrace)
		b.WriteString(strings.ReplaceAll(s[m[2]:m[3]], "{", openBrace))
		b.WriteString(closeBrace)
		last = m[1]
	}
	b.WriteString(s[last:])

	return b.String()
}
