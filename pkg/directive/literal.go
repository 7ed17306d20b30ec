package directive

import (
	"regexp"
	"strings"
)

// literalDirectives have bodies that docutils and MyST never parse as markup.
var literalDirectives = map[string]struct{}{
	"code":           {},
	"code-block":     {},
	"sourcecode":     {},
	"parsed-literal": {},
	"raw":            {},
	"math":           {},
}

var (
	rstAnyDirective = regexp.MustCompile(`^[ \t]*\.\.[ \t]+([A-Za-z0-9][A-Za-z0-9_.:+-]*?)[ \t]?::(?:[ \t]|$)`)
	fenceOpener     = regexp.MustCompile("^[ \\t]*(`{3,}|~{3,})(.*)$")
	fenceDirective  = regexp.MustCompile(`^\{([A-Za-z0-9][A-Za-z0-9_.:+-]*)\}`)
)

// literalLines marks the lines that sit inside literal or code regions, where
// directive markers are example text rather than invocations.
func literalLines(lines []string, syntax Syntax) []bool {
	if syntax == SyntaxMyST {
		return literalLinesMyST(lines)
	}
	return literalLinesRST(lines)
}

// literalLinesRST marks the indented region after a paragraph ending in "::"
// or after a code-style directive. The region runs over blank lines and lines
// indented past the opener.
func literalLinesRST(lines []string) []bool {
	marked := make([]bool, len(lines))
	for i := 0; i < len(lines); i++ {
		if !opensLiteralRST(lines[i]) {
			continue
		}
		indent := indentWidth(lines[i])
		j := i + 1
		for ; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) != "" && indentWidth(lines[j]) <= indent {
				break
			}
			marked[j] = true
		}
		i = j - 1
	}
	return marked
}

func opensLiteralRST(line string) bool {
	trimmed := strings.TrimSpace(line)
	if m := rstAnyDirective.FindStringSubmatch(line); m != nil {
		_, ok := literalDirectives[m[1]]
		return ok
	}
	if strings.HasPrefix(trimmed, "..") {
		return false
	}
	return strings.HasSuffix(trimmed, "::")
}

// literalLinesMyST marks the body of plain code fences and code-style
// directive fences up to the matching closing fence. Other directive fences
// are stepped over unmarked so their own closing fence is not read as an
// opener.
func literalLinesMyST(lines []string) []bool {
	marked := make([]bool, len(lines))
	for i := 0; i < len(lines); i++ {
		m := fenceOpener.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		fence := m[1]
		literal := true
		if d := fenceDirective.FindStringSubmatch(strings.TrimSpace(m[2])); d != nil {
			_, literal = literalDirectives[d[1]]
		}
		j := i + 1
		for ; j < len(lines); j++ {
			if closesFence(lines[j], fence) {
				break
			}
			marked[j] = literal
		}
		i = j
	}
	return marked
}

func closesFence(line, fence string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, fence) && strings.Trim(trimmed, fence[:1]) == ""
}
