package directive

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-paramdoc/pkg/fragment"
	"github.com/goliatone/go-paramdoc/pkg/render"
)

// Syntax selects how directive occurrences are recognised in a source.
type Syntax string

const (
	// SyntaxRST matches ".. name:: arguments" blocks.
	SyntaxRST Syntax = "rst"
	// SyntaxMyST matches "```{name} arguments" fenced blocks.
	SyntaxMyST Syntax = "myst"
)

// SyntaxForPath infers the syntax from a file extension. Unknown extensions
// are treated as reStructuredText.
func SyntaxForPath(path string) Syntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".myst":
		return SyntaxMyST
	default:
		return SyntaxRST
	}
}

// Result is the outcome of expanding one source.
type Result struct {
	Output      []byte
	Invocations int
	Diagnostics []fragment.SystemMessage
}

// ExpanderOption configures an Expander.
type ExpanderOption func(*Expander)

// WithRenderer forces the renderer used for every syntax.
func WithRenderer(name string) ExpanderOption {
	return func(e *Expander) {
		e.renderer = strings.TrimSpace(name)
	}
}

// WithRenderOptions sets the options passed to the renderer.
func WithRenderOptions(options render.RenderOptions) ExpanderOption {
	return func(e *Expander) {
		e.options = options
	}
}

// WithLogger logs every reported diagnostic.
func WithLogger(logger logrus.FieldLogger) ExpanderOption {
	return func(e *Expander) {
		e.logger = logger
	}
}

// Expander replaces directive blocks in documentation sources with their
// rendered output.
type Expander struct {
	table    *Table
	registry *render.Registry
	renderer string
	options  render.RenderOptions
	logger   logrus.FieldLogger
}

// NewExpander wires a directive table to a renderer registry.
func NewExpander(table *Table, registry *render.Registry, options ...ExpanderOption) (*Expander, error) {
	if table == nil {
		return nil, errors.New("directive: table is required")
	}
	if registry == nil {
		return nil, errors.New("directive: renderer registry is required")
	}
	e := &Expander{table: table, registry: registry}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.renderer != "" && !registry.Has(e.renderer) {
		return nil, fmt.Errorf("directive: renderer %q not registered", e.renderer)
	}
	return e, nil
}

// Expand scans content for registered directives, runs each one and splices
// the rendered output in place of the block. Reported diagnostics are
// rendered inline and collected in the result; any other failure aborts.
func (e *Expander) Expand(ctx context.Context, source string, content []byte, syntax Syntax) (Result, error) {
	renderer, err := e.rendererFor(syntax)
	if err != nil {
		return Result{}, err
	}

	text := string(content)
	trailingNewline := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if text == "" {
		lines = nil
	}

	var (
		result  Result
		out     = make([]string, 0, len(lines))
		literal = literalLines(lines, syntax)
	)
	for i := 0; i < len(lines); {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if literal[i] {
			out = append(out, lines[i])
			i++
			continue
		}

		blk, ok := e.match(lines, i, syntax)
		if !ok {
			out = append(out, lines[i])
			i++
			continue
		}

		inv := blk.invocation(source)
		nodes, err := e.table.Run(ctx, inv)
		if err != nil {
			return Result{}, fmt.Errorf("directive: %s:%d: %w", source, inv.Line, err)
		}
		result.Invocations++
		e.collect(&result, nodes)

		rendered, err := renderer.Render(ctx, nodes, e.options)
		if err != nil {
			return Result{}, fmt.Errorf("directive: %s:%d: render: %w", source, inv.Line, err)
		}
		out = append(out, indentBlock(string(rendered), blk.indent)...)
		i = blk.end
	}

	joined := strings.Join(out, "\n")
	if trailingNewline && len(out) > 0 {
		joined += "\n"
	}
	result.Output = []byte(joined)
	return result, nil
}

func (e *Expander) rendererFor(syntax Syntax) (render.Renderer, error) {
	name := e.renderer
	if name == "" {
		switch syntax {
		case SyntaxMyST:
			name = "markdown"
		case SyntaxRST:
			name = "rst"
		default:
			return nil, fmt.Errorf("directive: unsupported syntax %q", syntax)
		}
	}
	return e.registry.Get(name)
}

func (e *Expander) collect(result *Result, nodes []fragment.Node) {
	for _, node := range nodes {
		msg, ok := node.(fragment.SystemMessage)
		if !ok {
			continue
		}
		result.Diagnostics = append(result.Diagnostics, msg)
		if e.logger == nil {
			continue
		}
		entry := e.logger.WithFields(logrus.Fields{
			"source": msg.Source,
			"line":   msg.Line,
		})
		if msg.Level >= fragment.LevelError {
			entry.Error(msg.Message)
		} else {
			entry.Warn(msg.Message)
		}
	}
}

// block is a matched directive occurrence spanning lines[start:end].
type block struct {
	name      string
	arguments string
	content   []string
	text      []string
	indent    string
	start     int
	end       int
}

func (b block) invocation(source string) Invocation {
	return Invocation{
		Name:      b.name,
		Arguments: strings.Fields(b.arguments),
		Content:   b.content,
		BlockText: strings.Join(b.text, "\n"),
		Source:    source,
		Line:      b.start + 1,
	}
}

var (
	rstDirective  = regexp.MustCompile(`^([ \t]*)\.\.[ \t]+([A-Za-z0-9][A-Za-z0-9_.:+-]*?)[ \t]?::(?:[ \t]+(.*))?$`)
	mystDirective = regexp.MustCompile("^([ \\t]*)(`{3,}|~{3,})\\{([A-Za-z0-9][A-Za-z0-9_.:+-]*)\\}(?:[ \\t]+(.*))?$")
)

func (e *Expander) match(lines []string, i int, syntax Syntax) (block, bool) {
	switch syntax {
	case SyntaxMyST:
		return e.matchMyST(lines, i)
	default:
		return e.matchRST(lines, i)
	}
}

// matchRST follows the docutils block rules: the directive owns every
// following line that is blank or indented past the marker. Argument text
// continues on indented lines up to the first blank line; the remainder is
// content.
func (e *Expander) matchRST(lines []string, i int) (block, bool) {
	m := rstDirective.FindStringSubmatch(lines[i])
	if m == nil {
		return block{}, false
	}
	if _, ok := e.table.Lookup(m[2]); !ok {
		return block{}, false
	}

	indent := m[1]
	end := i + 1
	for end < len(lines) {
		line := lines[end]
		if strings.TrimSpace(line) == "" || indentWidth(line) > len(indent) {
			end++
			continue
		}
		break
	}
	for end > i+1 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	args := []string{strings.TrimSpace(m[3])}
	j := i + 1
	for ; j < end && strings.TrimSpace(lines[j]) != ""; j++ {
		args = append(args, strings.TrimSpace(lines[j]))
	}
	var content []string
	if j < end {
		content = dedent(lines[j+1 : end])
	}

	return block{
		name:      m[2],
		arguments: strings.Join(args, " "),
		content:   content,
		text:      lines[i:end],
		indent:    indent,
		start:     i,
		end:       end,
	}, true
}

// matchMyST matches a fenced directive closed by a fence of the same
// character at least as long as the opener. An unclosed fence runs to the end
// of the source.
func (e *Expander) matchMyST(lines []string, i int) (block, bool) {
	m := mystDirective.FindStringSubmatch(lines[i])
	if m == nil {
		return block{}, false
	}
	if _, ok := e.table.Lookup(m[3]); !ok {
		return block{}, false
	}

	fence := m[2]
	end := len(lines)
	inner := lines[i+1:]
	for j := i + 1; j < len(lines); j++ {
		if closesFence(lines[j], fence) {
			end = j + 1
			inner = lines[i+1 : j]
			break
		}
	}

	return block{
		name:      m[3],
		arguments: strings.TrimSpace(m[4]),
		content:   dedent(inner),
		text:      lines[i:end],
		indent:    m[1],
		start:     i,
		end:       end,
	}, true
}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func dedent(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	width := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if w := indentWidth(line); width < 0 || w < width {
			width = w
		}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" || width < 0 {
			continue
		}
		out[i] = line[width:]
	}
	return out
}

func indentBlock(rendered, indent string) []string {
	rendered = strings.TrimRight(rendered, "\n")
	if rendered == "" {
		return nil
	}
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return lines
}
