package directive

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-paramdoc/pkg/fragment"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
)

// Invocation is one occurrence of a directive in a documentation source.
type Invocation struct {
	Name      string
	Arguments []string
	Content   []string
	BlockText string
	Source    string
	Line      int
}

// Handler renders an invocation into fragment nodes.
type Handler func(ctx context.Context, inv Invocation) ([]fragment.Node, error)

// Directive declares a directive's argument shape together with its handler.
type Directive struct {
	Name              string
	RequiredArguments int
	OptionalArguments int
	HasContent        bool
	Handler           Handler
}

// UsageError reports an invocation that does not match the directive
// declaration. It is always reported inline.
type UsageError struct {
	Directive string
	Detail    string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Error in %q directive: %s", e.Directive, e.Detail)
}

// Table is the registration table mapping directive names to handlers.
type Table struct {
	mu         sync.RWMutex
	directives map[string]Directive
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{directives: make(map[string]Directive)}
}

// Register adds a directive. Duplicate names return an error.
func (t *Table) Register(d Directive) error {
	if d.Name == "" {
		return errors.New("directive: name is required")
	}
	if d.Handler == nil {
		return fmt.Errorf("directive: %q handler is required", d.Name)
	}
	if d.RequiredArguments < 0 || d.OptionalArguments < 0 {
		return fmt.Errorf("directive: %q argument counts must not be negative", d.Name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.directives[d.Name]; exists {
		return fmt.Errorf("directive: %q already registered", d.Name)
	}
	t.directives[d.Name] = d
	return nil
}

// MustRegister panics on registration failure.
func (t *Table) MustRegister(d Directive) {
	if err := t.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the directive registered under name.
func (t *Table) Lookup(name string) (Directive, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	d, ok := t.directives[name]
	return d, ok
}

// Names returns the registered directive names, sorted.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.directives))
	for name := range t.directives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run validates the invocation against its declaration and dispatches it.
// Reportable failures come back as a single error SystemMessage with a nil
// error; any other failure is returned unchanged.
func (t *Table) Run(ctx context.Context, inv Invocation) ([]fragment.Node, error) {
	d, ok := t.Lookup(inv.Name)
	if !ok {
		return []fragment.Node{Report(inv, fmt.Errorf("unknown directive type %q", inv.Name))}, nil
	}
	if err := d.check(inv); err != nil {
		return []fragment.Node{Report(inv, err)}, nil
	}

	nodes, err := d.Handler(ctx, inv)
	if err != nil {
		if IsReportable(err) {
			return []fragment.Node{Report(inv, err)}, nil
		}
		return nil, err
	}
	return nodes, nil
}

func (d Directive) check(inv Invocation) error {
	got := len(inv.Arguments)
	if got < d.RequiredArguments {
		return &UsageError{Directive: d.Name, Detail: fmt.Sprintf("%d argument(s) required, %d supplied.", d.RequiredArguments, got)}
	}
	if limit := d.RequiredArguments + d.OptionalArguments; got > limit {
		return &UsageError{Directive: d.Name, Detail: fmt.Sprintf("maximum %d argument(s) allowed, %d supplied.", limit, got)}
	}
	if !d.HasContent && hasText(inv.Content) {
		return &UsageError{Directive: d.Name, Detail: "no content permitted."}
	}
	return nil
}

// IsReportable reports whether err should become an inline diagnostic.
func IsReportable(err error) bool {
	var usage *UsageError
	return errors.As(err, &usage) || paramdata.IsReportable(err)
}

// Report builds the error SystemMessage for a failed invocation, echoing the
// invoking block as a literal block.
func Report(inv Invocation, err error) fragment.SystemMessage {
	msg := fragment.SystemMessage{
		Level:   fragment.LevelError,
		Source:  inv.Source,
		Line:    inv.Line,
		Message: err.Error(),
	}
	if inv.BlockText != "" {
		msg.Children = []fragment.Node{fragment.LiteralBlock{Text: inv.BlockText}}
	}
	return msg
}

func hasText(lines []string) bool {
	for _, line := range lines {
		for _, r := range line {
			if r != ' ' && r != '\t' {
				return true
			}
		}
	}
	return false
}
