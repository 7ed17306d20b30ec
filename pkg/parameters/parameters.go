// Package parameters renders the parameter listing of a documented class as a
// nested bullet-list fragment.
package parameters

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-paramdoc/pkg/fragment"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
)

const (
	RequiredLabel = "Required:"
	OptionalLabel = "Optional:"
)

// Render loads the data file fresh, looks up className and builds its
// parameter list. A missing file fails with paramdata.ErrMissingSourceFile
// before any parse attempt and an absent class with paramdata.ErrUnknownClass;
// neither produces a partial fragment.
func Render(ctx context.Context, loader paramdata.Loader, src paramdata.Source, className string) (fragment.BulletList, error) {
	if loader == nil {
		return fragment.BulletList{}, errors.New("parameters: loader is required")
	}
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return fragment.BulletList{}, err
	}
	class, err := doc.Class(className)
	if err != nil {
		return fragment.BulletList{}, err
	}
	return Build(class), nil
}

// Build converts a class into the Required/Optional list. Empty partitions are
// omitted, so a class without parameters yields an empty list.
func Build(class paramdata.Class) fragment.BulletList {
	required, optional := class.Partition()

	var list fragment.BulletList
	if len(required) > 0 {
		list.Append(section(RequiredLabel, required))
	}
	if len(optional) > 0 {
		list.Append(section(OptionalLabel, optional))
	}
	return list
}

func section(label string, params []paramdata.Parameter) fragment.ListItem {
	items := fragment.BulletList{Items: make([]fragment.ListItem, 0, len(params))}
	for _, param := range params {
		items.Append(fragment.ListItem{Children: []fragment.Node{
			fragment.Paragraph{Children: []fragment.Node{
				fragment.Strong{Text: fmt.Sprintf("%s (%s) - ", param.Name, param.Type)},
				fragment.Text{Text: param.Description},
			}},
		}})
	}
	return fragment.ListItem{Children: []fragment.Node{
		fragment.Strong{Text: label},
		items,
	}}
}
