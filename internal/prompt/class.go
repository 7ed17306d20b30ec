package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-paramdoc/pkg/paramdata"
)

const classPageSize = 15

// PickClass lists the document's classes in data order and returns the name
// the user selected.
func PickClass(ctx context.Context, driver Driver, doc paramdata.Document) (string, error) {
	names := doc.Names()
	if len(names) == 0 {
		return "", ErrNoOptions
	}
	if driver == nil {
		driver = NewSurveyDriver()
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message:  "Class",
		Options:  names,
		Help:     fmt.Sprintf("Classes defined in %s", doc.Location),
		PageSize: classPageSize,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(names) {
		return "", fmt.Errorf("prompt: selection %d out of range", idx)
	}
	return names[idx], nil
}
