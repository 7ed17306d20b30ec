package loader

import (
	"context"
	"os"

	"github.com/goliatone/go-paramdoc/pkg/paramdata"
)

// loadFile confirms path names a regular file before reading it so a missing
// file is classified ahead of any parse attempt.
func loadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, &paramdata.SourceError{Location: path}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &paramdata.SourceError{Location: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &paramdata.SourceError{Location: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &paramdata.SourceError{Location: path, Err: err}
	}
	return data, nil
}
