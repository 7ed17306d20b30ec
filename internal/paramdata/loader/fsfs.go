package loader

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-paramdoc/pkg/paramdata"
)

type fsReader struct {
	files fs.FS
}

func (r fsReader) read(ctx context.Context, name string) ([]byte, error) {
	if r.files == nil {
		return nil, errors.New("paramdata loader: fs is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) {
		return nil, &paramdata.SourceError{Location: name}
	}

	info, err := fs.Stat(r.files, name)
	if err != nil {
		return nil, &paramdata.SourceError{Location: name, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &paramdata.SourceError{Location: name}
	}

	data, err := fs.ReadFile(r.files, name)
	if err != nil {
		return nil, &paramdata.SourceError{Location: name, Err: err}
	}
	return data, nil
}
