package loader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goliatone/go-paramdoc/pkg/paramdata"
)

// Loader implements paramdata.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fsReader
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ paramdata.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options paramdata.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        fsReader{files: options.FileSystem},
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load reads the source and parses it into a Document.
func (l *Loader) Load(ctx context.Context, src paramdata.Source) (paramdata.Document, error) {
	if src == nil {
		return paramdata.Document{}, paramdata.ErrNilSource
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case paramdata.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case paramdata.SourceKindFS:
		data, err = l.fs.read(ctx, src.Location())
	case paramdata.SourceKindURL:
		if !l.allowHTTP {
			return paramdata.Document{}, errors.New("paramdata loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("paramdata loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return paramdata.Document{}, err
	}

	return paramdata.Parse(src.Location(), data)
}
