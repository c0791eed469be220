package params

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

var ErrMissing = errors.New("missing url parameter")

// PathValue returns the decoded value of a chi URL parameter. chi matches
// against RawPath when the request carries one, in which case the value is
// still escaped.
func PathValue(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissing, key)
	}

	if r.URL.RawPath == "" {
		return value, nil
	}

	decoded, err := url.PathUnescape(value)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", key, err)
	}

	return decoded, nil
}
