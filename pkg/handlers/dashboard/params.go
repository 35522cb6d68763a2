package dashboard

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
)

// parseParams reads category, years, max_rows and seed from the query string,
// falling back to defaults for missing values.
func parseParams(r *http.Request, defaults domain.Params) (domain.Params, error) {
	q := r.URL.Query()
	params := defaults

	if v := q.Get("category"); v != "" {
		c, err := domain.ParseCategory(v)
		if err != nil {
			return domain.Params{}, fmt.Errorf("%w: %w", domain.ErrInvalidParams, err)
		}
		params.Category = c
	}

	var err error
	if params.Years, err = intParam(q, "years", params.Years); err != nil {
		return domain.Params{}, err
	}
	if params.MaxRows, err = intParam(q, "max_rows", params.MaxRows); err != nil {
		return domain.Params{}, err
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return domain.Params{}, fmt.Errorf("%w: invalid 'seed' value %q", domain.ErrInvalidParams, v)
		}
		params.Seed = seed
	}

	return params, params.Validate()
}

func intParam(q url.Values, key string, fallback int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid '%s' value %q", domain.ErrInvalidParams, key, v)
	}
	return n, nil
}

func queryString(p domain.Params) string {
	q := url.Values{}
	q.Set("category", string(p.Category))
	q.Set("years", strconv.Itoa(p.Years))
	q.Set("max_rows", strconv.Itoa(p.MaxRows))
	q.Set("seed", strconv.FormatUint(p.Seed, 10))
	return q.Encode()
}
