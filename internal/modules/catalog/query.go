package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Query string keys understood by ParseQuery.
const (
	QuerySearch   = "q"
	QueryMinPrice = "min_price"
	QueryMaxPrice = "max_price"
	QueryCategory = "category"
	QueryFlavor   = "flavor"
	QueryUseCase  = "use_case"
)

// ErrInvalidFilter is wrapped by every FilterError.
var ErrInvalidFilter = errors.New("invalid filter")

// FilterError lists the query parameters that could not be turned into a
// FilterState, keyed by parameter name.
type FilterError struct {
	Fields map[string]string
}

func (e *FilterError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidFilter, strings.Join(parts, "; "))
}

func (e *FilterError) Unwrap() error { return ErrInvalidFilter }

// ParseQuery builds a FilterState from URL query values. Absent keys keep
// their default; facet keys may repeat and may also carry comma separated
// values. Duplicate selections are collapsed.
func ParseQuery(q url.Values) (FilterState, error) {
	state := DefaultFilterState()
	fields := map[string]string{}

	state.SearchTerm = q.Get(QuerySearch)

	if v := q.Get(QueryMinPrice); v != "" {
		d, err := parsePrice(v)
		if err != nil {
			fields[QueryMinPrice] = err.Error()
		} else {
			state.PriceRange.Min = d
		}
	}
	if v := q.Get(QueryMaxPrice); v != "" {
		d, err := parsePrice(v)
		if err != nil {
			fields[QueryMaxPrice] = err.Error()
		} else {
			state.PriceRange.Max = d
		}
	}
	if len(fields) == 0 && state.PriceRange.Min.GreaterThan(state.PriceRange.Max) {
		fields[QueryMinPrice] = "must not exceed max_price"
	}

	for _, v := range splitValues(q[QueryCategory]) {
		c := Category(v)
		if !c.Valid() {
			fields[QueryCategory] = fmt.Sprintf("unknown category %q", v)
			continue
		}
		state.Categories = appendUnique(state.Categories, c)
	}
	for _, v := range splitValues(q[QueryFlavor]) {
		state.Flavors = appendUnique(state.Flavors, v)
	}
	for _, v := range splitValues(q[QueryUseCase]) {
		u := UseCase(v)
		if !u.Valid() {
			fields[QueryUseCase] = fmt.Sprintf("unknown use case %q", v)
			continue
		}
		state.UseCases = appendUnique(state.UseCases, u)
	}

	if len(fields) > 0 {
		return FilterState{}, &FilterError{Fields: fields}
	}
	return state, nil
}

// Values encodes s back into query values. Defaults are omitted, so the
// default state encodes to an empty query.
func (s FilterState) Values() url.Values {
	q := url.Values{}
	if s.SearchTerm != "" {
		q.Set(QuerySearch, s.SearchTerm)
	}
	if !s.PriceRange.Min.Equal(DefaultMinPrice) {
		q.Set(QueryMinPrice, s.PriceRange.Min.String())
	}
	if !s.PriceRange.Max.Equal(DefaultMaxPrice) {
		q.Set(QueryMaxPrice, s.PriceRange.Max.String())
	}
	for _, c := range s.Categories {
		q.Add(QueryCategory, string(c))
	}
	for _, f := range s.Flavors {
		q.Add(QueryFlavor, f)
	}
	for _, u := range s.UseCases {
		q.Add(QueryUseCase, string(u))
	}
	return q
}

func parsePrice(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Decimal{}, errors.New("must be a number")
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errors.New("must not be negative")
	}
	return d, nil
}

func splitValues(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func appendUnique[T comparable](set []T, v T) []T {
	if slices.Contains(set, v) {
		return set
	}
	return append(set, v)
}
