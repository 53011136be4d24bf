package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Filter selects events from the feed via a jq expression that is
// evaluated against the raw event mapping.
// The expression must return a single boolean result per event.
type Filter struct {
	query *gojq.Query
}

func NewFilter(jqQuery string) (*Filter, error) {
	query, err := gojq.Parse(jqQuery)
	if err != nil {
		return nil, err
	}

	return &Filter{query: query}, nil
}

// Match evaluates the filter expression for one raw event mapping.
func (f *Filter) Match(ctx context.Context, rawEvent map[string]any) (bool, error) {
	result, errs := goJQIterToSlice(f.query.RunWithContext(ctx, rawEvent))
	if len(errs) != 0 {
		return false, fmt.Errorf("jq query returned errors, query: %q, errors: %s", f.query.String(), errString(errs))
	}

	if len(result) != 1 {
		return false, fmt.Errorf("jq query returned %d results, expected 1, query: %q", len(result), f.query.String())
	}

	match, ok := result[0].(bool)
	if !ok {
		return false, fmt.Errorf(
			"jq query returned non-bool result: %+v (%T), query: %q",
			result[0], result[0], f.query.String(),
		)
	}

	return match, nil
}

func (f *Filter) String() string {
	return f.query.String()
}

func goJQIterToSlice(iter gojq.Iter) ([]any, []error) {
	var result []any
	var errors []error

	for {
		res, ok := iter.Next()
		if !ok {
			return result, errors
		}

		if err, isErr := res.(error); isErr {
			errors = append(errors, err)
			continue
		}

		result = append(result, res)
	}
}

func errString(errs []error) string {
	var result strings.Builder

	for i, err := range errs {
		if i > 0 {
			result.WriteString("; ")
		}

		result.WriteString(fmt.Sprintf("error %d: %s", i, err))
	}

	return result.String()
}
