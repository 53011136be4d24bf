package feed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMatch(t *testing.T) {
	rawEvent := map[string]any{
		"type": "PushEvent",
		"repo": map[string]any{"name": "octocat/Hello-World"},
	}

	testcases := []struct {
		name      string
		query     string
		expected  bool
		expectErr bool
	}{
		{
			name:     "matches",
			query:    `.type == "PushEvent"`,
			expected: true,
		},
		{
			name:     "mismatches",
			query:    `.type == "WatchEvent"`,
			expected: false,
		},
		{
			name:     "nestedField",
			query:    `.repo.name | startswith("octocat/")`,
			expected: true,
		},
		{
			name:      "nonBoolResult",
			query:     `.type`,
			expectErr: true,
		},
		{
			name:      "multipleResults",
			query:     `.type, .type`,
			expectErr: true,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			filter, err := NewFilter(tc.query)
			require.NoError(t, err)

			match, err := filter.Match(context.Background(), rawEvent)
			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, match)
		})
	}
}

func TestNewFilterInvalidQuery(t *testing.T) {
	_, err := NewFilter(".type ==")
	require.Error(t, err)
}
