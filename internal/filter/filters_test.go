package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalized(t *testing.T) {
	tests := []struct {
		name       string
		in         Filter
		wantLimit  int64
		wantOffset int64
	}{
		{"defaults pass through", NewFilter(DefaultLimit, 0), 10, 0},
		{"oversized limit clamps to max", NewFilter(1000, 0), 100, 0},
		{"limit at max is kept", NewFilter(100, 0), 100, 0},
		{"zero limit is allowed", NewFilter(0, 0), 0, 0},
		{"negative limit clamps to zero", NewFilter(-5, 0), 0, 0},
		{"negative offset clamps to zero", NewFilter(10, -20), 10, 0},
		{"large offset is kept", NewFilter(10, 1_000_000), 10, 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOffset, got.Offset)
		})
	}
}

func TestNormalizedClampedEqualsMax(t *testing.T) {
	// limit=1000 must behave identically to limit=100.
	assert.Equal(t, NewFilter(100, 0).Normalized(), NewFilter(1000, 0).Normalized())
}
