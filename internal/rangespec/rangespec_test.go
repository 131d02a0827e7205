package rangespec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		members []int
		absent  []int
		want    string
	}{
		{
			name:    "single value",
			spec:    "5",
			members: []int{5},
			absent:  []int{4, 6},
			want:    "5",
		},
		{
			name:    "ranges and values",
			spec:    "1-3,5,7-9",
			members: []int{1, 2, 3, 5, 7, 8, 9},
			absent:  []int{0, 4, 6, 10},
			want:    "1-3,5,7-9",
		},
		{
			name:    "whitespace tolerated",
			spec:    " 1 - 3 , 5 ,\t7-9 ",
			members: []int{1, 3, 5, 7, 9},
			absent:  []int{4, 6},
			want:    "1-3,5,7-9",
		},
		{
			name:    "degenerate range",
			spec:    "4-4",
			members: []int{4},
			absent:  []int{3, 5},
			want:    "4",
		},
		{
			name:    "overlapping ranges merge",
			spec:    "5-8,1-3,4,7-10",
			members: []int{1, 4, 6, 10},
			absent:  []int{0, 11},
			want:    "1-10",
		},
		{
			name:    "zero is allowed",
			spec:    "0",
			members: []int{0},
			absent:  []int{1},
			want:    "0",
		},
		{
			name:   "empty spec",
			spec:   "",
			absent: []int{0, 1, 100},
			want:   "",
		},
		{
			name:    "empty tokens ignored",
			spec:    "1,,3,",
			members: []int{1, 3},
			absent:  []int{2},
			want:    "1,3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse(tt.spec)
			require.NoError(t, err)

			for _, n := range tt.members {
				assert.True(t, set.Contains(n), "expected %d in %q", n, tt.spec)
			}
			for _, n := range tt.absent {
				assert.False(t, set.Contains(n), "expected %d not in %q", n, tt.spec)
			}
			assert.Equal(t, tt.want, set.String())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		token string
	}{
		{name: "non-numeric", spec: "1,abc", token: "abc"},
		{name: "reversed range", spec: "9-3", token: "9-3"},
		{name: "negative value", spec: "-1", token: "-1"},
		{name: "missing range end", spec: "3-", token: "3-"},
		{name: "too many hyphens", spec: "1-2-3", token: "1-2-3"},
		{name: "decimal", spec: "1.5", token: "1.5"},
		{name: "signed", spec: "+4", token: "+4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse(tt.spec)
			require.Error(t, err)
			assert.Nil(t, set)
			assert.True(t, errors.Is(err, ErrInvalidRangeSpec))

			var specErr *SpecError
			require.True(t, errors.As(err, &specErr))
			assert.Equal(t, tt.spec, specErr.Spec)
			assert.Equal(t, tt.token, specErr.Token)
			assert.Contains(t, err.Error(), tt.spec)
		})
	}
}

// Membership for "a-b,c,d-e" is exactly [a,b] or c or [d,e].
func TestContainsMatchesDefinition(t *testing.T) {
	set, err := Parse("2-4,7,10-12")
	require.NoError(t, err)

	for n := 0; n <= 20; n++ {
		want := (n >= 2 && n <= 4) || n == 7 || (n >= 10 && n <= 12)
		assert.Equal(t, want, set.Contains(n), "n=%d", n)
	}
}

func TestNilSet(t *testing.T) {
	var s *Set
	assert.False(t, s.Contains(1))
	assert.True(t, s.Empty())
	assert.Nil(t, s.Intervals())
	assert.Equal(t, "", s.String())
}

func TestIntervalsReturnsCopy(t *testing.T) {
	set, err := Parse("1-3")
	require.NoError(t, err)

	ivs := set.Intervals()
	ivs[0].High = 100
	assert.False(t, set.Contains(50))
}
