package mirror

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsHidden(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: ".git", want: true},
		{name: ".DS_Store", want: true},
		{name: "..double", want: true},
		{name: ".", want: true},
		{name: "visible", want: false},
		{name: "with.dot", want: false},
		{name: "trailing.", want: false},
		{name: " .space", want: false},
		{name: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsHidden(tt.name))
		})
	}
}

func TestHasHiddenSegment(t *testing.T) {
	requires := require.New(t)
	requires.False(HasHiddenSegment(""))
	requires.False(HasHiddenSegment("a/b/c"))
	requires.False(HasHiddenSegment("../a"))
	requires.True(HasHiddenSegment(".mirror"))
	requires.True(HasHiddenSegment("a/.cache/b"))
}
