package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		path    string
		wantErr bool
	}{
		{in: "2025031102", want: "2025031102", path: "articles/2025031102.md"},
		{in: "/sxhub/2025031102", want: "sxhub/2025031102", path: "articles/sxhub/2025031102.md"},
		{in: "  kafka/ ", want: "kafka", path: "articles/kafka.md"},
		{in: "", wantErr: true},
		{in: "/", wantErr: true},
		{in: "../etc/passwd", wantErr: true},
		{in: "a//b", wantErr: true},
		{in: "a/./b", wantErr: true},
		{in: `a\b`, wantErr: true},
		{in: "a?b", wantErr: true},
		{in: "post.md", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ref, err := ParseRef(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRef)
				assert.True(t, ref.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref.String())
			assert.Equal(t, tt.path, ref.Path())
		})
	}
}

func TestRefURLPathEscapesSegments(t *testing.T) {
	ref, err := ParseRef("notes/hello world")
	require.NoError(t, err)
	assert.Equal(t, "articles/notes/hello%20world.md", ref.URLPath())
	assert.Equal(t, "hello world", ref.Name())
}
