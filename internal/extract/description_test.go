package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescription(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		selector string
		want     string
	}{
		{
			name:     "site selector keeps lines",
			html:     `<div class="content">ignored</div><div id="desc"><h2>About</h2><p>Build  APIs</p><script>x()</script></div>`,
			selector: "#desc",
			want:     "About\nBuild APIs",
		},
		{
			name: "class heuristic",
			html: `<div><p class="Job-Description">Remote role</p><li class="job-details-item">Python</li></div>`,
			want: "Remote role Python",
		},
		{
			name: "broad sweep",
			html: `<div>First</div><p>Second</p>`,
			want: "First Second",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Description(tt.html, tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescription_Empty(t *testing.T) {
	_, err := Description(`<span>nothing useful</span>`, "")
	assert.ErrorIs(t, err, ErrNoDescription)
}

func TestDetailChain(t *testing.T) {
	got, err := Extract(`<body><div id="main-content">Main</div></body>`, DetailChain()...)
	require.NoError(t, err)
	assert.Equal(t, "Main", got)

	got, err = Extract(`<body><span>only</span> body</body>`, DetailChain()...)
	require.NoError(t, err)
	assert.Equal(t, "only body", got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "żó", Truncate("żółw", 2))

	long := strings.Repeat("x", MaxDescriptionLen+100)
	got, err := Extract("<p>"+long+"</p>", BroadSweep())
	require.NoError(t, err)
	assert.Len(t, got, MaxDescriptionLen)
}

func TestIsUnavailable(t *testing.T) {
	assert.True(t, IsUnavailable(Unavailable("http")))
	assert.True(t, IsUnavailable(NoRenderer))
	assert.False(t, IsUnavailable(NoURL))
	assert.False(t, IsUnavailable("A real description"))
}
