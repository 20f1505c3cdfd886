package keywords

import (
	"context"
	"errors"
	"testing"

	"go-jobsearch-automation/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vocab = Vocabulary{
	Skills:      []string{"python", "django", "aws", "docker", "rest api"},
	Roles:       []string{"software engineer", "backend developer"},
	Preferences: []string{"remote", "ngo"},
}

type fakeResume struct {
	text string
	err  error
}

func (f fakeResume) ExtractText(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func TestExtract(t *testing.T) {
	e := NewExtractor(vocab)

	tests := []struct {
		name   string
		text   string
		skills []string
		roles  []string
	}{
		{
			name:   "case insensitive",
			text:   "Senior BACKEND Developer. Built REST API services in Python on AWS.",
			skills: []string{"python", "aws", "rest api"},
			roles:  []string{"backend developer"},
		},
		{
			name:   "vocabulary order not text order",
			text:   "docker then django",
			skills: []string{"django", "docker"},
		},
		{
			name: "nothing found",
			text: "gardener",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := e.Extract(tt.text)
			assert.Equal(t, tt.skills, nilIfEmpty(set.Skills()))
			assert.Equal(t, tt.roles, nilIfEmpty(set.Roles()))
			assert.Equal(t, vocab.Preferences, set.Preferences())
		})
	}
}

func TestSetIsImmutable(t *testing.T) {
	set := NewSet([]string{"python", "python", "aws"}, nil, nil)
	assert.Equal(t, []string{"python", "aws"}, set.Skills())

	skills := set.Skills()
	skills[0] = "cobol"
	assert.True(t, set.HasSkill("python"))
	assert.False(t, set.HasSkill("cobol"))
}

func TestFromResume(t *testing.T) {
	e := NewExtractor(vocab)

	t.Run("ok", func(t *testing.T) {
		set, err := e.FromResume(context.Background(), fakeResume{text: "Software Engineer, Docker"}, "cv.pdf")
		require.NoError(t, err)
		assert.True(t, set.HasSkill("docker"))
		assert.True(t, set.HasRole("software engineer"))
	})

	t.Run("missing resume", func(t *testing.T) {
		set, err := e.FromResume(context.Background(), fakeResume{err: resume.ErrNotFound}, "cv.pdf")
		assert.ErrorIs(t, err, resume.ErrNotFound)
		assert.True(t, set.Empty())
	})

	t.Run("unparseable resume", func(t *testing.T) {
		_, err := e.FromResume(context.Background(), fakeResume{err: errors.Join(resume.ErrParse)}, "cv.pdf")
		assert.ErrorIs(t, err, resume.ErrParse)
	})
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestNormalizer(t *testing.T) {
	n := NewNormalizer()
	assert.Equal(t, "developpeur backend", n.String("Développeur BACKEND"))

	set := NewExtractor(Vocabulary{Roles: []string{"ingénieur logiciel"}}).Extract("INGENIEUR LOGICIEL senior")
	assert.Equal(t, []string{"ingénieur logiciel"}, set.Roles())
}
