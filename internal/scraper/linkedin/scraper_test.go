package linkedin

import (
	"context"
	"testing"

	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/scraper"

	"github.com/stretchr/testify/assert"
)

func TestRun_AlwaysEmpty(t *testing.T) {
	kw := keywords.NewSet([]string{"python"}, []string{"software engineer"}, nil)
	res := scraper.Run(context.Background(), New(), kw)
	assert.NoError(t, res.Err)
	assert.Empty(t, res.Jobs)
	assert.Empty(t, res.Cards)
}
