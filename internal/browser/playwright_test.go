package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionsTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, Options{}.timeout())
	assert.Equal(t, DefaultTimeout, Options{Timeout: -time.Second}.timeout())
	assert.Equal(t, 5*time.Second, Options{Timeout: 5 * time.Second}.timeout())
}
