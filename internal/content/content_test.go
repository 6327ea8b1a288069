package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostsNewestFirst(t *testing.T) {
	ps := Posts()
	for i := 1; i < len(ps); i++ {
		assert.True(t, ps[i-1].Published.After(ps[i].Published))
	}
}

func TestPostBySlug(t *testing.T) {
	p, ok := PostBySlug("cara-menggunakan-kode-promo")
	assert.True(t, ok)
	assert.NotEmpty(t, p.Body)

	_, ok = PostBySlug("missing")
	assert.False(t, ok)
}
