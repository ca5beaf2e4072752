package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSlugTestService() *service {
	svc := newTestService(new(mockGroupRepository), new(mockUserRepository), new(mockContentRepository))
	return svc.(*service)
}

func TestCanonicalizeSlug(t *testing.T) {
	svc := newSlugTestService()

	t.Run("lower-case slug continues unchanged", func(t *testing.T) {
		got := svc.canonicalizeSlug("moderators", false)

		assert.False(t, got.Redirect)
		assert.Equal(t, "moderators", got.Slug)
		assert.Empty(t, got.Location)
	})

	t.Run("mixed-case browser request redirects", func(t *testing.T) {
		got := svc.canonicalizeSlug("Moderators", false)

		assert.True(t, got.Redirect)
		assert.Equal(t, "moderators", got.Slug)
		assert.Equal(t, "https://example.com/groups/moderators", got.Location)
	})

	t.Run("mixed-case API request substitutes in place", func(t *testing.T) {
		got := svc.canonicalizeSlug("MODERATORS", true)

		assert.False(t, got.Redirect)
		assert.Equal(t, "moderators", got.Slug)
		assert.Empty(t, got.Location)
	})

	t.Run("idempotent for any input", func(t *testing.T) {
		for _, raw := range []string{"Staff", "STAFF", "staff", "sTaFf-2024"} {
			first := svc.canonicalizeSlug(raw, false)
			second := svc.canonicalizeSlug(first.Slug, false)

			assert.False(t, second.Redirect, "canonical slug %q must never redirect again", first.Slug)
			assert.Equal(t, first.Slug, second.Slug)
		}
	})
}
