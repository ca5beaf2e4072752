package service

import "strings"

// CanonicalSlug is the outcome of canonicalizing a user-supplied slug.
// Redirect is never set for API requests: redirects break non-browser
// consumers, so the canonical slug is substituted in place instead.
type CanonicalSlug struct {
	// Slug is the canonical (lower-case) slug to continue with.
	Slug string
	// Redirect reports whether the caller must redirect instead of
	// continuing. No group data may be fetched when set.
	Redirect bool
	// Location is the redirect target, set only when Redirect is true.
	Location string
}

// canonicalizeSlug lower-cases a raw slug and decides redirect-vs-continue.
// Already-canonical slugs always continue unchanged, so canonicalization
// is idempotent and never loops.
func (s *service) canonicalizeSlug(rawSlug string, isAPI bool) CanonicalSlug {
	lowered := strings.ToLower(rawSlug)
	if lowered == rawSlug {
		return CanonicalSlug{Slug: rawSlug}
	}

	if isAPI {
		return CanonicalSlug{Slug: lowered}
	}

	return CanonicalSlug{
		Slug:     lowered,
		Redirect: true,
		Location: s.directory.GroupURL(lowered),
	}
}
