package model

import "strconv"

// SortKey selects the order of directory listings.
type SortKey string

const (
	// SortByName orders groups alphabetically by display name.
	SortByName SortKey = "name"
	// SortByMembers orders groups by descending member count.
	SortByMembers SortKey = "members"
	// SortByNewest orders groups by descending creation time.
	SortByNewest SortKey = "newest"
)

// ParseSortKey maps a raw query value onto a known sort key.
// Unknown or empty values fall back to SortByName.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortByMembers:
		return SortByMembers
	case SortByNewest:
		return SortByNewest
	default:
		return SortByName
	}
}

// SearchFilters is the filter set applied to directory queries.
// FilterHidden is forced true by the query engine for principals that
// are not administrators, regardless of the caller-supplied value.
type SearchFilters struct {
	SortKey       SortKey
	FilterHidden  bool
	ShowMembers   bool
	HideEphemeral bool
	ExcludeGroups []string
	Query         string
}

// ParseBoolFlag converts a query-string flag ("true"/"false", "1"/"0")
// into a boolean. Empty or unparseable values yield the default, so the
// query engine only ever sees real booleans.
func ParseBoolFlag(raw string, defaultValue bool) bool {
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParsePageNumber converts a query-string page value into a page number.
// Absent or non-numeric values default to 1.
func ParsePageNumber(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}
