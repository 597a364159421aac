package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// FacetSet is an unordered set of facet tags
type FacetSet map[string]struct{}

// NewFacetSet builds a set from raw tags. Tags are trimmed and lowercased,
// blanks are dropped and duplicates collapse.
func NewFacetSet(tags ...string) FacetSet {
	set := make(FacetSet, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return set
}

func (s FacetSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// ContainsAll reports whether every tag of other is in s. An empty other is
// contained in any set.
func (s FacetSet) ContainsAll(other FacetSet) bool {
	for tag := range other {
		if !s.Has(tag) {
			return false
		}
	}
	return true
}

// Tags returns the tags in lexical order
func (s FacetSet) Tags() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (s FacetSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tags())
}

func (s *FacetSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewFacetSet(tags...)
	return nil
}

// FilterCriteria is the text query plus the facets a listing must carry
type FilterCriteria struct {
	QueryText    string
	ActiveFacets FacetSet
}

// NewFilterCriteria normalizes raw request input. A nil facet slice yields an
// empty set.
func NewFilterCriteria(query string, facets []string) FilterCriteria {
	return FilterCriteria{
		QueryText:    strings.TrimSpace(query),
		ActiveFacets: NewFacetSet(facets...),
	}
}

// IsEmpty reports whether the criteria match every listing
func (c FilterCriteria) IsEmpty() bool {
	return strings.TrimSpace(c.QueryText) == "" && len(c.ActiveFacets) == 0
}

// searchText is the haystack for query matching
func (l Listing) searchText() string {
	return strings.ToLower(l.Title + " " + l.Organization + " " + l.Summary)
}

// Matches reports whether the listing satisfies both the text and the facet
// predicate of c.
func (l Listing) Matches(c FilterCriteria) bool {
	return l.matches(strings.ToLower(strings.TrimSpace(c.QueryText)), c.ActiveFacets)
}

func (l Listing) matches(needle string, facets FacetSet) bool {
	if !l.Facets.ContainsAll(facets) {
		return false
	}
	return needle == "" || strings.Contains(l.searchText(), needle)
}

// FilterListings returns the listings matching c, in input order.
//
// Facets combine with AND: each additional active facet can only narrow the
// result. The input slice and its listings are never modified.
func FilterListings(listings []Listing, c FilterCriteria) []Listing {
	needle := strings.ToLower(strings.TrimSpace(c.QueryText))

	result := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.matches(needle, c.ActiveFacets) {
			result = append(result, l)
		}
	}
	return result
}
