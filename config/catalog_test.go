package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/itspb-ux/AccessHire/config"
	"github.com/itspb-ux/AccessHire/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalCatalog = `{
  "facets": [{"tag": "remote", "label": "Remote Only", "filterable": true}],
  "forms": {"candidate": [{"name": "email", "label": "Email"}]},
  "listings": [{"id": 7, "title": "Support Lead", "organization": "Helpline", "facets": ["remote"]}],
  "dashboard": {"stats": [], "checklist": [], "resources": []}
}`

func TestLoadCatalogDefault(t *testing.T) {
	c, err := config.LoadCatalog("")
	require.NoError(t, err)

	t.Run("Should declare the four filter toggles", func(t *testing.T) {
		var filterable []string
		for _, f := range c.Facets {
			if f.Filterable {
				filterable = append(filterable, f.Tag)
			}
		}
		assert.Equal(t, []string{"remote", "screen-reader-friendly", "flexible-hours", "neurodiverse-inclusive"}, filterable)
	})

	t.Run("Should carry the sign-up table", func(t *testing.T) {
		schema := c.FormSchema()
		require.Contains(t, schema, validation.RoleCandidate)
		require.Contains(t, schema, validation.RoleEmployer)

		names := func(role validation.Role) []string {
			var out []string
			for _, f := range schema[role] {
				out = append(out, f.Name)
			}
			return out
		}
		assert.Equal(t, []string{"email", "password", "accessibilityPreference"}, names(validation.RoleCandidate))
		assert.Equal(t, []string{"email", "password", "companyName"}, names(validation.RoleEmployer))
	})

	t.Run("Should offer the same accessibility preferences as the built-in table", func(t *testing.T) {
		builtin := validation.DefaultFormSchema()[validation.RoleCandidate][2]
		loaded := c.FormSchema()[validation.RoleCandidate][2]
		require.Equal(t, "accessibilityPreference", loaded.Name)
		assert.Equal(t, builtin.Options, loaded.Options)
		assert.Equal(t, builtin.Rules, loaded.Rules)
	})

	t.Run("Should seed listings and toolkit content", func(t *testing.T) {
		assert.Len(t, c.Listings, 3)
		assert.True(t, c.Listings[2].Facets.Has("neurodiverse-inclusive"))
		assert.Len(t, c.Dashboard.Checklist, 3)
		assert.Len(t, c.Dashboard.Resources, 4)
	})
}

func TestParseCatalog(t *testing.T) {
	t.Run("Should accept a minimal document", func(t *testing.T) {
		c, err := config.ParseCatalog("test", []byte(minimalCatalog))
		require.NoError(t, err)
		assert.Equal(t, int64(7), c.Listings[0].ID)
	})

	t.Run("Should accept form fields without a label", func(t *testing.T) {
		doc := `{
		  "facets": [{"tag": "remote", "label": "Remote Only"}],
		  "forms": {"candidate": [{"name": "fullName"}]},
		  "listings": [],
		  "dashboard": {"stats": [], "checklist": [], "resources": []}
		}`
		c, err := config.ParseCatalog("test", []byte(doc))
		require.NoError(t, err)

		v := validation.NewFormValidator(c.FormSchema(), nil, false)
		errs, err := v.Validate(validation.RoleCandidate, map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, "Full Name is required", errs["fullName"])
	})

	t.Run("Should report schema violations", func(t *testing.T) {
		_, err := config.ParseCatalog("test", []byte(`{"facets": [{"tag": "Not A Tag", "label": ""}]}`))
		var catErr *config.CatalogError
		require.True(t, errors.As(err, &catErr))
		assert.NotEmpty(t, catErr.Problems)
		assert.Contains(t, err.Error(), "invalid catalog test")
	})

	t.Run("Should reject undeclared listing facets", func(t *testing.T) {
		doc := `{
		  "facets": [{"tag": "remote", "label": "Remote Only"}],
		  "forms": {"candidate": [{"name": "email", "label": "Email"}]},
		  "listings": [{"id": 1, "title": "A", "organization": "B", "facets": ["on-site"]}],
		  "dashboard": {"stats": [], "checklist": [], "resources": []}
		}`
		_, err := config.ParseCatalog("test", []byte(doc))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `undeclared facet "on-site"`)
	})

	t.Run("Should reject duplicate ids and fields", func(t *testing.T) {
		doc := `{
		  "facets": [],
		  "forms": {"employer": [{"name": "email", "label": "Email"}, {"name": "email", "label": "Work Email"}]},
		  "listings": [{"id": 1, "title": "A", "organization": "B"}, {"id": 1, "title": "C", "organization": "D"}],
		  "dashboard": {"stats": [], "checklist": [], "resources": []}
		}`
		_, err := config.ParseCatalog("test", []byte(doc))
		var catErr *config.CatalogError
		require.True(t, errors.As(err, &catErr))
		assert.Len(t, catErr.Problems, 2)
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		_, err := config.ParseCatalog("test", []byte(`{`))
		assert.Error(t, err)
	})
}

func TestLoadCatalogFile(t *testing.T) {
	t.Run("Should read a catalog from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(minimalCatalog), 0o600))

		c, err := config.LoadCatalog(path)
		require.NoError(t, err)
		assert.Len(t, c.Facets, 1)
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := config.LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}
