package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/itspb-ux/AccessHire/internal/domain"
	"github.com/itspb-ux/AccessHire/pkg/validation"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed catalog.json
var defaultCatalog []byte

//go:embed catalog.schema.json
var catalogSchema []byte

// Catalog is the configuration data behind the engine: the facet
// enumeration, the role-indexed form table, seed listings and the employer
// dashboard content.
type Catalog struct {
	Facets    []domain.Facet                             `json:"facets"`
	Forms     map[validation.Role][]validation.FieldSpec `json:"forms"`
	Listings  []domain.Listing                           `json:"listings"`
	Dashboard DashboardCatalog                           `json:"dashboard"`
}

type DashboardCatalog struct {
	Stats     []domain.DashboardStat    `json:"stats"`
	Checklist []domain.ChecklistSection `json:"checklist"`
	Resources []domain.Resource         `json:"resources"`
}

// CatalogError lists every problem found in a catalog document
type CatalogError struct {
	Source   string
	Problems []string
}

func (e *CatalogError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("invalid catalog %s:\n", e.Source))
	for i, p := range e.Problems {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, p))
	}
	return sb.String()
}

// LoadCatalog reads the catalog at path, or the embedded default when path
// is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog("embedded", defaultCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return ParseCatalog(path, data)
}

// ParseCatalog validates data against the catalog JSON Schema, decodes it and
// checks the cross references the schema cannot express.
func ParseCatalog(source string, data []byte) (*Catalog, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate catalog %s: %w", source, err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, &CatalogError{Source: source, Problems: problems}
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", source, err)
	}

	if problems := c.crossCheck(); len(problems) > 0 {
		return nil, &CatalogError{Source: source, Problems: problems}
	}
	return &c, nil
}

func (c *Catalog) crossCheck() []string {
	var problems []string

	declared := make(map[string]bool, len(c.Facets))
	for _, f := range c.Facets {
		if declared[f.Tag] {
			problems = append(problems, fmt.Sprintf("facets: duplicate tag %q", f.Tag))
		}
		declared[f.Tag] = true
	}

	seen := make(map[int64]bool, len(c.Listings))
	for _, l := range c.Listings {
		if seen[l.ID] {
			problems = append(problems, fmt.Sprintf("listings: duplicate id %d", l.ID))
		}
		seen[l.ID] = true
		for _, tag := range l.Facets.Tags() {
			if !declared[tag] {
				problems = append(problems, fmt.Sprintf("listings[%d]: undeclared facet %q", l.ID, tag))
			}
		}
	}

	for role, fields := range c.Forms {
		names := make(map[string]bool, len(fields))
		for _, f := range fields {
			if names[f.Name] {
				problems = append(problems, fmt.Sprintf("forms.%s: duplicate field %q", role, f.Name))
			}
			names[f.Name] = true
		}
	}
	return problems
}

// FormSchema returns the role-indexed required-field table
func (c *Catalog) FormSchema() validation.FormSchema {
	schema := make(validation.FormSchema, len(c.Forms))
	for role, fields := range c.Forms {
		schema[role] = append([]validation.FieldSpec(nil), fields...)
	}
	return schema
}
