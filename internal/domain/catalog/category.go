package catalog

import (
	"strings"
	"unicode"

	"github.com/barrovivo/backend/internal/domain/shared"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Category groups products under a unique name and URL-safe slug
type Category struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(120);not null;uniqueIndex"`
	Slug string `gorm:"type:varchar(140);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a category, deriving the slug from the name when empty
func NewCategory(name, slug string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 120 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name must be 1-120 characters")
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category slug cannot be derived from name")
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Slug:       slug,
	}, nil
}

// Slugify converts a name to a lowercase URL-safe slug.
// Diacritics are stripped so "Jarrón" becomes "jarron".
func Slugify(name string) string {
	lowered := strings.ToLower(StripDiacritics(name))

	var b strings.Builder
	lastDash := true
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// StripDiacritics removes combining marks after NFD decomposition
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
