package tokens

import (
	"github.com/gnana997/lucidex/catalogs"
)

// Source is one raw token document, e.g. the contents of colors.json.
// Key is the category key and also the top-level field the document nests
// its groups under.
type Source struct {
	Key    string
	Data   []byte
	Origin string
}

// categoryDef describes one of the known token categories.
type categoryDef struct {
	Key         string
	FileStem    string
	Name        string
	Description string
	Type        TokenType
}

// knownCategories lists the supported categories in collection order.
var knownCategories = []categoryDef{
	{Key: "colors", FileStem: "colors", Name: "Colors", Description: "Brand, neutral and semantic color palette", Type: TypeColor},
	{Key: "spacing", FileStem: "spacing", Name: "Spacing", Description: "Spacing scale for padding, margins and gaps", Type: TypeSpacing},
	{Key: "typography", FileStem: "typography", Name: "Typography", Description: "Font families, sizes and weights", Type: TypeTypography},
	{Key: "shadows", FileStem: "shadows", Name: "Shadows", Description: "Elevation shadows", Type: TypeShadow},
	{Key: "borderRadius", FileStem: "border-radius", Name: "Border Radius", Description: "Corner radius scale", Type: TypeBorderRadius},
}

func lookupCategory(key string) (categoryDef, bool) {
	for _, def := range knownCategories {
		if def.Key == key {
			return def, true
		}
	}
	return categoryDef{}, false
}

func lookupCategoryByStem(stem string) (categoryDef, bool) {
	for _, def := range knownCategories {
		if def.FileStem == stem || def.Key == stem {
			return def, true
		}
	}
	return categoryDef{}, false
}

// CategoryType returns the token type for a category key and whether the key is known.
func CategoryType(key string) (TokenType, bool) {
	def, ok := lookupCategory(key)
	return def.Type, ok
}

// DefaultSources returns the five embedded Qatar GBA token documents.
func DefaultSources() []Source {
	return []Source{
		{Key: "colors", Data: catalogs.ColorsJSON, Origin: "embedded:colors.json"},
		{Key: "spacing", Data: catalogs.SpacingJSON, Origin: "embedded:spacing.json"},
		{Key: "typography", Data: catalogs.TypographyJSON, Origin: "embedded:typography.json"},
		{Key: "shadows", Data: catalogs.ShadowsJSON, Origin: "embedded:shadows.json"},
		{Key: "borderRadius", Data: catalogs.BorderRadiusJSON, Origin: "embedded:border-radius.json"},
	}
}
