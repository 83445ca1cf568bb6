// Package catalogs provides the embedded Qatar GBA design-system data: the five
// token source documents and the layout builder's component templates.
package catalogs

import _ "embed"

// ColorsJSON holds the brand, neutral and semantic color tokens.
//
//go:embed qatar-gba/colors.json
var ColorsJSON []byte

// SpacingJSON holds the spacing scale.
//
//go:embed qatar-gba/spacing.json
var SpacingJSON []byte

// TypographyJSON holds font families, sizes, weights and line heights.
//
//go:embed qatar-gba/typography.json
var TypographyJSON []byte

// ShadowsJSON holds elevation shadows.
//
//go:embed qatar-gba/shadows.json
var ShadowsJSON []byte

// BorderRadiusJSON holds corner radii.
//
//go:embed qatar-gba/border-radius.json
var BorderRadiusJSON []byte

// ComponentsJSON is the builder template catalog, embedded at build time.
//
//go:embed qatar-gba/components.json
var ComponentsJSON []byte
