package mcp

import "github.com/mark3labs/mcp-go/mcp"

// --- tokens ---

func listTokenCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_token_categories",
		mcp.WithDescription("List design token categories (colors, spacing, typography, shadows, border-radius) with token counts."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func getTokenCategoryTool() mcp.Tool {
	return mcp.NewTool("get_token_category",
		mcp.WithDescription("Return every token of one category in declaration order."),
		mcp.WithString("category", mcp.Required(), mcp.Description("Category key, e.g. colors or spacing")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func searchTokensTool() mcp.Tool {
	return mcp.NewTool("search_tokens",
		mcp.WithDescription("Search tokens by name, description, or value (case-insensitive substring)."),
		mcp.WithString("query", mcp.Description("Search text; empty matches every token")),
		mcp.WithString("category", mcp.Description("Only tokens of this category")),
		mcp.WithString("type", mcp.Description("Only tokens of this type"),
			mcp.Enum("color", "spacing", "typography", "shadow", "border-radius")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func getTokenValueTool() mcp.Tool {
	return mcp.NewTool("get_token_value",
		mcp.WithDescription("Resolve a token id (<category>:<key>) to its value for the light or dark theme."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Token id, e.g. colors:brand-maroon")),
		mcp.WithString("theme", mcp.Description("Theme to resolve for"), mcp.Enum("light", "dark"), mcp.DefaultString("light")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// --- theme ---

func generatePaletteTool() mcp.Tool {
	return mcp.NewTool("generate_palette",
		mcp.WithDescription("Generate the 50-950 shade scale for a hex color, or its accessible scale or harmony colors."),
		mcp.WithString("color", mcp.Required(), mcp.Description("Base color as #RRGGBB")),
		mcp.WithString("name", mcp.Description("Palette name"), mcp.DefaultString("primary")),
		mcp.WithString("mode", mcp.Description("standard, accessible or complementary"),
			mcp.Enum("standard", "accessible", "complementary"), mcp.DefaultString("standard")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func contrastRatioTool() mcp.Tool {
	return mcp.NewTool("contrast_ratio",
		mcp.WithDescription("WCAG 2.1 contrast ratio and conformance level of two hex colors."),
		mcp.WithString("foreground", mcp.Required(), mcp.Description("Foreground color as #RRGGBB")),
		mcp.WithString("background", mcp.Required(), mcp.Description("Background color as #RRGGBB")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func generateThemeTool() mcp.Tool {
	return mcp.NewTool("generate_theme",
		mcp.WithDescription("Render a theme config as CSS custom properties, a Tailwind config, Figma tokens, or the full JSON bundle. "+
			"Without a config the built-in Qatar GBA theme is used."),
		mcp.WithString("config", mcp.Description("Theme config as YAML or JSON")),
		mcp.WithString("format", mcp.Description("Output format"),
			mcp.Enum("css", "tailwind", "figma", "json"), mcp.DefaultString("css")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// --- catalog ---

func listComponentsTool() mcp.Tool {
	return mcp.NewTool("list_components",
		mcp.WithDescription("List builder component templates, optionally filtered by category and keyword."),
		mcp.WithString("category", mcp.Description("Category name, e.g. Layout")),
		mcp.WithString("keyword", mcp.Description("Matches id, name, description, or tags")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func searchComponentsTool() mcp.Tool {
	return mcp.NewTool("search_components",
		mcp.WithDescription("Search component templates and report why each one matched."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search text")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// --- builder ---

func addComponentTool() mcp.Tool {
	return mcp.NewTool("add_component",
		mcp.WithDescription("Drop a copy of a catalog template into a zone. Returns the new component id."),
		mcp.WithString("component", mcp.Required(), mcp.Description("Template id or name from list_components")),
		mcp.WithString("zone", mcp.Description("Target zone id"), mcp.DefaultString("canvas")),
		mcp.WithNumber("index", mcp.Description("Insert position; negative or past the end appends"), mcp.DefaultNumber(-1)),
	)
}

func removeComponentTool() mcp.Tool {
	return mcp.NewTool("remove_component",
		mcp.WithDescription("Remove a placed component at any depth."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Component id")),
		mcp.WithDestructiveHintAnnotation(true),
	)
}

func moveComponentTool() mcp.Tool {
	return mcp.NewTool("move_component",
		mcp.WithDescription("Move a top-level component between or within zones."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Component id")),
		mcp.WithString("source_zone", mcp.Required(), mcp.Description("Zone the component is in")),
		mcp.WithNumber("source_index", mcp.Required(), mcp.Description("Current position in the source zone")),
		mcp.WithString("target_zone", mcp.Required(), mcp.Description("Destination zone")),
		mcp.WithNumber("target_index", mcp.Required(), mcp.Description("Destination position")),
	)
}

func updateComponentPropsTool() mcp.Tool {
	return mcp.NewTool("update_component_props",
		mcp.WithDescription("Merge props into a placed component. Existing keys are overwritten."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Component id")),
		mcp.WithObject("props", mcp.Required(), mcp.Description("Props to merge")),
	)
}

func selectComponentTool() mcp.Tool {
	return mcp.NewTool("select_component",
		mcp.WithDescription("Select a component, or clear the selection when id is empty."),
		mcp.WithString("id", mcp.Description("Component id")),
	)
}

func setBuilderSettingsTool() mcp.Tool {
	return mcp.NewTool("set_builder_settings",
		mcp.WithDescription("Change preview mode and grid settings. Omitted settings are left as they are."),
		mcp.WithBoolean("preview_mode", mcp.Description("Preview mode on or off")),
		mcp.WithBoolean("snap_to_grid", mcp.Description("Snap to grid on or off")),
		mcp.WithNumber("grid_size", mcp.Description("Grid size in pixels, clamped to 4-32")),
	)
}

func getLayoutTool() mcp.Tool {
	return mcp.NewTool("get_layout",
		mcp.WithDescription("Return the current builder state: zones, components, selection and settings."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func exportLayoutTool() mcp.Tool {
	return mcp.NewTool("export_layout",
		mcp.WithDescription("Export the layout as a versioned JSON document that import_layout accepts."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func importLayoutTool() mcp.Tool {
	return mcp.NewTool("import_layout",
		mcp.WithDescription("Replace the layout with an exported JSON document. Invalid documents leave the layout unchanged."),
		mcp.WithString("layout", mcp.Required(), mcp.Description("Exported layout JSON")),
		mcp.WithDestructiveHintAnnotation(true),
	)
}

func generateLayoutCodeTool() mcp.Tool {
	return mcp.NewTool("generate_layout_code",
		mcp.WithDescription("Generate source code for the canvas in the given framework, optionally syntax-checked."),
		mcp.WithString("framework", mcp.Description("Target framework"),
			mcp.Enum("react", "nextjs", "typescript", "html", "blazor"), mcp.DefaultString("react")),
		mcp.WithBoolean("check", mcp.Description("Parse the generated code and report syntax issues"), mcp.DefaultBool(false)),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func clearLayoutTool() mcp.Tool {
	return mcp.NewTool("clear_layout",
		mcp.WithDescription("Reset the builder to an empty canvas with default settings."),
		mcp.WithDestructiveHintAnnotation(true),
	)
}
