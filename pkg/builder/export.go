package builder

import (
	"encoding/json"
	"fmt"
	"time"
)

// LayoutVersion is written into every export.
const LayoutVersion = "1.0.0"

// ExportedLayout is the persisted form of a builder.
type ExportedLayout struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Metadata  LayoutMetadata `json:"metadata"`
	Layout    LayoutData     `json:"layout"`
	Settings  LayoutSettings `json:"settings"`
}

// LayoutMetadata summarizes an export.
type LayoutMetadata struct {
	ComponentCount int `json:"componentCount"`
	ZoneCount      int `json:"zoneCount"`
}

// LayoutData is the document tree plus the flat registry.
type LayoutData struct {
	DropZones  []*DropZone           `json:"dropZones"`
	Components []*DroppableComponent `json:"components"`
}

// LayoutSettings are the grid settings of an export.
type LayoutSettings struct {
	GridSize   int  `json:"gridSize"`
	SnapToGrid bool `json:"snapToGrid"`
}

// ExportLayout snapshots the document. Output is deterministic apart from
// Timestamp.
func (b *Builder) ExportLayout() *ExportedLayout {
	state := b.State()
	return &ExportedLayout{
		Version:   LayoutVersion,
		Timestamp: b.now().UTC().Format(time.RFC3339Nano),
		Metadata: LayoutMetadata{
			ComponentCount: len(state.Components),
			ZoneCount:      len(state.DropZones),
		},
		Layout: LayoutData{
			DropZones:  state.DropZones,
			Components: state.Components,
		},
		Settings: LayoutSettings{
			GridSize:   state.GridSize,
			SnapToGrid: state.SnapToGrid,
		},
	}
}

// ExportJSON returns ExportLayout as indented JSON.
func (b *Builder) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(b.ExportLayout(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export layout: %w", err)
	}
	return data, nil
}

// importDoc mirrors ExportedLayout with optional sections.
type importDoc struct {
	Layout *struct {
		DropZones  []*DropZone           `json:"dropZones"`
		Components []*DroppableComponent `json:"components"`
	} `json:"layout"`
	Settings *struct {
		GridSize   *int  `json:"gridSize"`
		SnapToGrid *bool `json:"snapToGrid"`
	} `json:"settings"`
}

// ImportLayout replaces zones, registry and grid settings from an exported
// document. Missing layout lists import as empty; missing settings default
// to grid size 8 with snapping on. The selection survives only if the
// document still holds that id. Any decode failure or structurally
// broken document returns an error wrapping ErrInvalidLayout and leaves the
// builder unchanged.
func (b *Builder) ImportLayout(data []byte) error {
	var doc *importDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidLayout)
	}

	zones := []*DropZone{}
	components := []*DroppableComponent{}
	if doc.Layout != nil {
		if doc.Layout.DropZones != nil {
			zones = doc.Layout.DropZones
		}
		if doc.Layout.Components != nil {
			components = doc.Layout.Components
		}
	}

	for i, z := range zones {
		if z == nil {
			return fmt.Errorf("%w: dropZones[%d] is null", ErrInvalidLayout, i)
		}
		if z.Children == nil {
			z.Children = []*DroppableComponent{}
		}
		if err := checkNodes(z.Children, fmt.Sprintf("dropZones[%d]", i)); err != nil {
			return err
		}
	}
	if err := checkNodes(components, "components"); err != nil {
		return err
	}

	gridSize, snap := DefaultGridSize, true
	if doc.Settings != nil {
		if doc.Settings.GridSize != nil {
			gridSize = ClampGridSize(*doc.Settings.GridSize)
		}
		if doc.Settings.SnapToGrid != nil {
			snap = *doc.Settings.SnapToGrid
		}
	}

	b.zones = zones
	b.components = components
	b.gridSize = gridSize
	b.snapToGrid = snap
	b.reindex()
	if _, ok := b.FindComponent(b.selected); !ok {
		b.selected = ""
	}
	b.notify()
	return nil
}

func checkNodes(nodes []*DroppableComponent, path string) error {
	for i, n := range nodes {
		if n == nil {
			return fmt.Errorf("%w: %s[%d] is null", ErrInvalidLayout, path, i)
		}
		if err := checkNodes(n.Children, fmt.Sprintf("%s[%d].children", path, i)); err != nil {
			return err
		}
	}
	return nil
}
