// Package builder holds the layout builder's document model: drop zones
// containing trees of placed components, structural edits with synchronous
// change notification, layout export/import and code generation.
package builder

import "errors"

// ComponentType classifies what a component may be dropped into.
type ComponentType string

const (
	TypeComponent ComponentType = "component"
	TypeContainer ComponentType = "container"
	TypeLayout    ComponentType = "layout"
)

// AllTypes lists every component type, in declaration order.
var AllTypes = []ComponentType{TypeComponent, TypeContainer, TypeLayout}

// CanvasZoneID is the zone every builder starts with.
const CanvasZoneID = "canvas"

// ErrInvalidLayout is returned by ImportLayout for any undecodable input.
var ErrInvalidLayout = errors.New("invalid layout data")

// DroppableComponent is a node of the layout tree.
type DroppableComponent struct {
	ID       string                `json:"id"`
	Type     ComponentType         `json:"type"`
	Name     string                `json:"name"`
	Category string                `json:"category"`
	Props    *Props                `json:"props,omitempty"`
	Children []*DroppableComponent `json:"children,omitempty"`
}

// ZoneConstraints limit what a drop zone takes. Zero values mean unlimited.
type ZoneConstraints struct {
	MaxChildren  int   `json:"maxChildren,omitempty"`
	AllowNesting *bool `json:"allowNesting,omitempty"`
}

// DropZone is a root-level container of the layout.
type DropZone struct {
	ID          string                `json:"id"`
	Accepts     []ComponentType       `json:"accepts"`
	Children    []*DroppableComponent `json:"children"`
	Constraints *ZoneConstraints      `json:"constraints,omitempty"`
}

// AcceptsType reports whether the zone takes components of type t. A zone with
// no accept list takes everything.
func (z *DropZone) AcceptsType(t ComponentType) bool {
	if len(z.Accepts) == 0 {
		return true
	}
	for _, a := range z.Accepts {
		if a == t {
			return true
		}
	}
	return false
}

// BuilderState is a snapshot of the builder.
type BuilderState struct {
	Components        []*DroppableComponent `json:"components"`
	DropZones         []*DropZone           `json:"dropZones"`
	SelectedComponent string                `json:"selectedComponent,omitempty"`
	PreviewMode       bool                  `json:"previewMode"`
	GridSize          int                   `json:"gridSize"`
	SnapToGrid        bool                  `json:"snapToGrid"`
}

// DragItem describes a component in flight during one drag gesture.
type DragItem struct {
	ID          string              `json:"id"`
	Type        ComponentType       `json:"type"`
	Component   *DroppableComponent `json:"component"`
	SourceZone  string              `json:"sourceZone,omitempty"`
	SourceIndex *int                `json:"sourceIndex,omitempty"`
}

// Grid bounds and defaults.
const (
	MinGridSize     = 4
	MaxGridSize     = 32
	DefaultGridSize = 8
)

// ClampGridSize limits n to [MinGridSize, MaxGridSize].
func ClampGridSize(n int) int {
	if n < MinGridSize {
		return MinGridSize
	}
	if n > MaxGridSize {
		return MaxGridSize
	}
	return n
}

func newCanvas() *DropZone {
	return &DropZone{
		ID:       CanvasZoneID,
		Accepts:  append([]ComponentType(nil), AllTypes...),
		Children: []*DroppableComponent{},
	}
}
