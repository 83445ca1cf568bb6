package builder

import (
	"fmt"
	"log/slog"
	"time"
)

// Listener receives a state snapshot after every mutation.
type Listener func(BuilderState)

// location is where one node sits: the zone it belongs to and its parent
// node, nil for nodes directly under the zone.
type location struct {
	zone   *DropZone
	parent *DroppableComponent
	node   *DroppableComponent
}

// Builder owns one layout document.
//
// Mutations are synchronous and notify every listener, in registration order,
// before returning. Invalid ids, zones or indices are silent no-ops and do not
// notify. A listener that mutates the builder recurses into it.
//
// Builder is not safe for concurrent use.
type Builder struct {
	zones       []*DropZone
	components  []*DroppableComponent
	selected    string
	previewMode bool
	gridSize    int
	snapToGrid  bool

	// index maps an id to every tree position holding it; rebuilt after
	// each structural edit.
	index map[string][]location

	listeners []*listenerEntry
	now       func() time.Time
	lastMint  int64
	logger    *slog.Logger
}

type listenerEntry struct {
	fn Listener
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock sets the time source used for ids and export timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithLogger sets the logger used to report ignored edits.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// New creates a builder with a single empty canvas zone.
func New(opts ...Option) *Builder {
	b := &Builder{now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	b.reset()
	return b
}

func (b *Builder) reset() {
	b.zones = []*DropZone{newCanvas()}
	b.components = []*DroppableComponent{}
	b.selected = ""
	b.previewMode = false
	b.gridSize = DefaultGridSize
	b.snapToGrid = true
	b.reindex()
}

// Subscribe registers fn and returns a function that removes it.
func (b *Builder) Subscribe(fn Listener) (unsubscribe func()) {
	entry := &listenerEntry{fn: fn}
	b.listeners = append(b.listeners, entry)
	return func() {
		for i, e := range b.listeners {
			if e == entry {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

func (b *Builder) notify() {
	if len(b.listeners) == 0 {
		return
	}
	state := b.State()
	// Listeners may unsubscribe during delivery.
	listeners := append([]*listenerEntry(nil), b.listeners...)
	for _, l := range listeners {
		l.fn(state)
	}
}

// State returns a shallow snapshot: fresh slices and zone structs, shared nodes.
func (b *Builder) State() BuilderState {
	zones := make([]*DropZone, len(b.zones))
	for i, z := range b.zones {
		cp := *z
		cp.Accepts = append([]ComponentType(nil), z.Accepts...)
		cp.Children = append([]*DroppableComponent{}, z.Children...)
		zones[i] = &cp
	}
	return BuilderState{
		Components:        append([]*DroppableComponent{}, b.components...),
		DropZones:         zones,
		SelectedComponent: b.selected,
		PreviewMode:       b.previewMode,
		GridSize:          b.gridSize,
		SnapToGrid:        b.snapToGrid,
	}
}

// Zone returns the live zone with id, or nil.
func (b *Builder) Zone(id string) *DropZone {
	for _, z := range b.zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// FindComponent returns the first tree node with id, falling back to the
// flat registry.
func (b *Builder) FindComponent(id string) (*DroppableComponent, bool) {
	if locs := b.index[id]; len(locs) > 0 {
		return locs[0].node, true
	}
	for _, c := range b.components {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// mintID returns "<templateID>-<unixMillis>". Two mints within the same
// millisecond get consecutive timestamps.
func (b *Builder) mintID(templateID string) string {
	ms := b.now().UnixMilli()
	if ms <= b.lastMint {
		ms = b.lastMint + 1
	}
	b.lastMint = ms
	return fmt.Sprintf("%s-%d", templateID, ms)
}

// AddComponent places a copy of template into zoneID. An empty zoneID means
// the canvas. index < 0 appends; an index past the end also appends.
//
// The copy gets a fresh id and its own props; its children slice is copied
// but the child nodes are shared with the template. Returns the new id, or
// "" when the zone does not exist.
func (b *Builder) AddComponent(template *DroppableComponent, zoneID string, index int) string {
	if template == nil {
		return ""
	}
	if zoneID == "" {
		zoneID = CanvasZoneID
	}
	zone := b.Zone(zoneID)
	if zone == nil {
		b.logger.Debug("add ignored: unknown zone", "zone", zoneID, "template", template.ID)
		return ""
	}

	node := &DroppableComponent{
		ID:       b.mintID(template.ID),
		Type:     template.Type,
		Name:     template.Name,
		Category: template.Category,
		Props:    template.Props.Clone(),
		Children: append([]*DroppableComponent(nil), template.Children...),
	}

	if index < 0 || index >= len(zone.Children) {
		zone.Children = append(zone.Children, node)
	} else {
		zone.Children = insertAt(zone.Children, index, node)
	}
	b.components = append(b.components, node)

	b.reindex()
	b.notify()
	return node.ID
}

// RemoveComponent deletes every node with id from all zone trees, at any
// depth, and from the registry.
func (b *Builder) RemoveComponent(id string) {
	locs := b.index[id]
	removed := false
	for _, loc := range locs {
		if loc.parent == nil {
			loc.zone.Children, removed = dropID(loc.zone.Children, id), true
		} else {
			loc.parent.Children, removed = dropID(loc.parent.Children, id), true
		}
	}
	before := len(b.components)
	b.components = dropID(b.components, id)
	if !removed && len(b.components) == before {
		b.logger.Debug("remove ignored: unknown component", "id", id)
		return
	}
	if b.selected == id {
		b.selected = ""
	}
	b.reindex()
	b.notify()
}

// MoveComponent splices the root-level node at sourceIndex of sourceZoneID
// into targetZoneID at targetIndex. Indices follow splice rules: negative
// values count from the end, a target past the end appends. Only zone-level
// nodes move; id is informational.
func (b *Builder) MoveComponent(id, sourceZoneID string, sourceIndex int, targetZoneID string, targetIndex int) {
	source := b.Zone(sourceZoneID)
	target := b.Zone(targetZoneID)
	if source == nil || target == nil {
		b.logger.Debug("move ignored: unknown zone", "id", id, "source", sourceZoneID, "target", targetZoneID)
		return
	}

	from := spliceIndex(sourceIndex, len(source.Children))
	if from >= len(source.Children) {
		b.logger.Debug("move ignored: source index out of range", "id", id, "index", sourceIndex)
		return
	}
	moved := source.Children[from]
	source.Children = append(source.Children[:from:from], source.Children[from+1:]...)

	to := spliceIndex(targetIndex, len(target.Children))
	target.Children = insertAt(target.Children, to, moved)

	b.reindex()
	b.notify()
}

// UpdateComponentProps merges props into every node carrying id, in the
// trees and in the registry.
func (b *Builder) UpdateComponentProps(id string, props *Props) {
	seen := map[*DroppableComponent]bool{}
	merge := func(n *DroppableComponent) {
		if seen[n] {
			return
		}
		seen[n] = true
		if n.Props == nil {
			n.Props = NewProps()
		}
		n.Props.Merge(props)
	}
	for _, loc := range b.index[id] {
		merge(loc.node)
	}
	for _, c := range b.components {
		if c.ID == id {
			merge(c)
		}
	}
	if len(seen) == 0 {
		b.logger.Debug("update ignored: unknown component", "id", id)
		return
	}
	b.notify()
}

// SelectComponent sets the selection; "" clears it.
func (b *Builder) SelectComponent(id string) {
	b.selected = id
	b.notify()
}

// SetPreviewMode toggles the preview rendering hint.
func (b *Builder) SetPreviewMode(on bool) {
	b.previewMode = on
	b.notify()
}

// SetSnapToGrid toggles grid snapping.
func (b *Builder) SetSnapToGrid(on bool) {
	b.snapToGrid = on
	b.notify()
}

// SetGridSize stores n clamped to [MinGridSize, MaxGridSize].
func (b *Builder) SetGridSize(n int) {
	b.gridSize = ClampGridSize(n)
	b.notify()
}

// AddDropZone appends a zone. Zones with an empty or existing id are ignored.
func (b *Builder) AddDropZone(zone DropZone) {
	if zone.ID == "" || b.Zone(zone.ID) != nil {
		b.logger.Debug("zone ignored", "zone", zone.ID)
		return
	}
	if zone.Children == nil {
		zone.Children = []*DroppableComponent{}
	}
	b.zones = append(b.zones, &zone)
	b.reindex()
	b.notify()
}

// CanDrop reports whether zoneID would take item: the zone must accept the
// item's type, have room under MaxChildren (moves within the zone always
// fit) and, when nesting is disallowed, the item must carry no children.
// AddComponent does not consult it.
func (b *Builder) CanDrop(zoneID string, item DragItem) bool {
	zone := b.Zone(zoneID)
	if zone == nil || !zone.AcceptsType(item.Type) {
		return false
	}
	c := zone.Constraints
	if c == nil {
		return true
	}
	if c.MaxChildren > 0 && len(zone.Children) >= c.MaxChildren && item.SourceZone != zoneID {
		return false
	}
	if c.AllowNesting != nil && !*c.AllowNesting && item.Component != nil && len(item.Component.Children) > 0 {
		return false
	}
	return true
}

// Clear resets to a single empty canvas and clears the selection.
func (b *Builder) Clear() {
	b.reset()
	b.notify()
}

func (b *Builder) reindex() {
	b.index = make(map[string][]location)
	for _, z := range b.zones {
		b.indexChildren(z, nil, z.Children)
	}
}

func (b *Builder) indexChildren(zone *DropZone, parent *DroppableComponent, children []*DroppableComponent) {
	for _, c := range children {
		b.index[c.ID] = append(b.index[c.ID], location{zone: zone, parent: parent, node: c})
		b.indexChildren(zone, c, c.Children)
	}
}

// spliceIndex normalizes a splice start: negative counts from the end and
// the result lies in [0, n].
func spliceIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}

func insertAt(s []*DroppableComponent, i int, c *DroppableComponent) []*DroppableComponent {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = c
	return s
}

func dropID(s []*DroppableComponent, id string) []*DroppableComponent {
	out := s[:0:0]
	for _, c := range s {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
