package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gnana997/lucidex/pkg/builder"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleAddComponent(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("component")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tmpl, ok := s.catalog.ToDroppable(ref)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown component template: %s", ref)), nil
	}
	zone := req.GetString("zone", builder.CanvasZoneID)
	index := req.GetInt("index", -1)

	var id string
	s.withSession(func(b *builder.Builder) {
		id = b.AddComponent(tmpl, zone, index)
	})
	if id == "" {
		return mcp.NewToolResultError(fmt.Sprintf("unknown zone: %s", zone)), nil
	}
	return jsonResult(map[string]any{"id": id, "zone": zone})
}

func (s *Server) handleRemoveComponent(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	found := false
	s.withSession(func(b *builder.Builder) {
		if _, found = b.FindComponent(id); found {
			b.RemoveComponent(id)
		}
	})
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("unknown component: %s", id)), nil
	}
	return jsonResult(map[string]any{"removed": id})
}

func (s *Server) handleMoveComponent(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sourceZone, err := req.RequireString("source_zone")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sourceIndex, err := req.RequireInt("source_index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	targetZone, err := req.RequireString("target_zone")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	targetIndex, err := req.RequireInt("target_index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var moveErr error
	var children []string
	s.withSession(func(b *builder.Builder) {
		source := b.Zone(sourceZone)
		if source == nil {
			moveErr = fmt.Errorf("unknown zone: %s", sourceZone)
			return
		}
		target := b.Zone(targetZone)
		if target == nil {
			moveErr = fmt.Errorf("unknown zone: %s", targetZone)
			return
		}
		from := sourceIndex
		if from < 0 {
			from += len(source.Children)
		}
		if from < 0 || from >= len(source.Children) || source.Children[from].ID != id {
			moveErr = fmt.Errorf("component %s is not at %s[%d]", id, sourceZone, sourceIndex)
			return
		}
		b.MoveComponent(id, sourceZone, sourceIndex, targetZone, targetIndex)
		for _, c := range b.Zone(targetZone).Children {
			children = append(children, c.ID)
		}
	})
	if moveErr != nil {
		return mcp.NewToolResultError(moveErr.Error()), nil
	}
	return jsonResult(map[string]any{"id": id, "zone": targetZone, "children": children})
}

// propsArgument accepts props as a JSON object or as a string holding one.
func propsArgument(v any) (*builder.Props, error) {
	var data []byte
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("required argument \"props\" not found")
	case string:
		data = []byte(val)
	default:
		var err error
		if data, err = json.Marshal(val); err != nil {
			return nil, fmt.Errorf("invalid props: %w", err)
		}
	}
	props := builder.NewProps()
	if err := json.Unmarshal(data, props); err != nil {
		return nil, fmt.Errorf("props must be a JSON object: %w", err)
	}
	return props, nil
}

func (s *Server) handleUpdateComponentProps(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	props, err := propsArgument(req.GetArguments()["props"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := s.marshalSession(func(b *builder.Builder) any {
		if _, ok := b.FindComponent(id); !ok {
			return nil
		}
		b.UpdateComponentProps(id, props)
		node, _ := b.FindComponent(id)
		return node
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown component: %s", id)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleSelectComponent(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	found := true
	s.withSession(func(b *builder.Builder) {
		if id != "" {
			if _, found = b.FindComponent(id); !found {
				return
			}
		}
		b.SelectComponent(id)
	})
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("unknown component: %s", id)), nil
	}
	return jsonResult(map[string]any{"selected": id})
}

func (s *Server) handleSetBuilderSettings(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	var state builder.BuilderState
	s.withSession(func(b *builder.Builder) {
		if _, ok := args["preview_mode"]; ok {
			b.SetPreviewMode(req.GetBool("preview_mode", false))
		}
		if _, ok := args["snap_to_grid"]; ok {
			b.SetSnapToGrid(req.GetBool("snap_to_grid", true))
		}
		if _, ok := args["grid_size"]; ok {
			b.SetGridSize(req.GetInt("grid_size", builder.DefaultGridSize))
		}
		state = b.State()
	})
	return jsonResult(map[string]any{
		"previewMode": state.PreviewMode,
		"snapToGrid":  state.SnapToGrid,
		"gridSize":    state.GridSize,
	})
}

func (s *Server) handleGetLayout(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := s.marshalSession(func(b *builder.Builder) any {
		return b.State()
	})
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleExportLayout(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var (
		data []byte
		err  error
	)
	s.withSession(func(b *builder.Builder) {
		data, err = b.ExportJSON()
	})
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleImportLayout(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	layout, err := req.RequireString("layout")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var state builder.BuilderState
	s.withSession(func(b *builder.Builder) {
		if err = b.ImportLayout([]byte(layout)); err == nil {
			state = b.State()
		}
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"components": len(state.Components),
		"zones":      len(state.DropZones),
		"gridSize":   state.GridSize,
		"snapToGrid": state.SnapToGrid,
	})
}

func (s *Server) handleGenerateLayoutCode(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	framework := builder.ParseFramework(req.GetString("framework", string(builder.FrameworkReact)))
	var code string
	s.withSession(func(b *builder.Builder) {
		code = b.GenerateCode(framework)
	})

	if !req.GetBool("check", false) {
		return mcp.NewToolResultText(code), nil
	}
	if s.checker == nil {
		return mcp.NewToolResultError("syntax checking is not available"), nil
	}
	result, err := s.checker.Check(code, framework)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"framework": framework,
		"code":      code,
		"check":     result,
	})
}

func (s *Server) handleClearLayout(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.withSession(func(b *builder.Builder) {
		b.Clear()
	})
	return jsonResult(map[string]any{"cleared": true})
}
