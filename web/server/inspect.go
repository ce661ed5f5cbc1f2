package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-ray-tracer/pkg/canvas"
	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/material"
	"github.com/df07/go-ray-tracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	ShapeID      uint32                 `json:"shapeId"`
	Parents      []string               `json:"parents"` // Enclosing groups and CSG shapes, innermost first
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Color        string                 `json:"color"` // Shaded color of the pixel
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult contains the intersection state of the object hit by an inspection ray
type InspectResult struct {
	Hit   bool
	State geometry.IntersectionState
	Color core.Color
}

// inspectPixel casts the camera ray through a pixel and describes the first object hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	ray := sceneObj.Camera.RayForPixel(pixelX, pixelY)
	w := sceneObj.World

	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResult{Hit: false}
	}

	state := w.Arena().PrepareComputations(hit, ray, xs)
	// Overlapping shapes resolve indices by interval containment
	state.N1, state.N2 = w.RefractionIndexes(hit.T, ray)

	return InspectResult{
		Hit:   true,
		State: state,
		Color: w.ColorAt(ray, sceneObj.RenderConfig.MaxDepth),
	}
}

// extractMaterialInfo extracts the Phong and optical properties of a material
func (s *Server) extractMaterialInfo(mat *material.Material, objectPoint core.Tuple) map[string]interface{} {
	properties := make(map[string]interface{})
	if mat == nil {
		return properties
	}

	properties["ambient"] = mat.Ambient
	properties["diffuse"] = mat.Diffuse
	properties["specular"] = mat.Specular
	properties["shininess"] = mat.Shininess
	properties["reflective"] = mat.Reflective
	properties["transparency"] = mat.Transparency
	properties["refractiveIndex"] = mat.RefractiveIndex

	if mat.Pattern != nil {
		properties["pattern"] = patternName(mat.Pattern)
		properties["color"] = colorHex(material.PatternAt(mat.Pattern, objectPoint))
	}
	return properties
}

func patternName(p material.Pattern) string {
	switch p.(type) {
	case *material.SolidPattern:
		return "solid"
	case *material.StripePattern:
		return "stripe"
	case *material.RingPattern:
		return "ring"
	case *material.CheckersPattern:
		return "checkers"
	case *material.GradientPattern:
		return "gradient"
	default:
		return "unknown"
	}
}

// extractGeometryInfo extracts the variant-specific fields of a shape
func (s *Server) extractGeometryInfo(arena *geometry.Arena, h geometry.Handle) (string, map[string]interface{}) {
	properties := make(map[string]interface{})
	shape := arena.Shape(h)

	bounds := arena.Bounds(h)
	// Planes and open cylinders or cones are unbounded
	properties["bounds"] = map[string]interface{}{
		"min": boundsArray(bounds.Min),
		"max": boundsArray(bounds.Max),
	}

	switch shape.Kind {
	case geometry.KindCylinder, geometry.KindCone:
		properties["minimum"] = jsonFloat(shape.Minimum)
		properties["maximum"] = jsonFloat(shape.Maximum)
		properties["closed"] = shape.Closed
	case geometry.KindTriangle:
		properties["p1"] = tupleArray(shape.P1)
		properties["p2"] = tupleArray(shape.P2)
		properties["p3"] = tupleArray(shape.P3)
		properties["faceNormal"] = tupleArray(shape.Normal)
	}

	return shape.Kind.String(), properties
}

// parentChain describes the groups and CSG shapes enclosing a shape
func parentChain(arena *geometry.Arena, h geometry.Handle) []string {
	parents := []string{}
	for p := arena.Shape(h).Parent; p != geometry.NoParent; p = arena.Shape(p).Parent {
		parent := arena.Shape(p)
		if parent.Kind == geometry.KindCSG {
			parents = append(parents, fmt.Sprintf("csg %s #%d", parent.Operation, parent.ID))
		} else {
			parents = append(parents, fmt.Sprintf("%s #%d", parent.Kind, parent.ID))
		}
	}
	return parents
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq := &RenderRequest{}

	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Color: colorHex(result.Color)})
		return
	}

	arena := sceneObj.World.Arena()
	state := result.State
	geometryType, geometryProps := s.extractGeometryInfo(arena, state.Object)

	response := InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		ShapeID:      arena.Shape(state.Object).ID,
		Parents:      parentChain(arena, state.Object),
		Point:        tupleArray(state.Point),
		Normal:       tupleArray(state.Normalv),
		Distance:     state.T,
		Inside:       state.Inside,
		N1:           state.N1,
		N2:           state.N2,
		Color:        colorHex(result.Color),
		Properties: map[string]interface{}{
			"material": s.extractMaterialInfo(arena.MaterialOf(state.Object), state.ObjectPoint),
			"geometry": geometryProps,
		},
	}

	writeJSON(w, http.StatusOK, response)
}

func tupleArray(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

// jsonFloat returns v, or "inf" / "-inf" for the infinities JSON cannot encode
func jsonFloat(v float64) interface{} {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return nil
	default:
		return v
	}
}

func boundsArray(t core.Tuple) [3]interface{} {
	return [3]interface{}{jsonFloat(t.X), jsonFloat(t.Y), jsonFloat(t.Z)}
}

func colorHex(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", canvas.ChannelByte(c.R), canvas.ChannelByte(c.G), canvas.ChannelByte(c.B))
}
