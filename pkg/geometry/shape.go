package geometry

import (
	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// Handle identifies a shape inside its Arena
type Handle int

// NoParent marks a shape that is not nested in a group or CSG
const NoParent Handle = -1

// Kind selects the primitive a Shape represents
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindTriangle
	KindGroup
	KindCSG
)

var kindNames = [...]string{"sphere", "plane", "cube", "cylinder", "cone", "triangle", "group", "csg"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Operation is the boolean operation a CSG shape applies to its children
type Operation int

const (
	OpUnion Operation = iota
	OpIntersection
	OpDifference
)

func (op Operation) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	default:
		return "unknown"
	}
}

// Shape is one node of the scene graph. Kind selects which of the
// variant-specific fields are meaningful.
type Shape struct {
	ID        uint32
	Kind      Kind
	Transform core.Matrix
	Material  *material.Material // nil for groups and CSG
	Parent    Handle

	inverse          core.Matrix
	inverseTranspose core.Matrix

	// Cylinder and cone: y extent and whether the ends are capped
	Minimum float64
	Maximum float64
	Closed  bool

	// Triangle: vertices, precomputed edges and face normal
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple

	// Group: children and their combined bounds in group space
	Children []Handle
	bounds   core.AABB

	// CSG: operation and operands
	Operation   Operation
	Left, Right Handle
}

// InverseTransform returns the cached inverse of the shape transform
func (s *Shape) InverseTransform() core.Matrix {
	return s.inverse
}

// ShapeOptions holds the settings common to every shape constructor.
// A zero Transform means identity and a nil Material means the default material.
type ShapeOptions struct {
	Transform core.Matrix
	Material  *material.Material
}

// WithTransform returns options using the given transform
func WithTransform(m core.Matrix) ShapeOptions {
	return ShapeOptions{Transform: m}
}

// WithMaterial returns options using the given material
func WithMaterial(m *material.Material) ShapeOptions {
	return ShapeOptions{Material: m}
}

func (o ShapeOptions) transform() core.Matrix {
	if o.Transform == (core.Matrix{}) {
		return core.Identity()
	}
	return o.Transform
}
