package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// Arena owns every shape of a scene. Shapes refer to each other by Handle,
// so parent and child links are plain indices. Shapes are immutable once added.
//
// Construction errors (a singular transform, re-parenting a shape, an unknown
// handle) are sticky: the failing constructor still returns a handle and the
// first error is reported by Err.
type Arena struct {
	shapes []Shape
	ids    *IDAllocator
	err    error
}

// NewArena creates an empty arena. A nil allocator gets a private one.
func NewArena(ids *IDAllocator) *Arena {
	if ids == nil {
		ids = NewIDAllocator()
	}
	return &Arena{ids: ids}
}

// Err returns the first construction error, if any
func (a *Arena) Err() error {
	return a.err
}

// Len returns the number of shapes in the arena
func (a *Arena) Len() int {
	return len(a.shapes)
}

// Shape returns a copy of the shape behind a handle
func (a *Arena) Shape(h Handle) Shape {
	return a.shapes[h]
}

// Valid reports whether h refers to a shape in this arena
func (a *Arena) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(a.shapes)
}

// MaterialOf returns the material of a leaf shape
func (a *Arena) MaterialOf(h Handle) *material.Material {
	return a.shapes[h].Material
}

func (a *Arena) fail(err error) {
	if a.err == nil {
		a.err = err
	}
}

func (a *Arena) add(kind Kind, opts ShapeOptions, shape Shape) Handle {
	transform := opts.transform()
	inverse, err := transform.Inverse()
	if err != nil {
		a.fail(fmt.Errorf("%s %d transform: %w", kind, len(a.shapes), err))
		inverse = core.Identity()
	}

	shape.ID = a.ids.NextID()
	shape.Kind = kind
	shape.Transform = transform
	shape.inverse = inverse
	shape.inverseTranspose = inverse.Transpose()
	shape.Parent = NoParent

	if kind != KindGroup && kind != KindCSG {
		shape.Material = opts.Material
		if shape.Material == nil {
			shape.Material = material.NewMaterial()
		}
	}

	a.shapes = append(a.shapes, shape)
	return Handle(len(a.shapes) - 1)
}

// adopt links child under parent
func (a *Arena) adopt(parent, child Handle) bool {
	if !a.Valid(child) {
		a.fail(fmt.Errorf("shape %d: unknown child handle %d", parent, child))
		return false
	}
	if a.shapes[child].Parent != NoParent {
		a.fail(fmt.Errorf("shape %d already belongs to shape %d", child, a.shapes[child].Parent))
		return false
	}
	a.shapes[child].Parent = parent
	return true
}

// AddSphere adds a unit sphere centered at the origin
func (a *Arena) AddSphere(opts ShapeOptions) Handle {
	return a.add(KindSphere, opts, Shape{})
}

// AddGlassSphere adds a unit sphere with a glass material
func (a *Arena) AddGlassSphere(opts ShapeOptions) Handle {
	if opts.Material == nil {
		opts.Material = material.NewGlassMaterial()
	}
	return a.AddSphere(opts)
}

// AddPlane adds the xz plane through the origin
func (a *Arena) AddPlane(opts ShapeOptions) Handle {
	return a.add(KindPlane, opts, Shape{})
}

// AddCube adds the axis-aligned cube spanning [-1, 1] on every axis
func (a *Arena) AddCube(opts ShapeOptions) Handle {
	return a.add(KindCube, opts, Shape{})
}

// AddCylinder adds a unit-radius cylinder around the y axis, truncated to
// (minimum, maximum). Use math.Inf for an unbounded cylinder.
func (a *Arena) AddCylinder(opts ShapeOptions, minimum, maximum float64, closed bool) Handle {
	return a.add(KindCylinder, opts, Shape{Minimum: minimum, Maximum: maximum, Closed: closed})
}

// AddInfiniteCylinder adds an open cylinder with no y bounds
func (a *Arena) AddInfiniteCylinder(opts ShapeOptions) Handle {
	return a.AddCylinder(opts, math.Inf(-1), math.Inf(1), false)
}

// AddCone adds a double-napped cone around the y axis whose radius at height
// y is |y|, truncated to (minimum, maximum)
func (a *Arena) AddCone(opts ShapeOptions, minimum, maximum float64, closed bool) Handle {
	return a.add(KindCone, opts, Shape{Minimum: minimum, Maximum: maximum, Closed: closed})
}

// AddTriangle adds a triangle with precomputed edges and face normal
func (a *Arena) AddTriangle(opts ShapeOptions, p1, p2, p3 core.Tuple) Handle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	normal := e2.Cross(e1)
	if normal.LengthSquared() == 0 {
		a.fail(fmt.Errorf("degenerate triangle %v %v %v", p1, p2, p3))
	} else {
		normal = normal.Normalize()
	}
	return a.add(KindTriangle, opts, Shape{P1: p1, P2: p2, P3: p3, E1: e1, E2: e2, Normal: normal})
}

// AddGroup adds a group owning the given children. The children must not
// already have a parent. The group bounds are computed once here.
func (a *Arena) AddGroup(opts ShapeOptions, children ...Handle) Handle {
	opts.Material = nil
	h := a.add(KindGroup, opts, Shape{})

	owned := make([]Handle, 0, len(children))
	bounds := core.EmptyAABB()
	for _, child := range children {
		if !a.adopt(h, child) {
			continue
		}
		owned = append(owned, child)
		bounds = bounds.Union(a.ParentSpaceBounds(child))
	}

	a.shapes[h].Children = owned
	a.shapes[h].bounds = bounds
	return h
}

// AddCSG adds a constructive solid geometry shape combining left and right
func (a *Arena) AddCSG(opts ShapeOptions, op Operation, left, right Handle) Handle {
	opts.Material = nil
	h := a.add(KindCSG, opts, Shape{Operation: op, Left: left, Right: right})

	bounds := core.EmptyAABB()
	for _, child := range [2]Handle{left, right} {
		if a.adopt(h, child) {
			bounds = bounds.Union(a.ParentSpaceBounds(child))
		}
	}
	a.shapes[h].bounds = bounds
	return h
}

// Includes reports whether needle is container itself or nested anywhere
// beneath it. Membership is decided by handle identity.
func (a *Arena) Includes(container, needle Handle) bool {
	if container == needle {
		return true
	}
	s := &a.shapes[container]
	switch s.Kind {
	case KindGroup:
		for _, child := range s.Children {
			if a.Includes(child, needle) {
				return true
			}
		}
	case KindCSG:
		return a.Includes(s.Left, needle) || a.Includes(s.Right, needle)
	}
	return false
}

// Roots returns the handles of all shapes without a parent, in creation order
func (a *Arena) Roots() []Handle {
	var roots []Handle
	for i := range a.shapes {
		if a.shapes[i].Parent == NoParent {
			roots = append(roots, Handle(i))
		}
	}
	return roots
}
