package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/material"
)

func parse(t *testing.T, content string) (*OBJMesh, *geometry.Arena) {
	t.Helper()
	arena := geometry.NewArena(nil)
	mesh, err := ParseOBJ(strings.NewReader(content), arena, geometry.ShapeOptions{})
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if err := arena.Err(); err != nil {
		t.Fatalf("Arena error: %v", err)
	}
	return mesh, arena
}

func TestParseOBJ_IgnoresUnrecognizedLines(t *testing.T) {
	content := `There was a young lady named Bright
who traveled much faster than light.
She set out one day
in a relative way,
and came back the previous night.
`
	mesh, _ := parse(t, content)
	if mesh.Ignored != 5 {
		t.Errorf("Expected 5 ignored lines, got %d", mesh.Ignored)
	}
	if mesh.Triangles != 0 {
		t.Errorf("Expected no triangles, got %d", mesh.Triangles)
	}
}

func TestParseOBJ_Vertices(t *testing.T) {
	content := `v -1 1 0
v -1.0000 0.5000 0.0000
v 1 0 0
v 1 1 0
`
	mesh, _ := parse(t, content)

	expected := []core.Tuple{
		core.NewPoint(-1, 1, 0),
		core.NewPoint(-1, 0.5, 0),
		core.NewPoint(1, 0, 0),
		core.NewPoint(1, 1, 0),
	}
	if len(mesh.Vertices) != len(expected) {
		t.Fatalf("Expected %d vertices, got %d", len(expected), len(mesh.Vertices))
	}
	for i, want := range expected {
		if !mesh.Vertices[i].Equals(want) {
			t.Errorf("Vertex %d: expected %v, got %v", i+1, want, mesh.Vertices[i])
		}
	}
}

func TestParseOBJ_TriangleFaces(t *testing.T) {
	content := `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0

f 1 2 3
f 1 3 4
`
	mesh, arena := parse(t, content)
	children := arena.Children(mesh.Group)
	if len(children) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(children))
	}

	t1 := arena.Shape(children[0])
	t2 := arena.Shape(children[1])
	v := mesh.Vertices

	if !t1.P1.Equals(v[0]) || !t1.P2.Equals(v[1]) || !t1.P3.Equals(v[2]) {
		t.Errorf("Unexpected first triangle %v %v %v", t1.P1, t1.P2, t1.P3)
	}
	if !t2.P1.Equals(v[0]) || !t2.P2.Equals(v[2]) || !t2.P3.Equals(v[3]) {
		t.Errorf("Unexpected second triangle %v %v %v", t2.P1, t2.P2, t2.P3)
	}
}

func TestParseOBJ_FanTriangulation(t *testing.T) {
	content := `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0
v 0 2 0

f 1 2 3 4 5
`
	mesh, arena := parse(t, content)
	children := arena.Children(mesh.Group)
	if len(children) != 3 || mesh.Triangles != 3 {
		t.Fatalf("Expected 3 triangles, got %d", len(children))
	}

	v := mesh.Vertices
	expected := [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}
	for i, idx := range expected {
		tri := arena.Shape(children[i])
		if !tri.P1.Equals(v[idx[0]]) || !tri.P2.Equals(v[idx[1]]) || !tri.P3.Equals(v[idx[2]]) {
			t.Errorf("Triangle %d: unexpected points %v %v %v", i, tri.P1, tri.P2, tri.P3)
		}
	}
}

func TestParseOBJ_NamedGroups(t *testing.T) {
	content := `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0
g FirstGroup
f 1 2 3
g SecondGroup
f 1 3 4
`
	mesh, arena := parse(t, content)

	first, ok := mesh.Groups["FirstGroup"]
	if !ok {
		t.Fatal("Missing FirstGroup")
	}
	second, ok := mesh.Groups["SecondGroup"]
	if !ok {
		t.Fatal("Missing SecondGroup")
	}

	if !arena.Includes(mesh.Group, first) || !arena.Includes(mesh.Group, second) {
		t.Error("Named groups must be children of the mesh group")
	}

	t1 := arena.Shape(arena.Children(first)[0])
	t2 := arena.Shape(arena.Children(second)[0])
	v := mesh.Vertices
	if !t1.P3.Equals(v[2]) || !t2.P3.Equals(v[3]) {
		t.Errorf("Unexpected group triangles %v, %v", t1.P3, t2.P3)
	}
}

func TestParseOBJ_FaceReferenceForms(t *testing.T) {
	content := `v 0 1 0
v -1 0 0
v 1 0 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
f 1//1 2//1 3//1
f -3 -2 -1
`
	mesh, arena := parse(t, content)
	if mesh.Triangles != 3 {
		t.Fatalf("Expected 3 triangles, got %d", mesh.Triangles)
	}
	if mesh.Ignored != 2 {
		t.Errorf("Expected vt and vn to be ignored, got %d", mesh.Ignored)
	}
	for _, h := range arena.Children(mesh.Group) {
		tri := arena.Shape(h)
		if !tri.P1.Equals(mesh.Vertices[0]) || !tri.P3.Equals(mesh.Vertices[2]) {
			t.Errorf("Unexpected triangle %v %v %v", tri.P1, tri.P2, tri.P3)
		}
	}
}

func TestParseOBJ_SkipsDegenerateFaces(t *testing.T) {
	content := `v 0 0 0
v 1 0 0
v 2 0 0
v 0 1 0
f 1 2 3
f 1 2 4
`
	mesh, _ := parse(t, content)
	if mesh.Triangles != 1 || mesh.Skipped != 1 {
		t.Errorf("Expected 1 triangle and 1 skipped, got %d and %d", mesh.Triangles, mesh.Skipped)
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed coordinate", "v 1 x 0\n"},
		{"short vertex", "v 1 2\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"malformed index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 two 3\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.content), geometry.NewArena(nil), geometry.ShapeOptions{})
			if err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParseOBJ_Options(t *testing.T) {
	m := material.NewColoredMaterial(core.NewColor(1, 0, 0))
	arena := geometry.NewArena(nil)
	opts := geometry.ShapeOptions{Transform: core.Translation(0, 0, 5), Material: m}

	mesh, err := ParseOBJ(strings.NewReader("v 0 1 0\nv -1 0 0\nv 1 0 0\nf 1 2 3\n"), arena, opts)
	if err != nil {
		t.Fatal(err)
	}

	group := arena.Shape(mesh.Group)
	if !group.Transform.Equals(core.Translation(0, 0, 5)) {
		t.Errorf("Expected the transform on the group, got %v", group.Transform)
	}
	tri := arena.Children(mesh.Group)[0]
	if arena.MaterialOf(tri) != m {
		t.Error("Expected triangles to use the given material")
	}

	// The mesh intersects where the translated triangle sits
	xs := arena.Intersect(mesh.Group, core.NewRay(core.NewPoint(0, 0.5, 0), core.NewVector(0, 0, 1)))
	if len(xs) != 1 || !core.FloatEquals(xs[0].T, 5) {
		t.Errorf("Expected one hit at t=5, got %v", xs.Ts())
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.obj")
	if err := os.WriteFile(path, []byte("v 0 1 0\nv -1 0 0\nv 1 0 0\nf 1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadOBJ(path, geometry.NewArena(nil), geometry.ShapeOptions{})
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if mesh.Triangles != 1 {
		t.Errorf("Expected 1 triangle, got %d", mesh.Triangles)
	}
}

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		valid bool
	}{
		{"scenes file", "scenes/teapot.obj", true},
		{"nested scenes file", "../assets/scenes/teapot.obj", true},
		{"empty", "", false},
		{"outside scenes", "/etc/passwd.obj", false},
		{"traversal out of scenes", "scenes/../../etc/teapot.obj", false},
		{"wrong extension", "scenes/teapot.ply", false},
		{"null byte", "scenes/tea\x00pot.obj", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFilePath(tt.path)
			if tt.valid && err != nil {
				t.Errorf("Expected %q to be valid, got %v", tt.path, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("Expected %q to be rejected", tt.path)
			}
		})
	}
}
