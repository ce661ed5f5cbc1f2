package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
)

// OBJMesh is the result of parsing a Wavefront OBJ file into an arena
type OBJMesh struct {
	Group     geometry.Handle            // Group holding every parsed triangle
	Vertices  []core.Tuple               // Vertex positions in file order (OBJ index i is Vertices[i-1])
	Groups    map[string]geometry.Handle // Named "g" groups, children of Group
	Triangles int                        // Triangles added to the arena
	Ignored   int                        // Lines that were not understood
	Skipped   int                        // Degenerate faces that were dropped
}

// OBJParser holds the state of one OBJ parse
type OBJParser struct {
	arena      *geometry.Arena
	opts       geometry.ShapeOptions
	mesh       *OBJMesh
	lineNumber int

	defaultFaces []geometry.Handle
	groupOrder   []string
	groupFaces   map[string][]geometry.Handle
	current      string
}

// NewOBJParser creates a parser that adds triangles to arena. Triangles use
// opts.Material; opts.Transform is applied to the enclosing group.
func NewOBJParser(arena *geometry.Arena, opts geometry.ShapeOptions) *OBJParser {
	return &OBJParser{
		arena:      arena,
		opts:       opts,
		mesh:       &OBJMesh{Groups: make(map[string]geometry.Handle)},
		groupFaces: make(map[string][]geometry.Handle),
	}
}

// ParseOBJ parses OBJ content from an io.Reader into arena
func ParseOBJ(reader io.Reader, arena *geometry.Arena, opts geometry.ShapeOptions) (*OBJMesh, error) {
	parser := NewOBJParser(arena, opts)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if err := parser.processLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return parser.finalize(), nil
}

// LoadOBJ loads and parses an OBJ file
func LoadOBJ(filename string, arena *geometry.Arena, opts geometry.ShapeOptions) (*OBJMesh, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	mesh, err := ParseOBJ(file, arena, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return mesh, nil
}

func (p *OBJParser) processLine(line string) error {
	p.lineNumber++

	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	switch fields[0] {
	case "v":
		return p.processVertex(fields[1:])
	case "f":
		return p.processFace(fields[1:])
	case "g":
		p.processGroup(fields[1:])
		return nil
	default:
		p.mesh.Ignored++
		return nil
	}
}

func (p *OBJParser) processVertex(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("line %d: vertex needs 3 coordinates, got %d", p.lineNumber, len(args))
	}

	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid vertex coordinate %q: %w", p.lineNumber, args[i], err)
		}
		xyz[i] = v
	}

	p.mesh.Vertices = append(p.mesh.Vertices, core.NewPoint(xyz[0], xyz[1], xyz[2]))
	return nil
}

func (p *OBJParser) processFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("line %d: face needs at least 3 vertices, got %d", p.lineNumber, len(args))
	}

	points := make([]core.Tuple, len(args))
	for i, arg := range args {
		index, err := p.vertexIndex(arg)
		if err != nil {
			return err
		}
		points[i] = p.mesh.Vertices[index]
	}

	triangleOpts := geometry.ShapeOptions{Material: p.opts.Material}

	// Fan triangulation around the first vertex
	for i := 1; i < len(points)-1; i++ {
		if isDegenerate(points[0], points[i], points[i+1]) {
			p.mesh.Skipped++
			continue
		}
		h := p.arena.AddTriangle(triangleOpts, points[0], points[i], points[i+1])
		p.mesh.Triangles++

		if p.current == "" {
			p.defaultFaces = append(p.defaultFaces, h)
		} else {
			p.groupFaces[p.current] = append(p.groupFaces[p.current], h)
		}
	}
	return nil
}

// vertexIndex resolves a face reference ("7", "7/1", "7//3", "7/1/3", or a
// negative index counting back from the last vertex) to a Vertices offset
func (p *OBJParser) vertexIndex(ref string) (int, error) {
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}

	index, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid vertex index %q: %w", p.lineNumber, ref, err)
	}

	count := len(p.mesh.Vertices)
	switch {
	case index > 0 && index <= count:
		return index - 1, nil
	case index < 0 && -index <= count:
		return count + index, nil
	default:
		return 0, fmt.Errorf("line %d: vertex index %d out of range (have %d vertices)", p.lineNumber, index, count)
	}
}

func (p *OBJParser) processGroup(args []string) {
	name := strings.Join(args, " ")
	if name == "" {
		p.current = ""
		return
	}
	if _, seen := p.groupFaces[name]; !seen {
		p.groupOrder = append(p.groupOrder, name)
		p.groupFaces[name] = nil
	}
	p.current = name
}

// finalize builds the named groups and the enclosing group
func (p *OBJParser) finalize() *OBJMesh {
	children := append([]geometry.Handle(nil), p.defaultFaces...)
	for _, name := range p.groupOrder {
		g := p.arena.AddGroup(geometry.ShapeOptions{}, p.groupFaces[name]...)
		p.mesh.Groups[name] = g
		children = append(children, g)
	}

	p.mesh.Group = p.arena.AddGroup(geometry.ShapeOptions{Transform: p.opts.Transform}, children...)
	return p.mesh
}

func isDegenerate(p1, p2, p3 core.Tuple) bool {
	return p3.Subtract(p1).Cross(p2.Subtract(p1)).LengthSquared() == 0
}

// validateFilePath validates a file path for security issues
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)

	// Only allow files in a scenes/ directory or the temp directory (for tests)
	if !strings.HasPrefix(cleanPath, "scenes"+string(filepath.Separator)) &&
		!strings.Contains(cleanPath, string(filepath.Separator)+"scenes"+string(filepath.Separator)) &&
		!strings.HasPrefix(cleanPath, os.TempDir()) {
		return fmt.Errorf("file path must be in scenes/ directory")
	}

	if !strings.EqualFold(filepath.Ext(cleanPath), ".obj") {
		return fmt.Errorf("invalid file type: only .obj files are allowed")
	}

	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	return nil
}
