package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scene types reported in SceneInfo.Type
const (
	TypeBuiltin = "builtin"
	TypeOBJ     = "obj"
)

const builtinGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "obj"
	FilePath    string `json:"filePath"`    // Path to OBJ file (obj type only)
	Variant     string `json:"variant"`     // Variant name (optional)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// Builder creates a scene, applying an optional camera override
type Builder func(cameraOverrides ...CameraConfig) (*Scene, error)

type builtinScene struct {
	info  SceneInfo
	build Builder
}

func builtin(id, name, description string, build Builder) builtinScene {
	return builtinScene{
		info: SceneInfo{
			ID:          id,
			Name:        name,
			DisplayName: name,
			Description: description,
			Group:       builtinGroup,
			Type:        TypeBuiltin,
		},
		build: build,
	}
}

var builtinScenes = []builtinScene{
	builtin("default", "Default Scene", "Three spheres on a checkered floor", NewDefaultScene),
	builtin("cornell-box", "Cornell Box", "Cornell box with a block, a mirror sphere and a glass sphere", NewCornellScene),
	builtin("cylinders", "Cylinders", "Open, closed and concentric cylinders", NewCylinderScene),
	builtin("cones", "Cones", "Closed, double and ice cream cones", NewConeScene),
	builtin("csg", "Constructive Solid Geometry", "Bored rounded cube, glass lens and bitten sphere", NewCSGScene),
	builtin("patterns", "Patterns", "Stripes, rings, gradients, checkers and a chained pattern", NewPatternScene),
	builtin("glass", "Glass and Water", "Hollow glass sphere with an air bubble over water", NewGlassScene),
	builtin("sphere-grid", "Sphere Grid", "10x10 grid of rainbow-colored spheres", NewSphereGridScene),
	builtin("triangle-mesh", "Triangle Mesh", "Icosahedron and pyramid parsed from OBJ text", NewTriangleMeshScene),
	builtin("hexagon", "Hexagon", "Hexagon of spheres and cylinders built from nested groups", NewHexagonScene),
}

// BuiltinScenes returns the metadata of every built-in scene in display order
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, s := range builtinScenes {
		infos[i] = s.info
	}
	return infos
}

// NewSceneByID creates the built-in scene with the given ID, or loads the OBJ
// scene whose ID is "obj:<name>" from the scenes directory
func NewSceneByID(id string, cameraOverrides ...CameraConfig) (*Scene, error) {
	for _, s := range builtinScenes {
		if s.info.ID == id {
			return s.build(cameraOverrides...)
		}
	}

	if strings.HasPrefix(id, TypeOBJ+":") {
		scenes, err := ListOBJScenes()
		if err != nil {
			return nil, err
		}
		for _, info := range scenes {
			if info.ID == id {
				return NewOBJScene(info.FilePath, cameraOverrides...)
			}
		}
	}

	return nil, fmt.Errorf("unknown scene %q", id)
}

// ListOBJScenes scans the scenes directory and returns discovered OBJ scenes
func ListOBJScenes() ([]SceneInfo, error) {
	// Try different possible paths for scenes directory
	possiblePaths := []string{"scenes", "../scenes"}
	var scenesDir string

	for _, path := range possiblePaths {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			scenesDir = path
			break
		}
	}

	if scenesDir == "" {
		// No scenes directory found, return empty list
		return []SceneInfo{}, nil
	}

	pattern := filepath.Join(scenesDir, "*.obj")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		sceneInfo, err := ParseOBJMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseOBJMetadata extracts metadata from OBJ file header comments:
//
//	# Scene: Teapot
//	# Variant: Low Poly
//	# Description: The Utah teapot
//	# Group: Classic Meshes
func ParseOBJMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          fmt.Sprintf("%s:%s", TypeOBJ, nameWithoutExt),
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       "OBJ Meshes",
		Type:        TypeOBJ,
		FilePath:    filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		// If we can't read the file, return with fallback values
		return sceneInfo, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		key, value, found := strings.Cut(content, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case "Scene":
			sceneInfo.Name = value
		case "Variant":
			sceneInfo.Variant = value
		case "Description":
			sceneInfo.Description = value
		case "Group":
			sceneInfo.Group = value
		}
	}

	if sceneInfo.Variant != "" {
		sceneInfo.DisplayName = fmt.Sprintf("%s - %s", sceneInfo.Name, sceneInfo.Variant)
	} else {
		sceneInfo.DisplayName = sceneInfo.Name
	}

	return sceneInfo, scanner.Err()
}

// ListAllScenes returns both built-in and OBJ scenes, grouped by category
func ListAllScenes() (ScenesResponse, error) {
	var response ScenesResponse

	objScenes, err := ListOBJScenes()
	if err != nil {
		return response, fmt.Errorf("failed to list OBJ scenes: %w", err)
	}

	allScenes := append(BuiltinScenes(), objScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtInGroup, exists := groupMap[builtinGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   builtinGroup,
			Scenes: builtInGroup,
		})
	}

	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
