package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-ray-tracer/pkg/renderer"
	"github.com/df07/go-ray-tracer/pkg/scene"
	"github.com/df07/go-ray-tracer/pkg/world"
)

// Request limits shared by the render, inspect and scene-config endpoints
const (
	MinImageSize = 8
	MaxImageSize = 2000
	MaxDepth     = 20
	MaxWorkers   = 256
	MinFovDeg    = 1.0
	MaxFovDeg    = 179.0
)

// Server handles web requests for the ray tracer
type Server struct {
	port int
	mux  *http.ServeMux
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{port: port, mux: http.NewServeMux()}

	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/render/stream", s.handleRenderStream)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)

	return s
}

// Handler returns the HTTP handler serving every endpoint
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene    string  `json:"scene"`    // Scene ID (e.g., "cornell-box" or "obj:teapot")
	Width    int     `json:"width"`    // Image width
	Height   int     `json:"height"`   // Image height
	FovDeg   float64 `json:"fov"`      // Field of view in degrees (0 = scene default)
	MaxDepth int     `json:"maxDepth"` // Reflection and refraction bounces
	Workers  int     `json:"workers"`  // Render workers (0 = CPU count)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in and discovered OBJ scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := scene.NewSceneByID(sceneName)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	camera := sceneObj.CameraConfig
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":          camera.Width,
			"height":         camera.Height,
			"fov":            camera.FieldOfView * 180 / math.Pi,
			"maxDepth":       sceneObj.RenderConfig.MaxDepth,
			"workers":        sceneObj.RenderConfig.NumWorkers,
			"primitiveCount": sceneObj.GetPrimitiveCount(),
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"height":   map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"maxDepth": map[string]int{"min": 1, "max": MaxDepth},
			"workers":  map[string]int{"min": 0, "max": MaxWorkers},
			"fov":      map[string]float64{"min": MinFovDeg, "max": MaxFovDeg},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// parseCommonSceneParams parses the parameters every scene request shares
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 225, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if query.Get("fov") != "" {
		if req.FovDeg, err = parseFloatParam(query, "fov", 0, MinFovDeg, MaxFovDeg); err != nil {
			return err
		}
	}
	return nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	var err error
	if req.MaxDepth, err = parseIntParam(r.URL.Query(), "maxDepth", world.DefaultMaxDepth, 1, MaxDepth); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 0, 0, MaxWorkers); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.MaxDepth > 10 {
		log.Printf("Render warning: Large image with deep recursion may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene creates the requested scene at the requested size
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	override := scene.CameraConfig{
		Width:       req.Width,
		Height:      req.Height,
		FieldOfView: req.FovDeg * math.Pi / 180,
	}

	sceneObj, err := scene.NewSceneByID(req.Scene, override)
	if err != nil {
		return nil, err
	}

	sceneObj.RenderConfig = renderer.MergeRenderConfig(sceneObj.RenderConfig, renderer.RenderConfig{
		NumWorkers: req.Workers,
		MaxDepth:   req.MaxDepth,
	})
	return sceneObj, nil
}

// writeJSON encodes v before writing the header, so an unencodable value
// becomes a 500 instead of an empty 200
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error encoding JSON response: %v", err)
		status = http.StatusInternalServerError
		data, _ = json.Marshal(map[string]string{"error": "failed to encode response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		log.Printf("Error writing JSON response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
