package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-ray-tracer/pkg/canvas"
	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/renderer"
	"github.com/df07/go-ray-tracer/pkg/scene"
)

// SSEEvent represents a server-sent event to be written
type SSEEvent struct {
	Event string
	Data  string
}

// CompleteEvent is the payload of the final event of a streamed render
type CompleteEvent struct {
	ImageData      string  `json:"imageData"` // Base64 PNG
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Rows           int     `json:"rows"`
	Pixels         int     `json:"pixels"`
	Workers        int     `json:"workers"`
	PrimitiveCount int     `json:"primitiveCount"`
	RenderTimeMs   int64   `json:"renderTimeMs"`
	PixelsPerSec   float64 `json:"pixelsPerSecond"`
}

// handleRender renders a scene and writes the image as PNG or PPM
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}
	if format != "png" && format != "ppm" {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("unsupported format: %s", format))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, stats, err := s.renderScene(r.Context(), sceneObj, renderer.NewDefaultLogger())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) {
			// Client went away
			status = http.StatusServiceUnavailable
		}
		writeJSONError(w, status, err.Error())
		return
	}

	var buf bytes.Buffer
	switch format {
	case "ppm":
		err = canvas.EncodePPM(&buf, img)
		w.Header().Set("Content-Type", "image/x-portable-pixmap")
	default:
		err = png.Encode(&buf, canvas.ToRGBA(img))
		w.Header().Set("Content-Type", "image/png")
	}
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Primitive-Count", strconv.Itoa(sceneObj.GetPrimitiveCount()))
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing image: %v", err)
	}
}

// handleRenderStream renders a scene and streams console output followed by
// the finished image as server-sent events
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	// Single writer goroutine owns the ResponseWriter
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging(req.Scene)
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	webLogger.Printf("Scene %s: %d primitives\n", req.Scene, sceneObj.GetPrimitiveCount())
	img, stats, renderErr := s.renderScene(ctx, sceneObj, webLogger)

	// Console output goes out before the final event
	close(consoleChan)
	<-consoleDone

	if renderErr != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("render failed: %v", renderErr))
		return
	}

	imageData, err := s.imageToBase64PNG(img)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	data, err := json.Marshal(CompleteEvent{
		ImageData:      imageData,
		Width:          img.Width(),
		Height:         img.Height(),
		Rows:           stats.Rows,
		Pixels:         stats.Pixels,
		Workers:        stats.Workers,
		PrimitiveCount: sceneObj.GetPrimitiveCount(),
		RenderTimeMs:   stats.Duration.Milliseconds(),
		PixelsPerSec:   stats.PixelsPerSecond(),
	})
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("failed to encode result: %v", err))
		return
	}
	s.sendEvent(ctx, sseEventChan, SSEEvent{Event: "complete", Data: string(data)})
}

// renderScene renders the scene onto a fresh canvas sized to its camera
func (s *Server) renderScene(ctx context.Context, sceneObj *scene.Scene, logger core.Logger) (*canvas.Canvas, renderer.RenderStats, error) {
	camera := sceneObj.Camera
	img := canvas.NewCanvas(camera.HSize, camera.VSize)
	stats, err := camera.RenderParallel(ctx, sceneObj.World, img, sceneObj.RenderConfig, logger)
	if err != nil {
		return nil, stats, err
	}
	return img, stats, nil
}

// setSSEHeaders sets the headers for a server-sent event stream
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents writes events until the channel closes or the client disconnects
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, events <-chan SSEEvent) {
	flusher, _ := w.(http.Flusher)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, event.Data); err != nil {
				log.Printf("Error writing SSE event: %v", err)
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
	}
}

// sendEvent queues an event unless the client has gone away
func (s *Server) sendEvent(ctx context.Context, events chan<- SSEEvent, event SSEEvent) {
	select {
	case events <- event:
	case <-ctx.Done():
	}
}

// setupConsoleLogging creates the console channel and the logger feeding it
func (s *Server) setupConsoleLogging(sceneID string) (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("%s-%d", sceneID, time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// streamConsoleMessages forwards console messages as "console" events
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, events chan<- SSEEvent) {
	for msg := range consoleChan {
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error encoding console message: %v", err)
			continue
		}
		s.sendEvent(ctx, events, SSEEvent{Event: "console", Data: string(data)})
	}
}

// handleError sends an error event to the client
func (s *Server) handleError(ctx context.Context, events chan<- SSEEvent, message string) {
	log.Printf("Render error: %s", message)
	data, _ := json.Marshal(map[string]string{"error": message})
	s.sendEvent(ctx, events, SSEEvent{Event: "error", Data: string(data)})
}

// imageToBase64PNG converts an image to a base64-encoded PNG string
func (s *Server) imageToBase64PNG(img canvas.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.ToRGBA(img)); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
