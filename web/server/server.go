package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

var logger = log.New("web")

// Server answers render and inspection requests over HTTP
type Server struct {
	addr string
}

// NewServer creates a new web server listening on addr
func NewServer(addr string) *Server {
	return &Server{addr: addr}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string `json:"scene"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	SamplesPerPixel int    `json:"samplesPerPixel"`
	Seed            int64  `json:"seed"`
	Format          string `json:"format"` // "png" or "json"

	Options integrator.Options `json:"-"`
}

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	Scene     string           `json:"scene"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels     int        `json:"totalPixels"`
	PrimaryRays     int        `json:"primaryRays"`
	SamplesPerPixel int        `json:"samplesPerPixel"`
	ElapsedMs       int64      `json:"elapsedMs"`
	MeanColor       [3]float64 `json:"meanColor"`
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start serves until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	errs := make(chan error, 1)
	go func() {
		logger.Noticef("listening on http://%s", s.addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.List())
}

// handleRender renders a full frame and returns it as PNG or JSON
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sc, err := scene.Create(req.Scene, scene.Config{})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	console := make(chan ConsoleMessage, 16)
	config := renderer.SamplingConfig{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.SamplesPerPixel,
		Seed:            req.Seed,
	}
	rt, err := renderer.NewRaytracer(sc, integrator.NewWhittedIntegrator(req.Options), config, NewWebLogger(renderID, console))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, stats := rt.RenderPass()
	close(console)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, "encoding image: "+err.Error())
		return
	}

	if req.Format == "png" {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
		return
	}

	response := RenderResponse{
		Scene:     sc.Name,
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Stats: Stats{
			TotalPixels:     stats.TotalPixels,
			PrimaryRays:     stats.PrimaryRays,
			SamplesPerPixel: stats.SamplesPerPixel,
			ElapsedMs:       stats.RenderTime.Milliseconds(),
			MeanColor:       [3]float64{stats.MeanColor.X, stats.MeanColor.Y, stats.MeanColor.Z},
		},
	}
	for msg := range console {
		response.Console = append(response.Console, msg)
	}
	writeJSON(w, http.StatusOK, response)
}

// parseRenderRequest parses request parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	defaults := renderer.DefaultSamplingConfig()
	req := &RenderRequest{
		Scene:   "default",
		Format:  "png",
		Options: integrator.DefaultOptions(),
	}
	if name := values.Get("scene"); name != "" {
		req.Scene = name
	}
	if format := values.Get("format"); format != "" {
		if format != "png" && format != "json" {
			return nil, fmt.Errorf("format must be png or json, got: %s", format)
		}
		req.Format = format
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", defaults.Width, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", defaults.Height, 1, 2000); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(values, "spp", defaults.SamplesPerPixel, 1, 256); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(values, "seed", int(defaults.Seed), 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	opts := &req.Options
	if opts.MaxRecursion, err = parseIntParam(values, "maxDepth", opts.MaxRecursion, 0, 32); err != nil {
		return nil, err
	}
	if opts.SoftShadowsOn, err = parseBoolParam(values, "softShadows", opts.SoftShadowsOn); err != nil {
		return nil, err
	}
	if opts.AmbientOn, err = parseBoolParam(values, "ambient", opts.AmbientOn); err != nil {
		return nil, err
	}
	if opts.DiffuseOn, err = parseBoolParam(values, "diffuse", opts.DiffuseOn); err != nil {
		return nil, err
	}
	if opts.SpecularOn, err = parseBoolParam(values, "specular", opts.SpecularOn); err != nil {
		return nil, err
	}
	sampled, err := parseBoolParam(values, "sampledPointShadows", false)
	if err != nil {
		return nil, err
	}
	if sampled {
		opts.PointLightShadows = shading.ShadowAreaSampled
	}

	if req.Width*req.Height*req.SamplesPerPixel > 800*600*16 {
		logger.Warningf("large render requested: %dx%d at %d spp", req.Width, req.Height, req.SamplesPerPixel)
	}
	return req, opts.Validate()
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

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warningf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
