package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"civicwiki/internal/builder"
	"civicwiki/internal/config"
	"civicwiki/internal/docview"
)

// Server exposes the generated wiki over HTTP: raw pages under /html/, the
// viewer API under /api/, and the live-reload websocket at /ws.
type Server struct {
	cfg config.Config
	hub *reloadHub
}

// New creates a Server for an already-built output directory.
func New(cfg config.Config) *Server {
	return &Server{cfg: cfg, hub: newReloadHub()}
}

// Router assembles the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// The websocket upgrade needs the raw ResponseWriter, so /ws stays
	// outside the logging middleware.
	r.Get("/ws", s.hub.serveWS)

	r.Group(func(g chi.Router) {
		g.Use(chimw.RequestID)
		g.Use(accessLog)

		g.Get("/api/pages", s.handleListPages)
		g.Get("/api/pages/{name}", s.handlePage)

		pages := http.StripPrefix("/html/", http.FileServer(http.Dir(s.cfg.OutputDir)))
		g.Handle("/html/*", noCache(injectReloadScript(pages)))
		g.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/html/index.html", http.StatusFound)
		})
	})

	return r
}

// handleListPages serves the build manifest: the ordered list of generated
// page filenames.
func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	names, err := builder.ReadManifest(s.cfg.OutputDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "manifest unavailable; run a build first")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pages": names})
}

// handlePage serves a single page as viewer-ready JSON: resolved title, body
// with annotated headings, and the table of contents.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	// Only flat page names exist; anything path-like is a client error.
	if name != filepath.Base(name) || name == "" {
		writeError(w, http.StatusBadRequest, "invalid page name")
		return
	}
	if !strings.HasSuffix(strings.ToLower(name), ".html") {
		name += ".html"
	}

	f, err := os.Open(filepath.Join(s.cfg.OutputDir, name))
	if errors.Is(err, os.ErrNotExist) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no such page: %s", name))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not read page")
		return
	}
	defer f.Close()

	doc, err := docview.Parse(f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not process page")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// noCache disables client and intermediary caching so a rebuilt page is
// always refetched.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// injectReloadScript rewrites successful HTML responses to include the
// live-reload script just before </body>.
func injectReloadScript(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isHTML := strings.HasSuffix(r.URL.Path, ".html") || strings.HasSuffix(r.URL.Path, "/")
		if !isHTML {
			next.ServeHTTP(w, r)
			return
		}

		iw := newInterceptingWriter(w)
		next.ServeHTTP(iw, r)

		for key, values := range iw.Header() {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}

		bodyBytes := iw.body.Bytes()
		if iw.statusCode != http.StatusOK {
			w.WriteHeader(iw.statusCode)
			w.Write(bodyBytes)
			return
		}

		injected := bytes.Replace(bodyBytes, []byte("</body>"), []byte(liveReloadScript+"</body>"), 1)
		w.Header().Set("Content-Length", fmt.Sprint(len(injected)))
		w.WriteHeader(iw.statusCode)
		w.Write(injected)
	})
}

// interceptingWriter buffers a downstream handler's response so it can be
// rewritten before reaching the client.
type interceptingWriter struct {
	http.ResponseWriter
	body       *bytes.Buffer
	statusCode int
	header     http.Header
}

func newInterceptingWriter(w http.ResponseWriter) *interceptingWriter {
	return &interceptingWriter{
		ResponseWriter: w,
		body:           new(bytes.Buffer),
		header:         make(http.Header),
		statusCode:     http.StatusOK,
	}
}

func (iw *interceptingWriter) Header() http.Header { return iw.header }

func (iw *interceptingWriter) Write(b []byte) (int, error) { return iw.body.Write(b) }

func (iw *interceptingWriter) WriteHeader(statusCode int) { iw.statusCode = statusCode }

const liveReloadScript = `
<script>
  (function() {
    let socket = new WebSocket("ws://" + window.location.host + "/ws");
    socket.onmessage = function(event) {
      if (event.data === "reload") {
        window.location.reload();
      }
    };
    socket.onerror = function() {
      console.error("Live reload connection error. Please restart the server.");
    };
  })();
</script>
`
