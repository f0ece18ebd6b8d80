package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"civicwiki/internal/config"
)

// Run performs an initial build, then serves the output directory while
// watching the workspace for changes. Each change triggers a rebuild and a
// live-reload broadcast to connected browsers.
func Run(port int, cfg config.Config, buildFunc func() error) error {
	if err := buildFunc(); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	srv := New(cfg)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer watcher.Close()

	watchedDirs := make(map[string]bool)
	addWatch := func(dir string) {
		dir = filepath.Clean(dir)
		if watchedDirs[dir] {
			return
		}
		if err := watcher.Add(dir); err != nil {
			log.Printf("error adding watch on %s: %v", dir, err)
			return
		}
		fmt.Printf("Watching directory: %s\n", dir)
		watchedDirs[dir] = true
	}

	// Template and config are single files; watching their parent directory
	// survives editors that replace files on save.
	pathsToWatch := []string{cfg.ContentDir, cfg.Template, "wiki.yaml"}
	for _, path := range pathsToWatch {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("could not stat path %s: %w", path, err)
		}
		if info.IsDir() {
			addWatch(path)
		} else {
			addWatch(filepath.Dir(path))
		}
	}

	go watchForChanges(watcher, srv.hub, cfg.OutputDir, buildFunc)

	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Serving wiki on http://localhost%s\n", addr)
	fmt.Println("Press Ctrl+C to stop")
	return http.ListenAndServe(addr, srv.Router())
}

// watchForChanges rebuilds on filesystem events, debounced so editor save
// bursts trigger a single build. Changes inside the output directory are
// ignored; the builder itself writes there.
func watchForChanges(watcher *fsnotify.Watcher, hub *reloadHub, outputDir string, buildFunc func() error) {
	var lastBuildTime time.Time
	const debounceDuration = 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if isInsideDir(event.Name, outputDir) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if time.Since(lastBuildTime) > debounceDuration {
					time.Sleep(100 * time.Millisecond)

					log.Printf("change detected in %s, rebuilding...", event.Name)
					if err := buildFunc(); err != nil {
						log.Printf("error rebuilding wiki: %v", err)
					} else {
						log.Println("wiki rebuilt, triggering reload")
						hub.broadcast([]byte("reload"))
					}
					lastBuildTime = time.Now()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func isInsideDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)))
}
