package site

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
)

// DevServer serves the site with watch mode and live reload. Pages are
// rendered in memory and rebuilt whenever the document changes.
type DevServer struct {
	docPath string
	title   string
	port    int

	mu    sync.RWMutex
	pages map[string][]byte

	clients   map[chan struct{}]struct{}
	clientsMu sync.Mutex
}

// NewDevServer creates a development server for the given document.
func NewDevServer(docPath, title string, port int) *DevServer {
	return &DevServer{
		docPath: docPath,
		title:   title,
		port:    port,
		clients: make(map[chan struct{}]struct{}),
	}
}

// Serve starts the development server with watch mode.
func (s *DevServer) Serve(ctx context.Context) error {
	if err := s.rebuild(); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: editors replace files on save
	// and a direct file watch goes stale after the first write.
	if err := watcher.Add(filepath.Dir(s.docPath)); err != nil {
		return fmt.Errorf("failed to watch document dir: %w", err)
	}

	go s.watchLoop(ctx, watcher)

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/__reload", s.handleSSE)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("Dev server running at http://localhost:%d", s.port)
	log.Printf("Watching %s", s.docPath)
	log.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// watchLoop handles file system events with a debounce.
func (s *DevServer) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.docPath) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				log.Printf("Change detected: %s", filepath.Base(event.Name))
				if err := s.rebuild(); err != nil {
					log.Printf("Rebuild error: %v", err)
				} else {
					s.notifyClients()
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// rebuild reparses the document and rerenders every page in memory.
func (s *DevServer) rebuild() error {
	document, err := doc.ParseFile(s.docPath)
	if err != nil {
		return err
	}

	gen := NewGenerator(document, s.title)
	catalog := gen.GenerateCatalog()

	pages := make(map[string][]byte, len(catalog.Sections)+2)

	index, err := gen.renderIndex(catalog)
	if err != nil {
		return err
	}
	pages["/"] = injectReload(index)
	pages["/index.html"] = pages["/"]
	pages["/styles.css"] = []byte(siteCSS)

	for _, sd := range catalog.Sections {
		page, err := gen.renderSection(catalog, sd)
		if err != nil {
			return err
		}
		pages["/tips/"+sd.Anchor+".html"] = injectReload(page)
	}

	s.mu.Lock()
	s.pages = pages
	s.mu.Unlock()

	log.Println("Rebuild complete")
	return nil
}

// handlePage serves a rendered page from memory.
func (s *DevServer) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	page, ok := s.pages[r.URL.Path]
	s.mu.RUnlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	contentType := "text/html; charset=utf-8"
	if strings.HasSuffix(r.URL.Path, ".css") {
		contentType = "text/css; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	_, _ = w.Write(page)
}

// handleSSE handles Server-Sent Events for live reload.
func (s *DevServer) handleSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	ch := make(chan struct{}, 1)
	s.clientsMu.Lock()
	s.clients[ch] = struct{}{}
	s.clientsMu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, ch)
		s.clientsMu.Unlock()
		close(ch)
	}()

	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ch:
			_, _ = fmt.Fprintf(w, "data: reload\n\n")
			flusher.Flush()
		}
	}
}

// notifyClients sends reload signal to all connected clients.
func (s *DevServer) notifyClients() {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	for ch := range s.clients {
		select {
		case ch <- struct{}{}:
		default:
			// Channel full, skip
		}
	}
}

// injectReload appends the live reload script before </body>.
func injectReload(page []byte) []byte {
	html := string(page)
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return []byte(html[:i] + liveReloadScript + html[i:])
	}
	return append(page, []byte(liveReloadScript)...)
}

// liveReloadScript is injected into each page in dev mode.
const liveReloadScript = `<script>
;(function() {
  var es = new EventSource('/__reload');
  es.onmessage = function(e) {
    if (e.data === 'reload') {
      console.log('[dev] Reloading...');
      window.location.reload();
    }
  };
  es.onerror = function() {
    console.log('[dev] Connection lost, reconnecting...');
    setTimeout(function() { window.location.reload(); }, 1000);
  };
})();
</script>
`

// ServeDev is a convenience function to start the dev server.
func ServeDev(docPath, title string, port int) error {
	server := NewDevServer(docPath, title, port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\nShutting down...")
		cancel()
	}()

	return server.Serve(ctx)
}
