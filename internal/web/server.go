// Package web hosts the judgment journal HTTP service: the bilingual entry
// form, per-session record storage, and JSON/CSV exports.
package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/sunghokang/judgement.archive/internal/archive"
	"github.com/sunghokang/judgement.archive/internal/platform/branding"
	"github.com/sunghokang/judgement.archive/internal/platform/timeouts"
	"github.com/sunghokang/judgement.archive/internal/web/flash"
	webi18n "github.com/sunghokang/judgement.archive/internal/web/i18n"
	webtemplates "github.com/sunghokang/judgement.archive/internal/web/templates"
)

var subStaticFS = func() (fs.FS, error) {
	return fs.Sub(assetsFS, "static")
}

// Config defines the inputs for the journal web server.
type Config struct {
	HTTPAddr string
	AppName  string
}

// Server hosts the journal HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type handler struct {
	appName  string
	sessions *sessionStore
}

// localizer resolves the request locale, optionally persists a cookie,
// and returns a message printer with the resolved language tag string.
func localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, setCookie := webi18n.ResolveTag(r)
	if setCookie {
		webi18n.SetLanguageCookie(w, tag)
	}
	return webi18n.Printer(tag), tag.String()
}

// NewHandler creates the HTTP handler for the journal UX.
func NewHandler(config Config) (http.Handler, error) {
	mux := http.NewServeMux()
	staticFS, err := subStaticFS()
	if err != nil {
		return nil, fmt.Errorf("resolve static assets: %w", err)
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}
	h := &handler{
		appName:  appName,
		sessions: newSessionStore(timeouts.SessionIdle, nil),
	}

	mux.HandleFunc("/", h.handleArchivePage)
	mux.HandleFunc("/entries", h.handleEntrySave)
	mux.HandleFunc("/entries/clear", h.handleClearAll)
	mux.HandleFunc("/form/clear", h.handleFormClear)
	mux.HandleFunc("/export/all.json", h.handleExportAllJSON)
	mux.HandleFunc("/export/all.csv", h.handleExportAllCSV)
	mux.HandleFunc("/export/entries/", h.handleExportEntry)

	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return mux, nil
}

// handleArchivePage renders the journal page. A mode query switches the
// session's form template; a lang query persists a language cookie.
func (h *handler) handleArchivePage(w http.ResponseWriter, r *http.Request) {
	printer, lang := localizer(w, r)
	if r.URL.Path != "/" {
		http.Error(w, webtemplates.T(printer, "error.http.not_found"), http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, webtemplates.T(printer, "error.http.method_not_allowed"), http.StatusMethodNotAllowed)
		return
	}

	sess := h.ensureSession(w, r)
	if modeValue := strings.TrimSpace(r.URL.Query().Get("mode")); modeValue != "" {
		sess.SetMode(archive.ParseVariant(modeValue))
	}

	state := webtemplates.ArchivePageState{
		Mode:    sess.Mode(),
		Values:  map[string]string{},
		Entries: entryViews(sess.store),
	}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		state.Notice = webtemplates.T(printer, notice.Key)
	}

	templ.Handler(webtemplates.ArchivePage(h.pageContext(printer, lang, r), state)).ServeHTTP(w, r)
}

func (h *handler) pageContext(printer *message.Printer, lang string, r *http.Request) webtemplates.PageContext {
	return webtemplates.PageContext{
		Lang:         lang,
		Loc:          printer,
		AppName:      h.appName,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
	}
}

// entryViews prepares the session's records for display, newest first.
func entryViews(store *archive.Store) []webtemplates.EntryView {
	views := make([]webtemplates.EntryView, 0, store.Len())
	position := 0
	for entry := range store.All() {
		position++
		views = append(views, webtemplates.EntryView{
			Position:   position,
			RecordedAt: entry.RecordedAt(),
			Variant:    entry.Variant(),
			Fields:     entry.Fields(),
		})
	}
	return views
}

// NewServer builds a configured journal web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{httpAddr: httpAddr, httpServer: httpServer}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("journal listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
