package gallery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/imagebox/internal/platform/assets/imagecdn"
	apperrors "github.com/louisbranch/imagebox/internal/platform/errors"
	platformi18n "github.com/louisbranch/imagebox/internal/platform/i18n"
	platformotel "github.com/louisbranch/imagebox/internal/platform/otel"
	"github.com/louisbranch/imagebox/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
)

const tracerName = "github.com/louisbranch/imagebox/internal/services/gallery"

// LangParam selects a language through the query string.
const LangParam = "lang"

// Config defines the gallery server inputs.
type Config struct {
	HTTPAddr string
	// AssetBaseURL is the CDN base used by stories that build their srcset
	// from an asset id.
	AssetBaseURL string
	// Catalog overrides the embedded stories.
	Catalog *Catalog
}

// Server previews image component stories over HTTP.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	handler    http.Handler
	catalog    Catalog
	cdn        imagecdn.CDN
	tracer     trace.Tracer
}

// NewServer builds a configured gallery server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	var catalog Catalog
	if config.Catalog != nil {
		catalog = *config.Catalog
	} else {
		embedded, err := EmbeddedCatalog()
		if err != nil {
			return nil, fmt.Errorf("load story catalog: %w", err)
		}
		catalog = embedded
	}

	s := &Server{
		httpAddr: httpAddr,
		catalog:  catalog,
		cdn:      imagecdn.New(config.AssetBaseURL),
		tracer:   platformotel.Tracer(tracerName),
	}

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", s.traced("GET /", s.handleIndex))
	mux.Handle("GET /stories/{id}", s.traced("GET /stories/{id}", s.handleStory))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s.handler = mux
	s.httpServer = &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return s, nil
}

// Handler returns the HTTP handler serving the gallery routes.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves requests until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("gallery server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("gallery listening on %s", s.httpAddr)
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

// Close stops the HTTP server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close gallery http server: %v", err)
	}
}

func (s *Server) traced(route string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := s.tracer.Start(ctx, route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("url.path", r.URL.Path),
			),
		)
		defer span.End()
		next(w, r.WithContext(ctx))
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	tag := resolveLanguage(r)
	printer := platformi18n.Printer(tag)
	title := printer.Sprintf(platformi18n.KeyGalleryTitle)
	page := pageLayout(tag.String(), title, storyIndex(title, s.catalog.Stories()))
	templ.Handler(page).ServeHTTP(w, r)
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	span := trace.SpanFromContext(r.Context())
	id := r.PathValue("id")
	span.SetAttributes(attribute.String("gallery.story_id", id))

	story, err := s.catalog.Lookup(id)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeStoryNotFound) {
			span.SetStatus(codes.Error, "story not found")
			http.NotFound(w, r)
			return
		}
		s.fail(w, span, err)
		return
	}

	tag := resolveLanguage(r)
	printer := platformi18n.Printer(tag)
	preview, err := story.component(renderEnv{
		cdn:             s.cdn,
		fallbackCaption: platformi18n.DefaultCaption(tag),
	})
	if err != nil {
		s.fail(w, span, err)
		return
	}
	body, err := storyPage(r.Context(), story, preview, printer.Sprintf(platformi18n.KeyGalleryEmpty))
	if err != nil {
		s.fail(w, span, fmt.Errorf("render story %s: %w", story.ID, err))
		return
	}
	templ.Handler(pageLayout(tag.String(), story.Title, body)).ServeHTTP(w, r)
}

func (s *Server) fail(w http.ResponseWriter, span trace.Span, err error) {
	log.Printf("gallery: %v", err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// resolveLanguage prefers the lang query parameter over Accept-Language.
func resolveLanguage(r *http.Request) language.Tag {
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, ok := platformi18n.ParseTag(value); ok {
			return tag
		}
	}
	return platformi18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
}
