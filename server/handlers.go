package server

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/alexraskin/foodgram-technologies/internal/cache"
	"github.com/alexraskin/foodgram-technologies/internal/pages"
)

func (s *Server) renderError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, "error.html", nil); err != nil {
		slog.Error("Failed to render error template", "error", err)
	}
}

func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/technologies", http.StatusSeeOther)
}

func (s *Server) HandleTechnologies(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, pages.TechnologiesTemplate, pages.Technologies())
}

// renderPage serves the named template from the page cache, rendering it on a
// miss. The cache is keyed by template name only, so data must be fixed for
// a given template.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	page, ok := s.pages.Get(name)
	if !ok {
		var buf bytes.Buffer
		if err := s.tmplFunc(&buf, name, data); err != nil {
			slog.Error("Failed to render page template", "template", name, "error", err)
			s.renderError(w, http.StatusInternalServerError)
			return
		}
		p := cache.Page{
			Body: buf.Bytes(),
			ETag: pageETag(buf.Bytes()),
		}
		s.pages.Set(name, p)
		page = &p
	}

	w.Header().Set("ETag", page.ETag)
	if etagMatches(r.Header.Get("If-None-Match"), page.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page.Body); err != nil {
		slog.Debug("Failed to write page", "template", name, "error", err)
	}
}

func pageETag(body []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
