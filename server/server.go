package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"

	"github.com/alexraskin/foodgram-technologies/internal/cache"
	"github.com/alexraskin/foodgram-technologies/internal/config"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

type Server struct {
	version  string
	cfg      config.Config
	server   *http.Server
	assets   http.FileSystem
	tmplFunc ExecuteTemplateFunc
	pages    *cache.Cache
}

func NewServer(version string, cfg config.Config, assets http.FileSystem, tmplFunc ExecuteTemplateFunc) *Server {

	s := &Server{
		version:  version,
		cfg:      cfg,
		assets:   assets,
		tmplFunc: tmplFunc,
		pages:    cache.NewCache(cfg.PageCacheTTL),
	}

	s.server = &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.Routes(),
	}

	return s
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *Server) Close() {
	if err := s.server.Close(); err != nil {
		panic(err)
	}
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
