package main

import (
	"embed"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexraskin/foodgram-technologies/internal/config"
	"github.com/alexraskin/foodgram-technologies/server"
)

var (
	version = "dev"
)

//go:embed templates/*.html
var templatesFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

func main() {
	showVersion := flag.Bool("version", false, "print build information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(server.FormatBuildVersion(version))
		return
	}

	var (
		tmplFunc server.ExecuteTemplateFunc
		assets   http.FileSystem
	)

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	tmpl, err := template.New("").ParseFS(templatesFiles, "templates/*.html")
	if err != nil {
		panic(fmt.Errorf("failed to parse templates: %w", err))
	}
	tmplFunc = tmpl.ExecuteTemplate
	assets = http.FS(staticFiles)

	srv := server.NewServer(version, cfg, assets, tmplFunc)

	go srv.Start()
	defer srv.Close()

	slog.Info("Started server", slog.String("listen_addr", ":"+cfg.Port), slog.String("version", version))
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down server")
}
