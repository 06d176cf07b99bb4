package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/soochol/awsblogs/internal/blog"
	"github.com/soochol/awsblogs/internal/config"
	"github.com/soochol/awsblogs/internal/content"
	"github.com/soochol/awsblogs/internal/feed"
	"github.com/soochol/awsblogs/internal/logger"
	"github.com/soochol/awsblogs/internal/services"
	"github.com/soochol/awsblogs/internal/tools"
)

// app holds the wired components shared by every command.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	registry *tools.Registry
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newApp builds the logger, fetchers, service and tool registry from cfg.
func newApp(cfg *config.Config) (*app, error) {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	client := &http.Client{Timeout: cfg.Fetch.Timeout}
	categories := blog.DefaultRegistry()

	feeds := feed.NewRSSFetcher(client, cfg.Fetch.UserAgent)
	pages := content.NewFetcher(client, categories, content.Options{
		SitePrefix:   cfg.Fetch.SitePrefix,
		UserAgent:    cfg.Fetch.UserAgent,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
	})
	svc := services.NewBlogService(categories, feeds, pages, cfg.Fetch.Concurrency)

	registry := tools.NewRegistry(log)
	tools.RegisterBlogTools(registry, svc)

	return &app{cfg: cfg, log: log, registry: registry}, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}
