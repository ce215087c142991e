package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/catalog/app/repositories"
	"github.com/shashiranjanraj/catalog/app/services"
	"github.com/shashiranjanraj/catalog/config"
	"github.com/shashiranjanraj/catalog/internal/kernel"
	"github.com/shashiranjanraj/catalog/internal/server"
	"github.com/shashiranjanraj/catalog/pkg/cache"
	"github.com/shashiranjanraj/catalog/pkg/database"
	"github.com/shashiranjanraj/catalog/pkg/logger"
)

// catalog serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the product REST API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		client, err := database.ConnectFromConfig(ctx)
		if err != nil {
			return err
		}
		defer database.Disconnect(client) //nolint:errcheck

		logger.Info("connected to mongodb", "database", config.DatabaseName())

		store := connectCache(ctx)
		defer store.Close() //nolint:errcheck

		repo := repositories.NewProductRepository(client.Database(config.DatabaseName()))
		svc := services.NewProductService(repo, store, config.CacheTTL())

		return server.Start(ctx, config.ListenAddr(), kernel.NewRouter(svc).Handler())
	},
}

// connectCache returns a disabled cache when Redis is not configured or
// not reachable; the API works without it.
func connectCache(ctx context.Context) *cache.Redis {
	addr := config.RedisAddr()
	if addr == "" {
		return cache.Disabled()
	}
	store, err := cache.Connect(ctx, addr, config.RedisPassword())
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", "addr", addr, "error", err)
		return cache.Disabled()
	}
	logger.Info("redis cache enabled", "addr", addr)
	return store
}

// catalog route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List the HTTP routes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s  %-40s  %s\n", "METHOD", "PATH", "NAME")
		for _, ri := range kernel.NewRouter(nil).Routes() {
			fmt.Fprintf(out, "%-8s  %-40s  %s\n", ri.Method, ri.Path, ri.Name)
		}
		return nil
	},
}
