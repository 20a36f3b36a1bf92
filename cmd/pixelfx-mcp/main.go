package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/ironsheep/pixelfx-mcp/internal/effects"
	"github.com/ironsheep/pixelfx-mcp/internal/logging"
	"github.com/ironsheep/pixelfx-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pixelfx-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("pixelfx-mcp - MCP server for pixel transforms")
			fmt.Println()
			fmt.Println("Usage: pixelfx-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PIXELFX_LOG_LEVEL=debug|info|warn|error   Log level (default warn)")
			fmt.Println("  PIXELFX_BLUR_SEED=<uint>                  Seed image_blur for reproducible output")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Logs go to stderr; stdout is for MCP protocol
	level, levelErr := logging.ParseLevel(os.Getenv("PIXELFX_LOG_LEVEL"))
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logging.SetLogger(logger)
	if levelErr != nil {
		logger.Warn("ignoring PIXELFX_LOG_LEVEL", "err", levelErr)
	}

	logger.Debug("starting pixelfx-mcp", "version", Version, "built", BuildTime, "commit", GitCommit)

	opts := []server.Option{server.WithVersion(Version)}
	if s := os.Getenv("PIXELFX_BLUR_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			logger.Error("invalid PIXELFX_BLUR_SEED", "value", s, "err", err)
			os.Exit(2)
		}
		opts = append(opts, server.WithRandomSource(effects.NewSeededSource(seed)))
	}

	srv := server.New(opts...)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
