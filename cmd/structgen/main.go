package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eduardo/structgen/internal/application"
	"github.com/eduardo/structgen/internal/config"
	"github.com/eduardo/structgen/internal/conformance"
	"github.com/eduardo/structgen/internal/generator"
	"github.com/eduardo/structgen/internal/infrastructure"
	"github.com/eduardo/structgen/internal/logger"
	"github.com/eduardo/structgen/internal/parser"
)

const usage = `usage: structgen [command] [args]

commands:
  generate [request.md]            generate the project into $STRUCTGEN_OUTPUT_DIR (default: cwd)
  snapshot <request.md> <out.yaml> write the expected structure of a request
  verify <request.md> <exp.yaml>   check a request's structure against a snapshot
  upgrade <request.md> <version>   show what upgrading a request to a version changes
  versions                         list known project structure versions

Without a command an interactive prompt creates or selects a request.`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{Level: logger.ParseLevel(cfg.LogLevel), Format: cfg.LogFormat, Output: os.Stderr})
	log := logger.ForComponent("structgen")

	// 1. Initialize Adapters
	fs := infrastructure.NewOSFileSystem()
	templateEngine := infrastructure.NewGoTemplateEngine()
	markdownParser := parser.NewMarkdownParser(fs)
	registry := generator.DefaultRegistry()

	// 2. Initialize Application Service
	service := application.NewStructureService(fs, templateEngine, markdownParser, registry, cfg.DefaultVersion, log)

	args := os.Args[1:]
	if len(args) == 0 {
		request, err := runInteractiveMode(registry)
		if err != nil {
			fatal("interactive mode failed: %v", err)
		}
		args = []string{"generate", request}
	}

	ctx := context.Background()
	switch args[0] {
	case "generate":
		request := argOr(args, 1, "structure.md")
		outputDir := cfg.OutputDir
		if outputDir == "" {
			if outputDir, err = os.Getwd(); err != nil {
				fatal("failed to get current directory: %v", err)
			}
		}
		if _, err := service.Generate(ctx, request, outputDir); err != nil {
			fatal("failed to generate project: %v", err)
		}
	case "snapshot":
		requireArgs(args, 3)
		if err := service.Snapshot(ctx, args[1], args[2]); err != nil {
			fatal("failed to write snapshot: %v", err)
		}
	case "verify":
		requireArgs(args, 3)
		discrepancies, err := service.Verify(ctx, args[1], args[2])
		if err != nil {
			fatal("failed to verify structure: %v", err)
		}
		report(discrepancies)
		if len(discrepancies) > 0 {
			os.Exit(1)
		}
	case "upgrade":
		requireArgs(args, 3)
		version, err := strconv.Atoi(args[2])
		if err != nil {
			fatal("invalid version %q", args[2])
		}
		changes, err := service.Upgrade(ctx, args[1], version)
		if err != nil {
			fatal("failed to compute upgrade: %v", err)
		}
		report(changes)
	case "versions":
		for _, v := range registry.Versions() {
			def, _ := registry.Get(v)
			fmt.Printf("%d\t%s\n", v, joinTypes(def))
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func report(discrepancies conformance.Discrepancies) {
	if len(discrepancies) == 0 {
		fmt.Println("no discrepancies")
		return
	}
	for _, d := range discrepancies {
		fmt.Println(d.String())
	}
}

func joinTypes(def *generator.Definition) string {
	var names []string
	for _, t := range def.SupportedArtifactTypes() {
		names = append(names, t.String())
	}
	return strings.Join(names, ",")
}

func argOr(args []string, i int, fallback string) string {
	if len(args) > i {
		return args[i]
	}
	return fallback
}

func requireArgs(args []string, n int) {
	if len(args) < n {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
