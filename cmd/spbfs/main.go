// Command spbfs runs one of four heuristic best-first search engines
// (sequential A*, KBFS, SPA*, CAFE) against a problem instance read from
// standard input, writing the reconstructed path to standard error and
// run statistics as JSON to standard output.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/autumnippert/spbfs-go/internal/config"
	"github.com/autumnippert/spbfs-go/pkg/problems/pathfind"
	"github.com/autumnippert/spbfs-go/pkg/problems/tiles"
	"github.com/autumnippert/spbfs-go/pkg/search"
	"github.com/autumnippert/spbfs-go/pkg/search/emit"
	"github.com/autumnippert/spbfs-go/pkg/search/store"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	def := config.Default()
	fs := flag.NewFlagSet("spbfs", flag.ContinueOnError)

	var configPath string
	algorithm := fs.String("algorithm", def.Algorithm, "search algorithm: astar, kbfs, spastar, cafe")
	fs.StringVar(algorithm, "a", def.Algorithm, "shorthand for -algorithm")
	problem := fs.String("problem", def.Problem, "problem domain: tiles, path")
	fs.StringVar(problem, "p", def.Problem, "shorthand for -problem")
	extra := fs.Int("extra-expansion-time", def.ExtraExpansionTime, "synthetic per-expansion work units")
	fs.IntVar(extra, "e", def.ExtraExpansionTime, "shorthand for -extra-expansion-time")
	threads := fs.Int("threads", def.Threads, "engine parallelism parameter")
	fs.IntVar(threads, "t", def.Threads, "shorthand for -threads")
	storeKind := fs.String("store", def.Store, "run store backend: none, memory, sqlite, mysql")
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.StringVar(&configPath, "c", "", "shorthand for -config")
	storeDSN := fs.String("store-dsn", "", "DSN for sqlite/mysql run store")
	fs.StringVar(storeKind, "s", def.Store, "shorthand for -store")
	metricsAddr := fs.String("metrics-addr", "", "address to serve /metrics on (empty disables)")
	tracing := fs.Bool("tracing", false, "emit OpenTelemetry spans to stdout alongside log events")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(configPath, def)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algorithm", "a":
			cfg.Algorithm = *algorithm
		case "problem", "p":
			cfg.Problem = *problem
		case "extra-expansion-time", "e":
			cfg.ExtraExpansionTime = *extra
		case "threads", "t":
			cfg.Threads = *threads
		case "store", "s":
			cfg.Store = *storeKind
		case "store-dsn":
			cfg.StoreDSN = *storeDSN
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		}
	})

	switch cfg.Algorithm {
	case "astar", "kbfs", "spastar", "cafe":
	default:
		fmt.Fprintf(os.Stderr, "%v: unknown algorithm %q\n", search.ErrUsage, cfg.Algorithm)
		return 1
	}

	runStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var metrics *search.PrometheusMetrics
	if cfg.MetricsAddr != "" {
		registry := prometheus.NewRegistry()
		metrics = search.NewPrometheusMetrics(registry)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Error().Err(err).Msg("metrics server exited")
			}
		}()
	}

	ctx := context.Background()

	runEmitter := search.Emitter(emit.NewLogEmitter(log))
	if *tracing {
		shutdown, err := setupTracing(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer shutdown(ctx)
		runEmitter = emit.NewMulti(runEmitter, emit.NewOTelEmitter(otel.Tracer("spbfs")))
	}

	opts := []search.Option{
		search.WithThreads(cfg.Threads),
		search.WithExtraExpansionTime(cfg.ExtraExpansionTime),
		search.WithEmitter(runEmitter),
		search.WithRunStore(runStore),
	}
	if metrics != nil {
		opts = append(opts, search.WithMetrics(metrics))
	}

	var (
		path []string
		snap search.Snapshot
	)

	switch cfg.Problem {
	case "tiles":
		p, err := tiles.Parse(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		eng, err := search.New[tiles.State](cfg.Algorithm, opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		result, err := eng.Run(ctx, p)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for _, s := range result.Path {
			path = append(path, fmt.Sprint(s))
		}
		snap = result.Stats.Snapshot(cfg.Algorithm, cfg.Threads, cfg.ExtraExpansionTime, cfg.Algorithm == "cafe")
	case "path":
		p, err := pathfind.Parse(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		eng, err := search.New[pathfind.State](cfg.Algorithm, opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		result, err := eng.Run(ctx, p)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for _, s := range result.Path {
			path = append(path, fmt.Sprint(s))
		}
		snap = result.Stats.Snapshot(cfg.Algorithm, cfg.Threads, cfg.ExtraExpansionTime, cfg.Algorithm == "cafe")
	default:
		fmt.Fprintf(os.Stderr, "%v: unknown problem %q\n", search.ErrUsage, cfg.Problem)
		return 1
	}

	for _, s := range path {
		fmt.Fprintln(os.Stderr, s)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func openStore(cfg config.Config) (store.RunStore, error) {
	switch cfg.Store {
	case "", "none":
		return nil, nil
	case "memory":
		return store.NewMemStore(), nil
	case "sqlite":
		return store.NewSQLiteStore(cfg.StoreDSN)
	case "mysql":
		return store.NewMySQLStore(cfg.StoreDSN)
	default:
		return nil, fmt.Errorf("%w: unknown store backend %q", search.ErrUsage, cfg.Store)
	}
}

// setupTracing installs a global TracerProvider that exports spans to
// stdout and returns its Shutdown method so the caller can flush on exit.
func setupTracing(ctx context.Context) (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("tracing: create stdout exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
