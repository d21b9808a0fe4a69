package search

// Config collects the parameters every engine constructor accepts. Options
// mutate a Config before an engine is built, the same indirection the
// teacher's graph.Option pattern uses: validation and composition happen in
// one place instead of being spread across constructor arguments.
type Config struct {
	// Threads is the parallelism parameter: KBFS's batch size, SPA*'s and
	// CAFE's worker-thread count. Sequential A* ignores it.
	Threads int

	// ExtraExpansionTime is synthetic per-expansion work, in the same units
	// as the CLI's -e flag, used to make contention differences between
	// engines visible on otherwise-trivial problems.
	ExtraExpansionTime int

	// WindowSize overrides the CAFE lookahead window width. Zero means "use
	// Threads", matching §4.4 ("W equals the CAFE worker thread count").
	WindowSize int

	Emitter  Emitter
	Metrics  *PrometheusMetrics

	// RunStore, if set, receives the completed Run at the end of Run. Nil
	// (the default) means no persistence: library callers that don't want a
	// store never pay for one.
	RunStore RunStore
}

// Option configures a Config. Options compose: later options in a call to
// New override earlier ones that touch the same field.
type Option func(*Config)

// WithThreads sets the engine's parallelism parameter.
func WithThreads(n int) Option {
	return func(c *Config) { c.Threads = n }
}

// WithExtraExpansionTime sets synthetic per-expansion work.
func WithExtraExpansionTime(n int) Option {
	return func(c *Config) { c.ExtraExpansionTime = n }
}

// WithWindowSize overrides CAFE's lookahead window width.
func WithWindowSize(n int) Option {
	return func(c *Config) { c.WindowSize = n }
}

// WithEmitter attaches an event sink. The default is a NullEmitter.
func WithEmitter(e Emitter) Option {
	return func(c *Config) { c.Emitter = e }
}

// WithMetrics attaches a Prometheus sink that is updated once at the end of
// a run with the final Snapshot.
func WithMetrics(m *PrometheusMetrics) Option {
	return func(c *Config) { c.Metrics = m }
}

// WithRunStore attaches a store that Run persists the completed Run into
// just before returning. The default is no store at all.
func WithRunStore(s RunStore) Option {
	return func(c *Config) { c.RunStore = s }
}

// newConfig applies opts over the zero Config and fills in defaults.
func newConfig(opts []Option) Config {
	cfg := Config{Threads: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Emitter == nil {
		cfg.Emitter = NullEmitter{}
	}
	if cfg.WindowSize == 0 {
		cfg.WindowSize = cfg.Threads
	}
	return cfg
}

// wasteTime burns roughly n*1000 loop iterations of volatile-ish work,
// mirroring the original engine's wasteTime: a knob to make the cost of an
// expansion tunable from the CLI without touching the problem instance.
func wasteTime(n int) {
	var sum uint64
	for j := 0; j < n*1000; j++ {
		sum += uint64(j)
	}
	_ = sum
}
