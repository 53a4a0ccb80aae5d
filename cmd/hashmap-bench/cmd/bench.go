package cmd

import (
	"context"
	"net/http"
	"net/http/pprof"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	hashmap "github.com/amgfrthsp/HSE.HashMap"
	"github.com/amgfrthsp/HSE.HashMap/internal/config"
	"github.com/amgfrthsp/HSE.HashMap/internal/metrics"
	"github.com/amgfrthsp/HSE.HashMap/internal/workload"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "insert, look up and erase generated keys and report map stats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runBench(ctx, cfg.Bench)
	},
}

func init() {
	defaults := config.New().Bench
	flags := benchCmd.Flags()
	flags.Int("bench.keys", defaults.Keys, "number of generated keys")
	flags.Int("bench.keySize", defaults.KeySize, "width of the zero padded keys")
	flags.Int("bench.lookups", defaults.Lookups, "number of random lookups, half of them misses")
	flags.Float64("bench.eraseRatio", defaults.EraseRatio, "share of keys erased after the lookups")
	flags.Int("bench.capacity", defaults.Capacity, "initial bucket count")
	flags.String("bench.hasher", defaults.Hasher, "hash function: maphash, xxhash or xxh3")
	flags.Int64("bench.seed", defaults.Seed, "random seed")
	flags.String("bench.listen", defaults.Listen, "serve pprof and metrics on this address and repeat until interrupted")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
}

func runBench(ctx context.Context, bc config.BenchConfig) error {
	hasher, err := workload.Hasher(bc.Hasher)
	if err != nil {
		return err
	}

	m := hashmap.New[string, int](
		hashmap.WithCapacity[string, int](bc.Capacity),
		hashmap.WithHasher[string, int](hasher),
		hashmap.WithLogger[string, int](log.Named("hashmap")),
	)
	keys := workload.Keys(bc.Keys, bc.KeySize)

	if bc.Listen == "" {
		report(workload.Run(m, keys, bc))
		return nil
	}

	// the map is not safe for concurrent use, scrapes share this lock with the workload
	var mu sync.Mutex
	registry := prometheus.NewRegistry()
	registry.MustRegister(metrics.NewStatsCollector("bench", func() hashmap.Stats {
		mu.Lock()
		defer mu.Unlock()
		return m.Stats()
	}))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	srv := &http.Server{Addr: bc.Listen, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		log.Info("serving pprof and metrics", zap.String("addr", bc.Listen))
		errCh <- srv.ListenAndServe()
	}()

	for round := 0; ; round++ {
		select {
		case <-ctx.Done():
			log.Info("shutting down", zap.Int("rounds", round))
			return srv.Shutdown(context.Background())
		case err := <-errCh:
			return errors.Wrap(err, "serve")
		default:
		}

		mu.Lock()
		m.Clear()
		r := workload.Run(m, keys, bc)
		mu.Unlock()
		report(r)
	}
}

func report(r workload.Result) {
	log.Info("bench round",
		zap.Int("inserted", r.Inserted),
		zap.Int("hits", r.Hits),
		zap.Int("misses", r.Misses),
		zap.Int("erased", r.Erased),
		zap.Duration("insert", r.InsertTime),
		zap.Duration("lookup", r.LookupTime),
		zap.Duration("erase", r.EraseTime),
		zap.Int("len", r.Stats.Len),
		zap.Int("capacity", r.Stats.Capacity),
		zap.Int("usedBuckets", r.Stats.UsedBuckets),
		zap.Int("longestRun", r.Stats.LongestRun),
		zap.Uint64("rehashes", r.Stats.Rehashes),
		zap.Float64("loadFactor", r.Stats.LoadFactor()))
}
