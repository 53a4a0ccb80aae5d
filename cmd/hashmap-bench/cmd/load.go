package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	hashmap "github.com/amgfrthsp/HSE.HashMap"
	"github.com/amgfrthsp/HSE.HashMap/internal/workload"
)

var dump bool

var loadCmd = &cobra.Command{
	Use:   "load FILE.csv",
	Short: "build a map from a key,value CSV file and report its stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad(args[0], cmd.OutOrStdout())
	},
}

func init() {
	loadCmd.Flags().BoolVar(&dump, "dump", false, "print the entries as YAML in list order")
}

func runLoad(path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer f.Close()

	records, err := workload.ReadRecords(f)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	hasher, err := workload.Hasher(cfg.Bench.Hasher)
	if err != nil {
		return err
	}
	m := workload.Build(records,
		hashmap.WithCapacity[string, string](cfg.Bench.Capacity),
		hashmap.WithHasher[string, string](hasher),
		hashmap.WithLogger[string, string](log.Named("hashmap")),
	)

	stats := m.Stats()
	log.Info("loaded",
		zap.String("file", path),
		zap.Int("records", len(records)),
		zap.Int("duplicates", len(records)-m.Len()),
		zap.Int("len", stats.Len),
		zap.Int("capacity", stats.Capacity),
		zap.Int("longestRun", stats.LongestRun),
		zap.Uint64("rehashes", stats.Rehashes))

	if dump {
		return workload.Dump(out, m)
	}
	return nil
}
