package workload

import (
	"io"
	"iter"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	hashmap "github.com/amgfrthsp/HSE.HashMap"
)

// Record is one row of a key value file.
type Record struct {
	Key   string `csv:"key" yaml:"key"`
	Value string `csv:"value" yaml:"value"`
}

// ReadRecords decodes a CSV file with a key,value header.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, errors.Wrap(err, "decode csv")
	}
	return records, nil
}

func seq(records []Record) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, r := range records {
			if !yield(r.Key, r.Value) {
				return
			}
		}
	}
}

// Build loads records into a new map. The first record of a repeated key wins.
func Build(records []Record, options ...hashmap.Option[string, string]) *hashmap.HashMap[string, string] {
	return hashmap.NewFromSeq(seq(records), options...)
}

// Dump writes the map entries as a YAML list in list order.
func Dump(w io.Writer, m *hashmap.HashMap[string, string]) error {
	records := make([]Record, 0, m.Len())
	for k, v := range m.All() {
		records = append(records, Record{Key: k, Value: v})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return errors.Wrap(enc.Close(), "close yaml encoder")
}
