package activitystreams_test

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	as "github.com/aluitink/ActivityStreams"
	"github.com/aluitink/ActivityStreams/internal/json"
)

var dump = flag.Bool("dump", false, "dump the decoded graph on test failure")

func LoadData(t testing.TB, file string) json.RawMessage {
	t.Helper()

	data, err := os.ReadFile(file)

	if err != nil {
		t.Fatalf("failed to load %s: %s", file, err)
	}

	var res bytes.Buffer
	err = json.Compact(&res, data)
	if err != nil {
		t.Fatalf("invalid JSON in %s: %s", file, err)
	}
	return res.Bytes()
}

// JSONDiff should be used when diffing JSON documents.
func JSONDiff() cmp.Option {
	return cmp.Options{
		cmp.FilterValues(func(x, y json.RawMessage) bool {
			return json.Valid(x) && json.Valid(y)
		}, cmp.Transformer("ParseJSON", func(in json.RawMessage) (out any) {
			if err := json.Unmarshal(in, &out); err != nil {
				panic(err) // should never occur given previous filter to ensure valid JSON
			}
			return out
		})),
	}
}

// Dump logs the decoded graph when running with -dump.
func Dump(t testing.TB, n as.Node) {
	t.Helper()

	if !*dump {
		return
	}

	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	t.Log(cfg.Sdump(n))
}

// MustUnmarshal decodes a document and fails the test on error.
func MustUnmarshal(t testing.TB, data []byte) as.Node {
	t.Helper()

	n, err := as.Unmarshal(data)
	if err != nil {
		t.Fatalf("failed to decode %s: %s", data, err)
	}
	return n
}
