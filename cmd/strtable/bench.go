package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/xerrors"

	"github.com/scottcagno/strtable"
	"github.com/scottcagno/strtable/pkg/hashtable"
	"github.com/scottcagno/strtable/pkg/util"
)

// Bench runs a seeded random workload
type Bench struct {
	TableOptions
	Count   int    `short:"n" long:"count" default:"100000" description:"number of operations"`
	Keys    int    `short:"k" long:"keys" default:"10000" description:"number of distinct keys"`
	KeySize int    `long:"keysize" default:"12" description:"key length in bytes"`
	Seed    uint64 `short:"s" long:"seed" default:"5381" description:"random seed"`
}

func (x *Bench) Execute(args []string) error {
	t, closer, err := x.open(os.Stderr, nil)
	if err != nil {
		return err
	}
	defer closer.Close()
	defer t.Destroy()
	return bench(t, os.Stdout, x.Count, x.Keys, x.KeySize, x.Seed)
}

// benchResult counts what a bench run did
type benchResult struct {
	inserts, duplicates, rejected, lookups, hits, removes int
}

func (r *benchResult) String() string {
	return fmt.Sprintf("inserts=%d duplicates=%d rejected=%d lookups=%d hits=%d removes=%d",
		r.inserts, r.duplicates, r.rejected, r.lookups, r.hits, r.removes)
}

// bench performs count random operations on t, mirrored in a Go map. A
// disagreement between the two is returned as an error. Inserts refused
// because the key is present or a table without growth is full are counted,
// not treated as failures.
func bench(t strtable.Growable, out io.Writer, count, nkeys, keySize int, seed uint64) error {
	if nkeys < 1 || keySize < 1 {
		return xerrors.New("bench: keys and keysize must be positive")
	}
	r := util.NewRand(seed)
	keys := util.RandKeys(r, nkeys, keySize)
	shadow := make(map[string]int, nkeys)

	var res benchResult
	msg, start := util.Msg(fmt.Sprintf("bench: %d operations over %d keys", count, nkeys))
	for n := 0; n < count; n++ {
		k := keys[r.Intn(len(keys))]
		switch op := r.Intn(4); op {
		case 0, 1:
			_, present := shadow[k]
			err := t.Insert(k, n)
			switch {
			case err == nil && !present:
				shadow[k] = n
				res.inserts++
			case errors.Is(err, hashtable.ErrDuplicateKey) && present:
				res.duplicates++
			case errors.Is(err, hashtable.ErrCapacityExceeded) && !t.IsGrowthEnabled():
				if t.Size() != t.Capacity() {
					return xerrors.Errorf("bench: insert %q refused at size %d of %d: %w", k, t.Size(), t.Capacity(), err)
				}
				res.rejected++
			default:
				return xerrors.Errorf("bench: insert %q (present %t): %w", k, present, err)
			}
		case 2:
			val, ok := t.Lookup(k)
			want, exp := shadow[k]
			if ok != exp || (ok && val != want) {
				return xerrors.Errorf("bench: lookup %q got %v, %t; want %v, %t", k, val, ok, want, exp)
			}
			if ok {
				res.hits++
			}
			res.lookups++
		default:
			_, exp := shadow[k]
			if ok := t.Remove(k); ok != exp {
				return xerrors.Errorf("bench: remove %q got %t; want %t", k, ok, exp)
			}
			delete(shadow, k)
			res.removes++
		}
	}
	elapsed := util.TimeThis(msg, start)
	if t.Size() != len(shadow) {
		return xerrors.Errorf("bench: size %d; want %d", t.Size(), len(shadow))
	}
	_, err := fmt.Fprintf(out, "%s\n%s\n%s\n", &res, t.Stats(), util.FormatTime("elapsed", elapsed))
	return err
}
