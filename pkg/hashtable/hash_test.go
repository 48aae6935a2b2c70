package hashtable

import (
	"fmt"
	"testing"

	"github.com/scottcagno/strtable/pkg/util"
)

// 25 words
var words = []string{
	"reproducibility",
	"eruct",
	"acids",
	"flyspecks",
	"driveshafts",
	"volcanically",
	"discouraging",
	"acapnia",
	"phenazines",
	"hoarser",
	"abusing",
	"samara",
	"thromboses",
	"impolite",
	"drivennesses",
	"tenancy",
	"counterreaction",
	"kilted",
	"linty",
	"kistful",
	"biomarkers",
	"infusiblenesses",
	"capsulate",
	"reflowering",
	"heterophyllies",
}

func TestHash(t *testing.T) {
	util.AssertExpected(t, uint64(5381), Hash(""))
	util.AssertExpected(t, uint64(177670), Hash("a"))
	util.AssertExpected(t, uint64(5863208), Hash("ab"))
	// deterministic
	for _, word := range words {
		util.AssertExpected(t, Hash(word), Hash(word))
	}
}

func TestHash_wraps(t *testing.T) {
	// long keys overflow 64 bits; the accumulator must wrap, not saturate
	long := ""
	for i := 0; i < 64; i++ {
		long += "z"
	}
	want := uint64(5381)
	for i := 0; i < len(long); i++ {
		want = want*33 + uint64(long[i])
	}
	util.AssertExpected(t, want, Hash(long))
}

func Test_hashKey_null(t *testing.T) {
	for _, name := range HashFuncNames() {
		fn, ok := LookupHashFunc(name)
		util.AssertTrue(t, ok)
		util.AssertExpected(t, uint64(nullHash), hashKey(fn, nullKey))
	}
	util.AssertExpected(t, Hash(""), hashKey(Hash, textKey("")))
}

func TestLookupHashFunc(t *testing.T) {
	util.AssertExpected(t, []string{"djb2", "xxhash"}, HashFuncNames())
	fn, ok := LookupHashFunc("xxhash")
	util.AssertTrue(t, ok)
	util.AssertExpected(t, XXHash("acids"), fn("acids"))
	_, ok = LookupHashFunc("md5")
	util.AssertFalse(t, ok)
}

func TestHash_collisions(t *testing.T) {
	for _, name := range HashFuncNames() {
		fn, _ := LookupHashFunc(name)
		set := make(map[uint64]string, len(words))
		var coll int
		for _, word := range words {
			hash := fn(word)
			if old, ok := set[hash]; !ok {
				set[hash] = word
			} else {
				coll++
				fmt.Printf("%s collision: current word: %s, old word: %s, hash: %d\n", name, word, old, hash)
			}
		}
		fmt.Printf("%s: encountered %d collisions comparing %d words\n", name, coll, len(words))
	}
}

func BenchmarkHash(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		_ = Hash(words[n%len(words)])
	}
}

func BenchmarkXXHash(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		_ = XXHash(words[n%len(words)])
	}
}
