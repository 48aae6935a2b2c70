package hashtable

import (
	"math"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/scottcagno/strtable/pkg/diag"
)

const (
	// MaxCapacity is the largest bucket count a table may ever have
	MaxCapacity = math.MaxUint16

	// DefaultCapacity is the bucket count used when none is configured
	DefaultCapacity = 16
	// DefaultHash names the hash function used when none is configured
	DefaultHash = "djb2"

	defaultGrowth = true
)

var log = logging.MustGetLogger("hashtable")

// default config
var defaultConfig = &Config{
	Capacity: DefaultCapacity,
	Growth:   defaultGrowth,
	Hash:     DefaultHash,
}

// Config holds configuration settings for a Table instance
type Config struct {
	Capacity int          // initial bucket count, 1 to MaxCapacity
	Growth   bool         // double and rehash when size exceeds capacity
	Hash     string       // name of a registered hash function
	Handler  diag.Handler // receives failure reports
}

func (conf *Config) String() string {
	var sb strings.Builder
	sb.WriteString("Capacity: ")
	sb.WriteString(strconv.Itoa(conf.Capacity))
	sb.WriteString("\n")
	sb.WriteString("Growth: ")
	sb.WriteString(strconv.FormatBool(conf.Growth))
	sb.WriteString("\n")
	sb.WriteString("Hash: ")
	sb.WriteString(conf.Hash)
	return sb.String()
}

// checkConfig is a helper to make sure the configuration options are correct
// and handles any missing options. It works on a copy, so the caller's config
// is never modified. The capacity is left for the constructor to validate.
func checkConfig(conf *Config) *Config {
	c := *defaultConfig
	if conf != nil {
		c = *conf
	}
	if _, ok := LookupHashFunc(c.Hash); !ok {
		if c.Hash != "" {
			log.Warningf("unknown hash function %q, using %s", c.Hash, DefaultHash)
		}
		c.Hash = DefaultHash
	}
	if c.Handler == nil {
		c.Handler = diag.NewLogHandler(log)
	}
	return &c
}
