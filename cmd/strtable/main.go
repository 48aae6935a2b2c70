package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"

	"github.com/scottcagno/strtable/pkg/diag"
	"github.com/scottcagno/strtable/pkg/hashtable"
	"github.com/scottcagno/strtable/pkg/logger"
)

var log = logging.MustGetLogger("strtable")

// TableOptions are shared by every command that builds a table
type TableOptions struct {
	Config   string `short:"c" long:"config" description:"path to a YAML config file"`
	Capacity int    `long:"capacity" description:"initial bucket count, overrides the config file"`
	NoGrowth bool   `long:"no-growth" description:"disable automatic growth"`
	Hash     string `long:"hash" description:"hash function [djb2, xxhash]"`
	LogLevel string `short:"l" long:"loglevel" description:"set the logging level [debug, info, notice, warning, error, critical]"`
	LogFile  string `long:"logfile" description:"also log to this file, rotated by size"`
}

// open loads the config, applies the flag overrides, sets up logging and
// builds the table. Reports go to the log and to extra, when it is not nil.
// The returned closer releases the log file.
func (o *TableOptions) open(errOut io.Writer, extra diag.Handler) (*hashtable.Table, io.Closer, error) {
	conf, err := loadConfig(o.Config)
	if err != nil {
		return nil, nil, err
	}
	if o.Capacity != 0 {
		conf.Table.Capacity = o.Capacity
	}
	if o.NoGrowth {
		growth := false
		conf.Table.Growth = &growth
	}
	if o.Hash != "" {
		conf.Table.Hash = o.Hash
	}
	if o.LogLevel != "" {
		conf.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		conf.Log.File = o.LogFile
	}
	closer, err := logger.Setup(errOut, &conf.Log)
	if err != nil {
		return nil, nil, err
	}
	tconf := conf.hashtableConfig()
	tconf.Handler = diag.Tee(diag.NewLogHandler(log), extra)
	log.Debugf("table config:\n%s", tconf)
	t, err := hashtable.NewWithConfig(tconf)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return t, closer, nil
}

var runScript Run
var runBench Bench

var parser = flags.NewParser(nil, flags.Default)

func main() {
	parser.AddCommand("run",
		"run a command script against a table",
		"The run command reads one command per line (insert, lookup, remove, contains, clear, rehash, stats, ...) from a file or stdin and prints one result per command",
		&runScript)
	parser.AddCommand("bench",
		"run a randomized load against a table",
		"The bench command performs a seeded mix of inserts, lookups and removes, checks the table against a shadow map and prints the final stats",
		&runBench)

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}
