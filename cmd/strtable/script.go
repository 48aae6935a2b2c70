package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/xerrors"

	"github.com/scottcagno/strtable"
	"github.com/scottcagno/strtable/pkg/diag"
)

// Run executes a command script
type Run struct {
	TableOptions
	File string `short:"f" long:"file" description:"script to run, stdin when omitted"`
}

func (x *Run) Execute(args []string) error {
	reports := new(diag.Collector)
	t, closer, err := x.open(os.Stderr, reports)
	if err != nil {
		return err
	}
	defer closer.Close()
	defer t.Destroy()

	var in io.Reader = os.Stdin
	if x.File != "" {
		path, err := homedir.Expand(x.File)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	failed, err := newInterpreter(t, os.Stdout).run(in)
	if err != nil {
		return err
	}
	if failed > 0 {
		log.Warningf("%d commands failed", failed)
	}
	if len(reports.Reports()) > 0 {
		log.Noticef("table reported %d errors and %d warnings",
			reports.Count(diag.Error), reports.Count(diag.Warning))
	}
	return nil
}

const (
	resOK       = "OK"
	resNotFound = "(not found)"
)

// command is a script command taking at least args arguments
type command struct {
	args int
	fn   func(args []string) (string, error)
}

// interpreter applies script commands to a table
type interpreter struct {
	table strtable.Growable
	out   io.Writer
	cmds  map[string]command
}

func newInterpreter(t strtable.Growable, out io.Writer) *interpreter {
	in := &interpreter{
		table: t,
		out:   out,
	}
	in.cmds = map[string]command{
		"insert":     {2, in.insert},
		"insertnull": {1, in.insertNull},
		"lookup":     {1, in.lookup},
		"lookupnull": {0, in.lookupNull},
		"remove":     {1, in.remove},
		"removenull": {0, in.removeNull},
		"contains":   {1, in.contains},
		"clear":      {0, in.clear},
		"rehash":     {0, in.rehash},
		"stats":      {0, in.stats},
		"size":       {0, in.size},
		"capacity":   {0, in.capacity},
		"empty":      {0, in.empty},
		"clone":      {0, in.clone},
	}
	return in
}

// run executes every line read from r and returns how many commands failed
func (in *interpreter) run(r io.Reader) (int, error) {
	var failed int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := in.exec(line)
		if err != nil {
			failed++
			res = "ERR " + err.Error()
		}
		if _, err := fmt.Fprintln(in.out, res); err != nil {
			return failed, err
		}
	}
	return failed, sc.Err()
}

// exec runs a single command line
func (in *interpreter) exec(line string) (string, error) {
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	cmd, ok := in.cmds[name]
	if !ok {
		return "", xerrors.Errorf("unknown command %q", fields[0])
	}
	args := fields[1:]
	if len(args) < cmd.args {
		return "", xerrors.Errorf("wrong number of arguments for %q", name)
	}
	return cmd.fn(args)
}

func (in *interpreter) insert(args []string) (string, error) {
	if err := in.table.Insert(args[0], strings.Join(args[1:], " ")); err != nil {
		return "", err
	}
	return resOK, nil
}

func (in *interpreter) insertNull(args []string) (string, error) {
	if err := in.table.InsertNull(strings.Join(args, " ")); err != nil {
		return "", err
	}
	return resOK, nil
}

func found(val interface{}, ok bool) (string, error) {
	if !ok {
		return resNotFound, nil
	}
	return fmt.Sprint(val), nil
}

func (in *interpreter) lookup(args []string) (string, error) {
	return found(in.table.Lookup(args[0]))
}

func (in *interpreter) lookupNull([]string) (string, error) {
	return found(in.table.LookupNull())
}

func (in *interpreter) remove(args []string) (string, error) {
	return strconv.FormatBool(in.table.Remove(args[0])), nil
}

func (in *interpreter) removeNull([]string) (string, error) {
	return strconv.FormatBool(in.table.RemoveNull()), nil
}

func (in *interpreter) contains(args []string) (string, error) {
	return strconv.FormatBool(in.table.ContainsKey(args[0])), nil
}

func (in *interpreter) clear([]string) (string, error) {
	in.table.Clear()
	return resOK, nil
}

func (in *interpreter) rehash([]string) (string, error) {
	if err := in.table.Rehash(); err != nil {
		return "", err
	}
	return resOK, nil
}

func (in *interpreter) stats([]string) (string, error) {
	return in.table.Stats().String(), nil
}

func (in *interpreter) size([]string) (string, error) {
	return strconv.Itoa(in.table.Size()), nil
}

func (in *interpreter) capacity([]string) (string, error) {
	return strconv.Itoa(in.table.Capacity()), nil
}

func (in *interpreter) empty([]string) (string, error) {
	return strconv.FormatBool(in.table.IsEmpty()), nil
}

func (in *interpreter) clone([]string) (string, error) {
	c := in.table.CloneShape()
	defer c.Destroy()
	return fmt.Sprintf("capacity=%d growth=%t size=%d", c.Capacity(), c.IsGrowthEnabled(), c.Size()), nil
}
