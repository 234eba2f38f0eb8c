// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// dict-tool - load key=value lines and exercise the dictionary
//
// reads one key=value pair per line from the argument files (or
// standard input), stages everything through a builder, then prints
// the sorted contents, the tree shape or the stack pool statistics
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/immutable/dict"
)

// key type for the tool: plain strings
type stringKey string

// Compare - string ordering for the dictionary
func (k stringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(stringKey)))
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "tree", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
		{Long: "statistics", HasArg: getoptions.NO_ARGUMENT, Short: 's'},
		{Long: "log-dir", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("option parse error: %s", err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--tree] [--statistics] [--log-dir=DIR] [file…]", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	logDir := "."
	if len(options["log-dir"]) > 0 {
		logDir = options["log-dir"][0]
	}

	logLevel := "error"
	if verbose {
		logLevel = "info"
	}
	logging := logger.Configuration{
		Directory: logDir,
		File:      "dict-tool.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: logLevel,
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("dict-tool")

	b := dict.New().ToBuilder()

	files := arguments
	if 0 == len(files) {
		files = []string{"-"}
	}

	lines := 0
	for _, name := range files {
		var f io.ReadCloser = os.Stdin
		if "-" != name {
			f, err = os.Open(name)
			if nil != err {
				exitwithstatus.Message("%s: open: %q error: %s", program, name, err)
			}
		}
		n, err := load(b, f, log)
		if "-" != name {
			f.Close()
		}
		if nil != err {
			exitwithstatus.Message("%s: load: %q error: %s", program, name, err)
		}
		lines += n
	}

	d := b.ToImmutable()
	log.Infof("loaded: %d lines  keys: %d", lines, d.Count())

	switch {
	case len(options["tree"]) > 0:
		depth := d.Print(os.Stdout, verbose)
		if !quiet {
			fmt.Printf("keys: %d  depth: %d\n", d.Count(), depth)
		}

	default:
		e := d.Enumerate()
		for {
			ok, err := e.MoveNext()
			if nil != err {
				e.Dispose()
				exitwithstatus.Message("%s: enumerate error: %s", program, err)
			}
			if !ok {
				break
			}
			key, value, err := e.Current()
			if nil != err {
				e.Dispose()
				exitwithstatus.Message("%s: enumerate error: %s", program, err)
			}
			fmt.Printf("%s=%s\n", key, value)
		}
		e.Dispose()
		if !quiet {
			fmt.Printf("keys: %d\n", d.Count())
		}
	}

	if len(options["statistics"]) > 0 {
		s := dict.PoolStatistics()
		fmt.Printf("pool: check outs: %d  check ins: %d  allocations: %d  discards: %d  free: %d\n",
			s.CheckOuts, s.CheckIns, s.Allocations, s.Discards, s.Free)
	}
}

// read key=value lines into the builder, later duplicates win
func load(b *dict.Builder, r io.Reader, log *logger.L) (int, error) {
	lines := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		lines += 1

		s := strings.SplitN(line, "=", 2)
		key := strings.TrimSpace(s[0])
		value := ""
		if 2 == len(s) {
			value = strings.TrimSpace(s[1])
		}
		if "" == key {
			log.Errorf("skip line with empty key: %q", line)
			continue
		}

		replaced, err := b.SetItem(stringKey(key), value)
		if nil != err {
			return lines, err
		}
		if replaced {
			log.Infof("overwrite: %q", key)
		}
	}
	return lines, scanner.Err()
}
