package main

import (
	"strconv"
	"strings"

	"diskarm/src/simerr"
	"diskarm/src/types"
)

const usage = "Usage: diskarm [flags] <algorithm> <head> <disk_size> <direction> <requests...>\n" +
	"       diskarm -compare [flags] <head> <disk_size> <direction> <requests...>\n"

type options struct {
	compare      bool
	format       string
	lenient      bool
	strictBounds bool
	random       bool
	seed         uint64
	logLevel     string
}

// parseInt parses a CLI integer. With lenient set it mimics atoi: the longest
// leading integer prefix, or 0 when there is none.
func parseInt(field, s string, lenient bool) (int, error) {
	if lenient {
		return atoi(s), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, simerr.Errorf(simerr.MalformedNumeric, "%s: %q is not an integer", field, s)
	}
	return v, nil
}

func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}

// parseArgs turns positional arguments into an algorithm and query. In
// compare mode the algorithm is omitted; with random set the requests are.
func parseArgs(args []string, opts options) (types.Algorithm, types.Query, error) {
	var (
		alg types.Algorithm
		q   types.Query
		err error
	)

	fixed := 4
	if opts.compare {
		fixed = 3
	}
	minArgs := fixed + 1
	if opts.random {
		minArgs = fixed
	}
	if len(args) < minArgs {
		return alg, q, simerr.Errorf(simerr.Usage, "expected at least %d arguments, got %d", minArgs, len(args))
	}

	if !opts.compare {
		if alg, err = types.ParseAlgorithm(args[0]); err != nil {
			return alg, q, err
		}
		args = args[1:]
	}

	if q.Head, err = parseInt("head", args[0], opts.lenient); err != nil {
		return alg, q, err
	}
	if q.DiskSize, err = parseInt("disk_size", args[1], opts.lenient); err != nil {
		return alg, q, err
	}
	if q.Dir, err = types.ParseDirection(args[2]); err != nil {
		if !opts.lenient {
			return alg, q, err
		}
		if atoi(args[2]) == 1 {
			q.Dir = types.DirUp
		}
	}

	for i, raw := range args[3:] {
		r, err := parseInt("request "+strconv.Itoa(i), raw, opts.lenient)
		if err != nil {
			return alg, q, err
		}
		q.Requests = append(q.Requests, r)
	}
	if opts.random && len(q.Requests) > 0 {
		return alg, q, simerr.Errorf(simerr.Usage, "requests cannot be given together with -random")
	}
	return alg, q, nil
}
