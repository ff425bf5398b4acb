package types

import (
	"strconv"
	"strings"

	"diskarm/src/simerr"
)

// Direction is the sweep direction of the head. Only SCAN, LOOK, C-SCAN and
// C-LOOK read it.
type Direction int

const (
	DirDown Direction = iota // toward lower cylinder numbers
	DirUp                    // toward higher cylinder numbers
)

func (d Direction) String() string {
	if d == DirUp {
		return "up"
	}
	return "down"
}

// ParseDirection accepts up/higher/right and down/lower/left. An integer
// follows the legacy flag convention: 1 is up, everything else is down.
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "up", "higher", "right":
		return DirUp, nil
	case "down", "lower", "left":
		return DirDown, nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		if v == 1 {
			return DirUp, nil
		}
		return DirDown, nil
	}
	return DirDown, simerr.Errorf(simerr.MalformedNumeric, "invalid direction: %q", s)
}

type Algorithm string

const (
	FCFS  Algorithm = "FCFS"
	SSTF  Algorithm = "SSTF"
	SCAN  Algorithm = "SCAN"
	LOOK  Algorithm = "LOOK"
	CSCAN Algorithm = "C-SCAN"
	CLOOK Algorithm = "C-LOOK"
)

// Algorithms lists every supported policy in canonical order.
var Algorithms = []Algorithm{FCFS, SSTF, SCAN, LOOK, CSCAN, CLOOK}

// ParseAlgorithm matches name exactly against the supported policies.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if name == string(a) {
			return a, nil
		}
	}
	return "", simerr.Errorf(simerr.UnknownAlgorithm, "unknown algorithm: %s", name)
}

// Query is the input of one simulation run. DiskSize 0 means the caller left it
// unset.
type Query struct {
	Requests []int
	Head     int
	DiskSize int
	Dir      Direction
}

// Timing is the time breakdown of a run, in milliseconds.
type Timing struct {
	Seek       float64
	Rotational float64
	Transfer   float64
	Total      float64
}

// Result is everything a formatter needs about one run.
type Result struct {
	RunID     string
	Algorithm Algorithm
	Sequence  []int
	Movement  int
	Timing    Timing
}
