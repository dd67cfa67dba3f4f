package qecsynth

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownShape = errors.New("unknown shape")

// Shape is the logical state a circuit protects.
type Shape int

const (
	_ Shape = iota
	ShapeOneQubit
	ShapeBell
	ShapeGHZ
	// bare GHZ state without any code
	ShapeUnencodedGHZ
)

func (s Shape) String() string {
	switch s {
	case ShapeOneQubit:
		return "one-qubit"
	case ShapeBell:
		return "bell"
	case ShapeGHZ:
		return "ghz"
	case ShapeUnencodedGHZ:
		return "unencoded-ghz"
	}
	return "unknown"
}

func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "one", "one-qubit", "onequbit", "single":
		return ShapeOneQubit, nil
	case "bell":
		return ShapeBell, nil
	case "ghz":
		return ShapeGHZ, nil
	case "unencoded", "unencoded-ghz":
		return ShapeUnencodedGHZ, nil
	}
	return 0, errors.Wrapf(ErrUnknownShape, "%q", name)
}
