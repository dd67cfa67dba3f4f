package codes

import (
	"strings"

	"github.com/pkg/errors"
)

// All returns one descriptor of every supported code.
func All() []*Descriptor {
	return []*Descriptor{FiveQubit(), Shor(), Steane()}
}

// ByName resolves a code name as accepted on the command line.
func ByName(name string) (*Descriptor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "five", "five-qubit", "fivequbit", "fqc", "5":
		return FiveQubit(), nil
	case "shor", "shors":
		return Shor(), nil
	case "steane":
		return Steane(), nil
	}
	return nil, errors.Wrapf(ErrUnknownCode, "%q", name)
}

func Names() []string {
	return []string{"five-qubit", "shor", "steane"}
}
