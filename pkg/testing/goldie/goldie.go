// Package goldie wraps goldie/v2 so call sites keep the terse v1-style API.
package goldie

import (
	"testing"

	goldiev2 "github.com/sebdah/goldie/v2"
)

func New(t *testing.T) *goldiev2.Goldie {
	return goldiev2.New(t, goldiev2.WithFixtureDir("fixtures"))
}

func Assert(t *testing.T, name string, actual []byte) {
	t.Helper()

	New(t).Assert(t, name, actual)
}

func Update(t *testing.T, name string, actual []byte) {
	t.Helper()

	New(t).Update(t, name, actual)
}
