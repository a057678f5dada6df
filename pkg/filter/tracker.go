package filter

import (
	"github.com/arthur-debert/templater/pkg/condition"
	"github.com/arthur-debert/templater/pkg/types"
)

// Tracker records the flags named by every evaluated condition
type Tracker = condition.Recorder

// UsedFlags is a Tracker that accumulates flags into a set.
// It is not safe for concurrent use; give each worker its own.
type UsedFlags struct {
	set types.FlagSet
}

// NewUsedFlags returns an empty tracker
func NewUsedFlags() *UsedFlags {
	return &UsedFlags{set: types.NewFlagSet()}
}

// Record adds flags to the set
func (u *UsedFlags) Record(flags ...string) {
	u.set.AddAll(flags...)
}

// Set returns the accumulated flags
func (u *UsedFlags) Set() types.FlagSet {
	return u.set
}
