// SPDX-License-Identifier: MIT

package unit

import (
	"sync"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/united/dimension"
)

// Option configures how a Unit is rendered. Options never change the
// reduced representation, only the display string.
type Option func(*Options)

// Options holds the effective rendering configuration. Fields are
// unexported; public entry points accept ...Option.
type Options struct {
	profile dimension.Profile
	short   bool        // print short symbols (O instead of Ω)
	logger  logr.Logger // rewrite trace, V(1)
}

// WithProfile selects the rule priority used by the renderer.
func WithProfile(p dimension.Profile) Option {
	return func(o *Options) { o.profile = p }
}

// WithShortSymbols renders named units by their short symbol when they
// have one, e.g. "O" for resistance.
func WithShortSymbols() Option {
	return func(o *Options) { o.short = true }
}

// WithLogger sets the logger receiving rewrite traces at verbosity 1.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

var (
	defaultMu      sync.RWMutex
	defaultProfile = dimension.DefaultProfile()
)

// SetDefaultProfile replaces the process-wide profile used when no
// WithProfile option is given. Units already built keep their profile.
// Safe for concurrent use.
func SetDefaultProfile(p dimension.Profile) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultProfile = p
}

// CurrentDefaultProfile returns the process-wide default profile.
func CurrentDefaultProfile() dimension.Profile {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultProfile
}

// gatherOptions resolves opts on top of the defaults. The ambient profile
// is read exactly once per call.
func gatherOptions(opts ...Option) *Options {
	o := &Options{
		profile: CurrentDefaultProfile(),
		logger:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}
