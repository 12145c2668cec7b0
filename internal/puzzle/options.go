package puzzle

import (
	"image/color"
	"io"
	"math/rand/v2"

	"vidslide/internal/core"

	"github.com/sirupsen/logrus"
)

type options struct {
	rng             *rand.Rand
	shuffleOnAttach bool
	strict          bool
	log             logrus.FieldLogger
	border          color.Color
}

// Option configures a Board or a Game.
type Option func(*options)

// WithSeed makes shuffles deterministic.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = core.NewRNG(seed).Source() }
}

// WithShuffleOnAttach shuffles the tiles as soon as the board is attached
// instead of starting from the solved arrangement.
func WithShuffleOnAttach() Option {
	return func(o *options) { o.shuffleOnAttach = true }
}

// WithStrictInvariants validates the board after every mutation and panics on
// a violation.
func WithStrictInvariants() Option {
	return func(o *options) { o.strict = true }
}

// WithLogger sets the logger used for lifecycle events and invariant
// violations.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithBorderColor sets the color of slot borders.
func WithBorderColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.border = c
		}
	}
}

func newOptions(opts []Option) options {
	o := options{border: color.Black}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.log = l
	}
	return o
}
