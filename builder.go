package ballast

import (
	"context"

	"github.com/rs/zerolog"
)

type sourceKind uint8

const (
	sourceEnvFile sourceKind = iota
	sourceStructured
)

// sourceOp is one inert declared operation. Nothing is read or parsed until
// the builder executes.
type sourceOp struct {
	kind   sourceKind
	path   string
	format Format
}

// Builder declares configuration sources in order and executes them exactly
// once. Declaration never touches the filesystem; Merge/Build replay the
// recorded operations, so a builder configured across multiple code paths
// cannot end up in a partially executed state.
//
// A builder is single-shot: after Merge or Build has run, further executions
// return ErrBuilderConsumed.
type Builder[T any] struct {
	ops        []sourceOp
	defaults   *T
	seed       map[string]string
	logger     zerolog.Logger
	logFromEnv bool
	err        error
	built      bool
}

// NewBuilder creates a builder with no sources and a no-op logger.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{logger: zerolog.Nop()}
}

// WithDotenv declares the conventional ".env" file in the working directory.
func (b *Builder[T]) WithDotenv() *Builder[T] {
	return b.WithEnvFile(".env")
}

// WithEnvFile declares a KEY=VALUE environment file. The file is optional:
// if it does not exist at execution time the operation is a no-op.
func (b *Builder[T]) WithEnvFile(path string) *Builder[T] {
	b.ops = append(b.ops, sourceOp{kind: sourceEnvFile, path: path, format: FormatDotenv})
	return b
}

// WithFile declares a structured configuration file. The format is detected
// from the path at declaration time; an unrecognized extension latches an
// UnsupportedFormatError that Build reports before executing anything.
// Dotenv-suffixed paths degrade to an optional environment-file operation.
func (b *Builder[T]) WithFile(path string) *Builder[T] {
	switch format := FormatFromPath(path); format {
	case FormatUnknown:
		if b.err == nil {
			b.err = &UnsupportedFormatError{Path: path}
		}
	case FormatDotenv:
		return b.WithEnvFile(path)
	default:
		b.ops = append(b.ops, sourceOp{kind: sourceStructured, path: path, format: format})
	}
	return b
}

// WithDefaults supplies fallback values filled into any field still at its
// zero value after the document and environment layers bind. A field
// explicitly set to its zero value is indistinguishable from an absent one
// and receives the default too.
func (b *Builder[T]) WithDefaults(def T) *Builder[T] {
	b.defaults = &def
	return b
}

// WithVariables injects a build-scoped variable set used in place of the
// process environment. This keeps builds independent of os.Environ and of
// each other, which matters when several builds could run in one process.
func (b *Builder[T]) WithVariables(vars map[string]string) *Builder[T] {
	seed := make(map[string]string, len(vars))
	for k, v := range vars {
		seed[k] = v
	}
	b.seed = seed
	return b
}

// WithLogger sets the logger used for source-application diagnostics.
func (b *Builder[T]) WithLogger(logger zerolog.Logger) *Builder[T] {
	b.logger = logger
	return b
}

// WithLoggingFromEnv configures the logger from the LOG_FORMAT and LOG_LEVEL
// variables once the declared environment files have applied, and installs it
// as the zerolog global.
func (b *Builder[T]) WithLoggingFromEnv() *Builder[T] {
	b.logFromEnv = true
	return b
}

// Build merges all declared sources and binds the result into T. It returns
// either a fully populated configuration or a typed error; never a partial
// value. A second call returns ErrBuilderConsumed.
func (b *Builder[T]) Build(ctx context.Context) (*T, error) {
	res, err := b.Merge(ctx)
	if err != nil {
		return nil, err
	}
	return Bind(res, b.defaults)
}
