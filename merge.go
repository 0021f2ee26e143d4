package ballast

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ballast-kit/ballast/internal/envfile"
)

// MergedResult pairs the document left after all structured sources folded
// with the finalized environment snapshot. It is immutable once produced.
type MergedResult struct {
	doc Document
	env *Snapshot
}

// Document returns the merged document. Treat it as read-only.
func (r *MergedResult) Document() Document { return r.doc }

// Environment returns the finalized environment snapshot.
func (r *MergedResult) Environment() *Snapshot { return r.env }

// Merge replays the declared sources in order, producing the merged document
// and the finalized snapshot:
//
//   - an environment file fills the snapshot; an absent file is skipped
//   - a structured file replaces the current document wholesale; there is no
//     key-level merge between structured sources
//
// An absent structured file fails with SourceNotFoundError, malformed content
// with ParseError. Like Build, Merge executes at most once per builder.
func (b *Builder[T]) Merge(ctx context.Context) (*MergedResult, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return nil, ErrBuilderConsumed
	}
	b.built = true

	snap := newSnapshot(b.seed)
	doc := Document{}

	for _, op := range b.ops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch op.kind {
		case sourceEnvFile:
			vars, err := envfile.Read(op.path)
			if err != nil {
				if envfile.IsNotExist(err) {
					b.logger.Debug().Str("path", op.path).Msg("environment file absent, skipping")
					continue
				}
				return nil, &ParseError{Path: op.path, Format: FormatDotenv, Err: err}
			}
			snap.apply(vars)
			b.logger.Debug().Str("path", op.path).Int("keys", len(vars)).Msg("applied environment file")

		case sourceStructured:
			data, err := os.ReadFile(op.path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil, &SourceNotFoundError{Path: op.path}
				}
				return nil, &ParseError{Path: op.path, Format: op.format, Err: err}
			}
			parsed, err := decodeDocument(op.format, data)
			if err != nil {
				return nil, &ParseError{Path: op.path, Format: op.format, Err: err}
			}
			doc = parsed
			b.logger.Debug().Str("path", op.path).Stringer("format", op.format).Msg("loaded configuration file")
		}
	}

	if b.logFromEnv {
		b.logger = loggerFromSnapshot(snap)
		log.Logger = b.logger
	}

	return &MergedResult{doc: doc, env: snap}, nil
}
