package mutate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/moldgen/mold/internal/anchor"
	"github.com/moldgen/mold/internal/defs"
	"github.com/moldgen/mold/internal/fsutil"
)

// ErrTargetMissing indicates a mutation targets a file that does not exist
// in the project.
var ErrTargetMissing = errors.New("mutate: target file does not exist")

// Op is one requested insertion: put Snippet into the Block anchor of the
// file at Path (relative to the project root), keyed by Key for the
// idempotence check.
type Op struct {
	Path    string
	Block   string
	Snippet string
	Key     string
}

// OpResult pairs an Op with its resolved outcome.
type OpResult struct {
	Op      Op
	Outcome Outcome
}

// Batch stages insertion ops against a project root. Nothing is written
// until Commit; Plan resolves every op in memory first, so a single failing
// anchor aborts the whole request with zero files modified.
type Batch struct {
	root   string
	ops    []Op
	logger *slog.Logger

	// staged holds planned file contents keyed by relative path. A file
	// may accumulate several ops; each op applies on top of the previous
	// staged content.
	staged map[string]string
	// results records per-op outcomes from Plan.
	results []OpResult
}

// NewBatch creates an empty batch for the given project root.
// A nil logger discards log output.
func NewBatch(root string, logger *slog.Logger) *Batch {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Batch{
		root:   filepath.Clean(root),
		logger: logger,
		staged: make(map[string]string),
	}
}

// Add appends an op to the batch.
func (b *Batch) Add(op Op) {
	b.ops = append(b.ops, op)
}

// Len returns the number of staged ops.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Plan resolves every op against the current file contents without writing.
// On any failure the batch is left unplanned and no file will be committed.
func (b *Batch) Plan() ([]OpResult, error) {
	b.staged = make(map[string]string)
	b.results = b.results[:0]

	for _, op := range b.ops {
		content, ok := b.staged[op.Path]
		if !ok {
			path := filepath.Join(b.root, filepath.FromSlash(op.Path))
			data, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil, fmt.Errorf("%w: %s", ErrTargetMissing, op.Path)
				}
				return nil, fmt.Errorf("read %s: %w", op.Path, err)
			}
			content = string(data)
		}

		span, err := anchor.Locate(content, op.Block)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Path, err)
		}

		next, outcome := Apply(content, span, op.Snippet, op.Key)
		b.staged[op.Path] = next
		b.results = append(b.results, OpResult{Op: op, Outcome: outcome})

		b.logger.Debug("mutation planned",
			"file", op.Path,
			"block", op.Block,
			"key", op.Key,
			"outcome", outcome.String(),
		)
	}

	return b.results, nil
}

// Commit writes every planned file. Plan must have succeeded first.
// Files whose planned content equals their current content are skipped, so
// an all-AlreadyPresent batch leaves zero diffs on disk.
func (b *Batch) Commit() ([]string, error) {
	if len(b.results) != len(b.ops) {
		return nil, errors.New("mutate: commit before successful plan")
	}

	paths := make([]string, 0, len(b.staged))
	for path := range b.staged {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var written []string
	for _, path := range paths {
		content := b.staged[path]
		abs := filepath.Join(b.root, filepath.FromSlash(path))

		current, err := os.ReadFile(abs)
		if err != nil {
			return written, fmt.Errorf("reread %s: %w", path, err)
		}
		if string(current) == content {
			continue
		}

		// Mutated files are user-owned; write through a temp file + rename
		// so an interrupted commit never leaves a truncated target.
		if err := fsutil.WriteFileAtomic(abs, []byte(content), defs.FilePerm); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
		b.logger.Debug("mutation committed", "file", path)
	}

	return written, nil
}
