package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/vfsh/pkg/vpath"
	"github.com/spf13/afero"
)

var (
	// ErrUnsupportedFormat is returned for archive extensions we cannot read.
	ErrUnsupportedFormat = errors.New("unsupported archive format")

	// ErrUnsafeEntry is returned when an entry name would land outside the destination.
	ErrUnsafeEntry = errors.New("archive entry escapes destination")

	// ErrFileTooLarge is returned when an entry exceeds the configured size limit.
	ErrFileTooLarge = errors.New("archive entry exceeds size limit")
)

// DefaultMaxFileSize caps a single extracted file (1 GiB).
const DefaultMaxFileSize int64 = 1 << 30

// Format identifies an archive container/compression pair.
type Format string

const (
	FormatZip    Format = "zip"
	FormatTar    Format = "tar"
	FormatTarGz  Format = "tar.gz"
	FormatTarZst Format = "tar.zst"
	FormatTarLz4 Format = "tar.lz4"
)

// Stats summarizes an extraction.
type Stats struct {
	Files   int
	Dirs    int
	Skipped int
	Bytes   int64
}

// Option configures extraction.
type Option func(*extractor)

// WithFs sets the filesystem the archive is read from and extracted into.
func WithFs(fs afero.Fs) Option {
	return func(e *extractor) {
		e.fs = fs
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *extractor) {
		e.logger = logger
	}
}

// WithMaxFileSize caps the size of any single extracted file.
func WithMaxFileSize(n int64) Option {
	return func(e *extractor) {
		e.maxFileSize = n
	}
}

type extractor struct {
	fs          afero.Fs
	logger      *slog.Logger
	maxFileSize int64
	dest        string
	stats       Stats
}

// DetectFormat infers the archive format from the file name.
func DetectFormat(name string) (Format, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return FormatZip, nil
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return FormatTarGz, nil
	case strings.HasSuffix(lower, ".tar.zst"), strings.HasSuffix(lower, ".tzst"):
		return FormatTarZst, nil
	case strings.HasSuffix(lower, ".tar.lz4"):
		return FormatTarLz4, nil
	case strings.HasSuffix(lower, ".tar"):
		return FormatTar, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(name))
	}
}

// Extract unpacks archivePath into dest, creating dest if needed.
// dest must be an absolute path.
func Extract(ctx context.Context, archivePath, dest string, opts ...Option) (Stats, error) {
	e := &extractor{
		fs:          afero.NewOsFs(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxFileSize: DefaultMaxFileSize,
		dest:        filepath.Clean(dest),
	}
	for _, opt := range opts {
		opt(e)
	}

	if !filepath.IsAbs(e.dest) {
		return Stats{}, fmt.Errorf("destination must be absolute: %q", dest)
	}

	format, err := DetectFormat(archivePath)
	if err != nil {
		return Stats{}, err
	}

	if err := e.fs.MkdirAll(e.dest, 0755); err != nil {
		return Stats{}, fmt.Errorf("failed to create destination: %w", err)
	}

	f, err := e.fs.Open(archivePath)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	e.logger.Debug("Extracting archive", "archive", archivePath, "format", format, "dest", e.dest)

	if format == FormatZip {
		info, err := f.Stat()
		if err != nil {
			return Stats{}, fmt.Errorf("failed to stat archive: %w", err)
		}
		err = e.extractZip(ctx, f, info.Size())
		return e.stats, err
	}

	r, closeFn, err := decompressor(format, f)
	if err != nil {
		return Stats{}, err
	}
	defer closeFn()

	err = e.extractTar(ctx, r)
	return e.stats, err
}

// target resolves an entry name to a host path inside dest.
func (e *extractor) target(name string) (string, error) {
	virtual, err := vpath.NormalizeStrict(vpath.Root+filepath.ToSlash(name), vpath.Root)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsafeEntry, name)
	}
	hostPath, err := vpath.ResolveReal(virtual, e.dest)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsafeEntry, name)
	}
	return hostPath, nil
}

func (e *extractor) mkdir(name string, mode os.FileMode) error {
	p, err := e.target(name)
	if err != nil {
		return err
	}
	if err := e.fs.MkdirAll(p, dirMode(mode)); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", name, err)
	}
	if p != e.dest {
		e.stats.Dirs++
	}
	return nil
}

func (e *extractor) writeFile(name string, mode os.FileMode, r io.Reader) error {
	p, err := e.target(name)
	if err != nil {
		return err
	}
	if p == e.dest {
		return fmt.Errorf("%w: %q", ErrUnsafeEntry, name)
	}
	if err := e.fs.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("failed to create parent of %q: %w", name, err)
	}

	out, err := e.fs.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode(mode))
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", name, err)
	}
	n, copyErr := io.Copy(out, io.LimitReader(r, e.maxFileSize+1))
	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("failed to write %q: %w", name, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %q: %w", name, closeErr)
	}
	if n > e.maxFileSize {
		return fmt.Errorf("%w: %q", ErrFileTooLarge, name)
	}

	e.stats.Files++
	e.stats.Bytes += n
	return nil
}

func (e *extractor) skip(name, kind string) {
	e.stats.Skipped++
	e.logger.Warn("Skipping archive entry", "entry", name, "kind", kind)
}

func fileMode(m os.FileMode) os.FileMode {
	if m.Perm() == 0 {
		return 0644
	}
	return m.Perm()
}

func dirMode(m os.FileMode) os.FileMode {
	if m.Perm() == 0 {
		return 0755
	}
	// Keep directories traversable so the rest of the archive can be written.
	return m.Perm() | 0700
}
