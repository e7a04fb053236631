package archive

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// decompressor wraps r according to the tar variant.
func decompressor(format Format, r io.Reader) (io.Reader, func(), error) {
	nop := func() {}
	switch format {
	case FormatTar:
		return r, nop, nil
	case FormatTarGz:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nop, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return gz, func() { _ = gz.Close() }, nil
	case FormatTarZst:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nop, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return zr, zr.Close, nil
	case FormatTarLz4:
		return lz4.NewReader(r), nop, nil
	default:
		return nil, nop, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func (e *extractor) extractTar(ctx context.Context, r io.Reader) error {
	tr := tar.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read tar: %w", err)
		}

		mode := hdr.FileInfo().Mode()
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := e.mkdir(hdr.Name, mode); err != nil {
				return err
			}
		case tar.TypeReg, tar.TypeRegA:
			if err := e.writeFile(hdr.Name, mode, tr); err != nil {
				return err
			}
		case tar.TypeXGlobalHeader:
			// PAX metadata, nothing to materialize.
		default:
			e.skip(hdr.Name, string(hdr.Typeflag))
		}
	}
}
