package archive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
)

func (e *extractor) extractZip(ctx context.Context, ra io.ReaderAt, size int64) error {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return fmt.Errorf("failed to read zip: %w", err)
	}

	for _, zf := range zr.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		mode := zf.Mode()
		switch {
		case strings.HasSuffix(zf.Name, "/") || mode.IsDir():
			if err := e.mkdir(zf.Name, mode); err != nil {
				return err
			}
		case mode.IsRegular():
			if err := e.copyZipFile(zf); err != nil {
				return err
			}
		default:
			e.skip(zf.Name, mode.Type().String())
		}
	}
	return nil
}

func (e *extractor) copyZipFile(zf *zip.File) error {
	rc, err := zf.Open()
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", zf.Name, err)
	}
	defer rc.Close()
	return e.writeFile(zf.Name, zf.Mode(), rc)
}
