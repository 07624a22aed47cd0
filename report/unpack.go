package report

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
)

// Open locates the reference-level and desynced-level captures under a
// desync report directory, extracting reference-level.zip and
// desynced-level.zip first when needed. Large reports are the norm, so
// extraction uses the faster flate implementation.
func Open(dir string) (refDir, desDir string, err error) {
	refDir, err = openLevel(dir, "reference-level")
	if err != nil {
		return "", "", err
	}
	desDir, err = openLevel(dir, "desynced-level")
	if err != nil {
		return "", "", err
	}
	return refDir, desDir, nil
}

func openLevel(dir, name string) (string, error) {
	levelDir := filepath.Join(dir, name)
	if st, err := os.Stat(levelDir); err == nil && st.IsDir() {
		return levelDir, nil
	}
	zipPath := filepath.Join(dir, name+".zip")
	if _, err := os.Stat(zipPath); err != nil {
		return "", fmt.Errorf("no %s directory or %s.zip under %s", name, name, dir)
	}
	if err := Unpack(zipPath, levelDir); err != nil {
		return "", err
	}
	return levelDir, nil
}

// Unpack extracts a level zip into destDir.
func Unpack(zipPath, destDir string) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", zipPath, err)
	}
	defer zr.Close()
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
	for _, f := range zr.File {
		if err := unpackFile(f, destDir); err != nil {
			return fmt.Errorf("extracting %s from %s: %w", f.Name, zipPath, err)
		}
	}
	return nil
}

func unpackFile(f *zip.File, destDir string) error {
	rel := filepath.FromSlash(f.Name)
	if !filepath.IsLocal(rel) {
		return fmt.Errorf("unsafe path %q", f.Name)
	}
	dest := filepath.Join(destDir, rel)
	if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
		return os.MkdirAll(dest, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
