// Package refarchive fetches and extracts a tar.gz reference-corpus
// snapshot into a local directory. Nothing in the matching/status path
// depends on this package; it exists purely so an operator can point a
// refloader.Loader at locally extracted files without fetching the
// corpus by hand first.
package refarchive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FetchAndExtract downloads the tar.gz archive at url and extracts its
// contents into destDir, creating destDir if it does not exist.
// Entries that would escape destDir via a path traversal (`../`) are
// rejected rather than silently written outside the target directory.
func FetchAndExtract(url, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("refarchive: create destination dir %s: %w", destDir, err)
	}

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("refarchive: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("refarchive: fetch %s: HTTP %d", url, resp.StatusCode)
	}

	gzipReader, err := gzip.NewReader(resp.Body)
	if err != nil {
		return fmt.Errorf("refarchive: open gzip stream for %s: %w", url, err)
	}
	defer gzipReader.Close()

	return extractTar(tar.NewReader(gzipReader), destDir)
}

func extractTar(tarReader *tar.Reader, destDir string) error {
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("refarchive: read tar entry: %w", err)
		}
		if header.Typeflag == tar.TypeDir {
			continue
		}

		entryPath, err := safeJoin(destDir, header.Name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
			return fmt.Errorf("refarchive: create directory for %s: %w", header.Name, err)
		}

		file, err := os.Create(entryPath)
		if err != nil {
			return fmt.Errorf("refarchive: create file %s: %w", entryPath, err)
		}
		if _, err := io.Copy(file, tarReader); err != nil {
			file.Close()
			return fmt.Errorf("refarchive: write file %s: %w", entryPath, err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("refarchive: close file %s: %w", entryPath, err)
		}
	}
	return nil
}

// safeJoin joins destDir and name, rejecting names that would resolve
// outside destDir.
func safeJoin(destDir, name string) (string, error) {
	joined := filepath.Join(destDir, name)
	if joined != destDir && !strings.HasPrefix(joined, destDir+string(filepath.Separator)) {
		return "", fmt.Errorf("refarchive: tar entry %q escapes destination directory", name)
	}
	return joined, nil
}
