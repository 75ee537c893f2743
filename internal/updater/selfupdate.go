package updater

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/t3mono-labs/t3mono/internal/branding"
	"github.com/t3mono-labs/t3mono/internal/platform"
)

// SelfUpdate downloads the release's platform asset, verifies it against the
// release checksums, extracts the binary, and atomically replaces the
// running executable with rollback on failure.
func (u *Updater) SelfUpdate(release *Release) error {
	if runtime.GOOS == "windows" {
		return fmt.Errorf("self-update is not supported on Windows; download the latest version from https://github.com/%s/releases", branding.GitHubRepo())
	}

	currentPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating current binary: %w", err)
	}
	currentPath, err = filepath.EvalSymlinks(currentPath)
	if err != nil {
		return fmt.Errorf("resolving current binary: %w", err)
	}

	workDir, err := os.MkdirTemp("", branding.CLIName()+"-update-")
	if err != nil {
		return fmt.Errorf("creating work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	archivePath, err := u.downloadAsset(release, workDir)
	if err != nil {
		return err
	}
	if err := u.verifyChecksum(release, archivePath); err != nil {
		return err
	}

	binaryPath, err := extractBinary(archivePath, workDir)
	if err != nil {
		return err
	}

	return replaceBinary(binaryPath, currentPath)
}

func (u *Updater) downloadAsset(release *Release, destDir string) (string, error) {
	asset, err := SelectAsset(release.Assets)
	if err != nil {
		return "", err
	}

	body, err := u.get(asset.DownloadURL)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", asset.Name, err)
	}
	defer body.Close()

	destPath := filepath.Join(destDir, asset.Name)
	f, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("creating download file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("writing download: %w", err)
	}
	return destPath, nil
}

// verifyChecksum checks the archive against the "sha256  filename" lines in
// the release's checksums.txt asset.
func (u *Updater) verifyChecksum(release *Release, archivePath string) error {
	var checksumURL string
	for _, a := range release.Assets {
		if a.Name == "checksums.txt" {
			checksumURL = a.DownloadURL
			break
		}
	}
	if checksumURL == "" {
		return fmt.Errorf("checksums.txt not found in release assets")
	}

	body, err := u.get(checksumURL)
	if err != nil {
		return fmt.Errorf("downloading checksums: %w", err)
	}
	defer body.Close()

	sums, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("reading checksums: %w", err)
	}

	archiveName := filepath.Base(archivePath)
	var expected string
	for _, line := range strings.Split(string(sums), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == archiveName {
			expected = fields[0]
			break
		}
	}
	if expected == "" {
		return fmt.Errorf("no checksum for %s in checksums.txt", archiveName)
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive for checksum: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("computing checksum: %w", err)
	}
	if actual := hex.EncodeToString(h.Sum(nil)); actual != expected {
		return fmt.Errorf("checksum mismatch for %s: expected %s, got %s", archiveName, expected, actual)
	}
	return nil
}

func (u *Updater) get(url string) (io.ReadCloser, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", branding.CLIName()+"-updater")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download returned status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// extractBinary pulls the CLI binary out of a tar.gz or zip archive and
// returns its extracted path.
func extractBinary(archivePath, destDir string) (string, error) {
	if strings.HasSuffix(archivePath, ".zip") {
		return extractFromZip(archivePath, destDir)
	}
	return extractFromTarGz(archivePath, destDir)
}

func isCLIBinary(name string) bool {
	base := filepath.Base(name)
	return base == branding.CLIName() || base == branding.CLIName()+".exe"
}

func extractFromTarGz(archivePath, destDir string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return "", fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading tar entry: %w", err)
		}
		if !isCLIBinary(hdr.Name) {
			continue
		}

		destPath := filepath.Join(destDir, filepath.Base(hdr.Name))
		out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY, 0o755)
		if err != nil {
			return "", fmt.Errorf("creating binary file: %w", err)
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return "", fmt.Errorf("extracting binary: %w", err)
		}
		out.Close()
		return destPath, nil
	}

	return "", fmt.Errorf("%s binary not found in archive", branding.CLIName())
}

func extractFromZip(archivePath, destDir string) (string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("opening zip archive: %w", err)
	}
	defer r.Close()

	for _, zf := range r.File {
		if !isCLIBinary(zf.Name) {
			continue
		}

		rc, err := zf.Open()
		if err != nil {
			return "", fmt.Errorf("opening zip entry: %w", err)
		}

		destPath := filepath.Join(destDir, filepath.Base(zf.Name))
		out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY, 0o755)
		if err != nil {
			rc.Close()
			return "", fmt.Errorf("creating binary file: %w", err)
		}
		_, copyErr := io.Copy(out, rc)
		out.Close()
		rc.Close()
		if copyErr != nil {
			return "", fmt.Errorf("extracting binary: %w", copyErr)
		}
		return destPath, nil
	}

	return "", fmt.Errorf("%s binary not found in zip archive", branding.CLIName())
}

// replaceBinary swaps the new binary into place, keeping a backup until the
// swap succeeds. Renames fall back to copies for cross-filesystem moves.
func replaceBinary(newPath, currentPath string) error {
	info, err := os.Stat(currentPath)
	if err != nil {
		return fmt.Errorf("stat current binary: %w", err)
	}
	origPerm := info.Mode().Perm()

	backupPath := currentPath + ".backup"
	if err := os.Rename(currentPath, backupPath); err != nil {
		if copyErr := copyFile(currentPath, backupPath); copyErr != nil {
			return fmt.Errorf("creating backup: %w", copyErr)
		}
		os.Remove(currentPath)
	}

	if err := os.Rename(newPath, currentPath); err != nil {
		if copyErr := copyFile(newPath, currentPath); copyErr != nil {
			rollback(backupPath, currentPath)
			return fmt.Errorf("installing new binary: %w", copyErr)
		}
		os.Remove(newPath)
	}

	if err := platform.Chmod(currentPath, origPerm); err != nil {
		rollback(backupPath, currentPath)
		return fmt.Errorf("restoring permissions: %w", err)
	}

	os.Remove(backupPath)
	return nil
}

func rollback(backupPath, currentPath string) {
	if err := os.Rename(backupPath, currentPath); err != nil {
		if copyErr := copyFile(backupPath, currentPath); copyErr == nil {
			os.Remove(backupPath)
		}
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
