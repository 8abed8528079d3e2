package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gmps/schooladmin/internal/pkg/logger"
)

// LocalStorage handles saving uploaded documents to a flat local directory.
type LocalStorage struct {
	basePath    string              // The root directory where files are stored
	baseURL     string              // Base URL prepended to stored names to build access URLs
	allowedExts map[string]struct{} // Lowercased extensions accepted for upload
	now         func() time.Time
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the required directory path on the server; baseURL is prepended
// to stored file names when building access URLs. allowedExtensions is the
// immutable set of acceptable file extensions (without the leading dot).
func NewLocalStorage(basePath, baseURL string, allowedExtensions []string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	exts := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		exts[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}

	return &LocalStorage{
		basePath:    basePath,
		baseURL:     baseURL,
		allowedExts: exts,
		now:         time.Now,
	}, nil
}

// AllowedFile reports whether the filename carries an acceptable extension.
// The extension is the substring after the last dot, compared case-insensitively;
// a filename without a dot is rejected.
func (ls *LocalStorage) AllowedFile(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	_, ok := ls.allowedExts[strings.ToLower(filename[idx+1:])]
	return ok
}

// SanitizeFilename strips any path components and replaces characters that
// are unsafe in a flat uploads directory.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return name
}

// SaveUpload writes an uploaded file under a timestamp-prefixed name and
// returns the stored name. The timestamp prefix keeps repeated uploads of
// files sharing an original name distinct.
func (ls *LocalStorage) SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	storedName, err := ls.storedName(fileHeader.Filename)
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to pick stored file name")
		return "", err
	}
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Remove the partially written file
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Msg("File saved")
	return storedName, nil
}

// storedName builds a collision-resistant name of the form
// YYYYMMDDHHMMSS_<sanitized original name>. Same-second collisions get a
// numeric infix. A stat failure other than not-exist aborts the search.
func (ls *LocalStorage) storedName(original string) (string, error) {
	base := fmt.Sprintf("%s_%s", ls.now().Format("20060102150405"), SanitizeFilename(original))
	candidate := base
	for i := 1; ; i++ {
		_, err := os.Stat(filepath.Join(ls.basePath, candidate))
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check stored name %s: %w", candidate, err)
		}
		candidate = fmt.Sprintf("%d_%s", i, base)
	}
}

// StoredPath returns the path of a stored file under the configured storage
// directory, as recorded in document metadata.
func (ls *LocalStorage) StoredPath(storedName string) string {
	return filepath.Join(ls.basePath, storedName)
}

// FileURL returns the URL under which a stored file is served.
func (ls *LocalStorage) FileURL(storedName string) string {
	return strings.TrimRight(ls.baseURL, "/") + "/" + storedName
}

// DeleteFile removes a stored file from the filesystem.
// Returns nil if deletion is successful or if the file doesn't exist.
func (ls *LocalStorage) DeleteFile(storedName string) error {
	filename := filepath.Base(storedName)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file name: %s", storedName)
	}

	physicalPath := filepath.Join(ls.basePath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil // Idempotent delete
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}

// BasePath returns the storage root directory.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
