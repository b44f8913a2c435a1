package upload

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/frahmantamala/employee-management/internal"
)

// allowedExtensions is the image allow-list. Matching is on the file
// extension only, lowercased; content is not sniffed.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ErrInvalidFile rejects anything outside the allow-list before a single
// byte is written to disk.
var ErrInvalidFile = internal.NewValidationError(
	"Invalid file type. Only JPG and PNG files are allowed",
	internal.ErrCodeInvalidFile,
)

// Store persists uploaded profile pictures to a local directory.
type Store struct {
	dir    string
	logger *slog.Logger
	// now is swapped out in tests to make generated names deterministic
	now func() time.Time
}

func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
		now:    time.Now,
	}
}

// EnsureDir creates the upload directory if it does not exist yet.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

// SaveFromRequest extracts at most one file from the multipart form field
// and persists it. It returns the stored relative path, nil when no file
// was attached, or ErrInvalidFile for a disallowed extension.
//
// Names are "<unix-ms>-<original name>"; two uploads landing on the same
// millisecond with the same name collide, which is accepted behavior.
func (s *Store) SaveFromRequest(r *http.Request, field string) (*string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		// no file part, or not a multipart request at all: both mean
		// "no picture submitted"
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, nil
		}
		return nil, fmt.Errorf("read form file: %w", err)
	}
	defer file.Close()

	original := filepath.Base(header.Filename)
	ext := strings.ToLower(filepath.Ext(original))
	if !allowedExtensions[ext] {
		s.logger.Warn("upload rejected", "filename", original, "ext", ext)
		return nil, ErrInvalidFile
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), original)
	dst := filepath.Join(s.dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	stored := filepath.ToSlash(filepath.Join(s.dir, name))
	s.logger.Info("file uploaded", "path", stored, "size", header.Size)

	return &stored, nil
}
