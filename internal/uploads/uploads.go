// Package uploads persists multipart file payloads into the shared upload
// directory and hands back references the rest of the service stores.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/keepsakehq/keepsake/server/internal/model"
)

// URLPrefix is where stored assets are served from.
const URLPrefix = "/assets/uploads/"

// ErrTooLarge is returned when a payload exceeds the configured bound.
var ErrTooLarge = fmt.Errorf("file exceeds upload size limit")

// ErrWrongType is returned when the sniffed content type does not match the
// required kind.
var ErrWrongType = fmt.Errorf("unexpected file type")

// Kind restricts an upload to a top-level media type.
type Kind string

const (
	Image Kind = "image"
	Audio Kind = "audio"
	Any   Kind = ""
)

// Intake writes bounded uploads into a content directory. Stored names are
// timestamp-prefixed to make concurrent uploads distinguishing, which
// reduces but does not eliminate collision risk.
type Intake struct {
	dir      string
	maxBytes int64
	now      func() time.Time
}

// NewIntake creates the upload directory if needed.
func NewIntake(dir string, maxBytes int64) (*Intake, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Intake{dir: dir, maxBytes: maxBytes, now: time.Now}, nil
}

// WithClock overrides the time source; used by tests.
func (in *Intake) WithClock(now func() time.Time) *Intake {
	in.now = now
	return in
}

// Store reads the payload, verifies its sniffed content type against kind,
// and writes it as <epoch-millis>_<sanitized original name>. The declared
// client Content-Type is ignored; the bytes decide.
func (in *Intake) Store(r io.Reader, originalName string, kind Kind) (model.StoredFile, error) {
	data, err := io.ReadAll(io.LimitReader(r, in.maxBytes+1))
	if err != nil {
		return model.StoredFile{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > in.maxBytes {
		return model.StoredFile{}, ErrTooLarge
	}

	mt := mimetype.Detect(data)
	if kind != Any && !strings.HasPrefix(mt.String(), string(kind)+"/") {
		return model.StoredFile{}, ErrWrongType
	}

	stored := fmt.Sprintf("%d_%s", in.now().UnixMilli(), SanitizeFilename(originalName))
	if err := os.WriteFile(filepath.Join(in.dir, stored), data, 0o644); err != nil {
		return model.StoredFile{}, fmt.Errorf("store upload: %w", err)
	}

	return model.StoredFile{
		StoredFilename: stored,
		OriginalName:   originalName,
		MimeType:       mt.String(),
		SizeBytes:      int64(len(data)),
	}, nil
}

// Remove unlinks a stored file by base name. A missing file is not an
// error; callers treat removal as best-effort cleanup.
func (in *Intake) Remove(name string) error {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return nil
	}
	err := os.Remove(filepath.Join(in.dir, base))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URLFor returns the public URL for a stored file name.
func (in *Intake) URLFor(stored string) string {
	return URLPrefix + filepath.Base(stored)
}

// Dir returns the backing directory.
func (in *Intake) Dir() string { return in.dir }

// SanitizeFilename keeps [A-Za-z0-9._-] and maps every other byte to '_'.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	b := []byte(name)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '-', c == '_':
		default:
			b[i] = '_'
		}
	}
	return string(b)
}
