package uploads

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// pngBytes is a minimal PNG signature plus padding; enough for sniffing.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

// mp3Bytes carries an ID3 header, sniffed as audio/mpeg.
var mp3Bytes = append([]byte("ID3\x03\x00\x00\x00\x00\x00\x00"), bytes.Repeat([]byte{0}, 64)...)

func newTestIntake(t *testing.T) *Intake {
	t.Helper()
	in, err := NewIntake(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("new intake: %v", err)
	}
	return in
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"photo.png":        "photo.png",
		"our summer!.jpg":  "our_summer_.jpg",
		"../../etc/passwd": "passwd",
		"söng titlé.mp3":   "s__ng_titl__.mp3",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStore_TimestampPrefixedName(t *testing.T) {
	in := newTestIntake(t)
	fixed := time.UnixMilli(1700000000000)
	in.WithClock(func() time.Time { return fixed })

	stored, err := in.Store(bytes.NewReader(pngBytes), "photo.png", Image)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if stored.StoredFilename != "1700000000000_photo.png" {
		t.Fatalf("unexpected stored name: %s", stored.StoredFilename)
	}
	if stored.SizeBytes != int64(len(pngBytes)) {
		t.Fatalf("unexpected size: %d", stored.SizeBytes)
	}
	if !strings.HasPrefix(stored.MimeType, "image/") {
		t.Fatalf("unexpected mime: %s", stored.MimeType)
	}
	if _, err := os.Stat(filepath.Join(in.Dir(), stored.StoredFilename)); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if got := in.URLFor(stored.StoredFilename); got != "/assets/uploads/1700000000000_photo.png" {
		t.Fatalf("unexpected url: %s", got)
	}
}

func TestStore_SniffsContentNotHeader(t *testing.T) {
	in := newTestIntake(t)

	// Image kind rejects audio bytes even with an image-looking name.
	if _, err := in.Store(bytes.NewReader(mp3Bytes), "disguised.png", Image); !errors.Is(err, ErrWrongType) {
		t.Fatalf("expected ErrWrongType, got %v", err)
	}
	// Audio kind accepts them.
	if _, err := in.Store(bytes.NewReader(mp3Bytes), "song.mp3", Audio); err != nil {
		t.Fatalf("audio store: %v", err)
	}
}

func TestStore_EnforcesSizeBound(t *testing.T) {
	in, err := NewIntake(t.TempDir(), 16)
	if err != nil {
		t.Fatalf("new intake: %v", err)
	}
	if _, err := in.Store(bytes.NewReader(pngBytes), "big.png", Any); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestRemove_BestEffort(t *testing.T) {
	in := newTestIntake(t)

	stored, err := in.Store(bytes.NewReader(pngBytes), "photo.png", Image)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := in.Remove("/assets/uploads/" + stored.StoredFilename); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(in.Dir(), stored.StoredFilename)); !os.IsNotExist(err) {
		t.Fatalf("file should be gone, got %v", err)
	}
	// Removing a missing file is not an error.
	if err := in.Remove("never-existed.png"); err != nil {
		t.Fatalf("missing file remove should be nil, got %v", err)
	}
}
