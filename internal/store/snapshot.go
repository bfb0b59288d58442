package store

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ulikunitz/xz"

	"swatchbook/internal/catalog"
	"swatchbook/internal/colour"
)

// snapshotVersion is bumped when the snapshot layout changes.
const snapshotVersion = 1

// maxSnapshotBytes caps the decompressed snapshot size so a crafted
// snapshot cannot act as a decompression bomb.
const maxSnapshotBytes = 64 * 1024 * 1024

// Snapshot is the portable catalog interchange format: a JSON document
// compressed with xz.
type Snapshot struct {
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	Colors    []catalog.Color `json:"colors"`
}

// WriteSnapshot writes the colours as an xz-compressed snapshot.
func WriteSnapshot(w io.Writer, colors []catalog.Color) error {
	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}

	snap := Snapshot{
		Version:   snapshotVersion,
		CreatedAt: time.Now().UTC(),
		Colors:    colors,
	}
	if err := json.NewEncoder(xzw).Encode(snap); err != nil {
		xzw.Close() //nolint:errcheck
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return nil
}

// ReadSnapshot reads an xz-compressed snapshot and validates its contents.
func ReadSnapshot(r io.Reader) ([]catalog.Color, error) {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}

	var snap Snapshot
	if err := json.NewDecoder(newLimitedReader(xzr, maxSnapshotBytes)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	seen := make(map[string]bool, len(snap.Colors))
	for _, col := range snap.Colors {
		if col.ID == "" || col.Name == "" {
			return nil, fmt.Errorf("snapshot colour missing id or name")
		}
		if !colour.IsValidHex(col.Hex) {
			return nil, fmt.Errorf("snapshot colour %q has invalid hex %q", col.ID, col.Hex)
		}
		if seen[col.ID] {
			return nil, fmt.Errorf("snapshot contains duplicate colour id %q", col.ID)
		}
		seen[col.ID] = true
	}

	return snap.Colors, nil
}

// limitedReader caps the total bytes readable from the wrapped reader and
// errors out once the cap is hit, unlike io.LimitReader's silent EOF.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func newLimitedReader(r io.Reader, maxBytes int64) *limitedReader {
	return &limitedReader{r: r, remaining: maxBytes}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, fmt.Errorf("snapshot size limit exceeded")
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
