// Package photostore persists applicant photographs submitted as embedded
// base64 data URIs and hands back durable references. Decoupling the photo
// bytes from the applicant record keeps records small and lets deployments
// swap the backend (local disk in development, S3 in production) without
// touching record-level logic.
package photostore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidImage is returned when a payload is not a recognizable
// base64 image data URI.
var ErrInvalidImage = errors.New("invalid image data")

// Store saves embedded image payloads and deletes previously saved ones.
//
// Delete is best-effort by contract: a reference that does not exist, or
// that still points at embedded (never-persisted) data, is a no-op.
type Store interface {
	Save(ctx context.Context, dataURL string) (string, error)
	Delete(ctx context.Context, ref string) error
}

var dataURLRe = regexp.MustCompile(`^data:image/(jpeg|png|gif|webp);base64,(.+)$`)

// IsEmbedded reports whether ref is an inline data URI rather than a
// durable reference.
func IsEmbedded(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}

// decodeDataURL splits a data URI into a file extension and raw bytes.
// jpeg maps to the conventional .jpg extension.
func decodeDataURL(dataURL string) (ext string, data []byte, err error) {
	m := dataURLRe.FindStringSubmatch(dataURL)
	if m == nil {
		return "", nil, ErrInvalidImage
	}
	ext = m[1]
	if ext == "jpeg" {
		ext = "jpg"
	}
	data, err = base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", nil, ErrInvalidImage
	}
	return ext, data, nil
}

// newFilename generates a collision-resistant name for a stored photo:
// millisecond timestamp plus a random suffix, so two concurrent uploads
// cannot race to the same path.
func newFilename(ext string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), suffix, ext)
}

// ContentType returns the MIME type for a stored photo filename based on
// its extension, or application/octet-stream when unknown.
func ContentType(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return "application/octet-stream"
	}
	switch strings.ToLower(filename[idx+1:]) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	}
	return "application/octet-stream"
}
