// Package media detects the media type of file content.
//
// Detection inspects the leading bytes of the content (magic numbers and
// text heuristics) through github.com/gabriel-vasile/mimetype and returns
// the bare media type, without parameters such as charset:
//
//	mt, err := media.Detect(f) // "image/png", "text/plain", ...
//	if media.IsImage(mt) {
//	    // ...
//	}
package media

import (
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jmgilman/go/extfile/errors"
)

// Fallback is the media type reported for content nothing more specific
// matches.
const Fallback = "application/octet-stream"

// Detect reads the head of r and returns its media type.
func Detect(r io.Reader) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		var platformErr errors.PlatformError
		if errors.As(err, &platformErr) {
			return "", err
		}
		return "", errors.Wrap(err, errors.CodeIO, "failed to read content for media type detection")
	}
	return bare(mt.String()), nil
}

// DetectBytes returns the media type of data.
func DetectBytes(data []byte) string {
	return bare(mimetype.Detect(data).String())
}

// Extension returns the conventional file extension, including the leading
// dot, for the media type detected in data, or "" if there is none.
func Extension(data []byte) string {
	return mimetype.Detect(data).Extension()
}

func bare(mt string) string {
	mt, _, _ = strings.Cut(mt, ";")
	return strings.TrimSpace(mt)
}

// IsImage reports whether mt is an image/* type.
func IsImage(mt string) bool { return hasTopLevel(mt, "image") }

// IsText reports whether mt is a text/* type.
func IsText(mt string) bool { return hasTopLevel(mt, "text") }

// IsAudio reports whether mt is an audio/* type.
func IsAudio(mt string) bool { return hasTopLevel(mt, "audio") }

// IsVideo reports whether mt is a video/* type.
func IsVideo(mt string) bool { return hasTopLevel(mt, "video") }

// Matches reports whether two media types are equal, ignoring case and
// parameters.
func Matches(mt, want string) bool {
	return strings.EqualFold(bare(mt), bare(want))
}

func hasTopLevel(mt, top string) bool {
	t, _, ok := strings.Cut(bare(mt), "/")
	return ok && strings.EqualFold(t, top)
}
