package extfile

import (
	"io"

	"github.com/jmgilman/go/extfile/media"
)

// MimeType sniffs the media type from the start of the content. The result
// carries no parameters, e.g. "text/plain".
func (r FileRef) MimeType() (string, error) {
	var mt string
	err := r.withReader(func(rd io.Reader) error {
		var err error
		mt, err = media.Detect(rd)
		return err
	})
	if err != nil {
		return "", fsError(err, "detect", r.path)
	}
	return mt, nil
}

// IsImage reports whether the content is an image.
func (r FileRef) IsImage() (bool, error) { return r.mimeIs(media.IsImage) }

// IsText reports whether the content is text.
func (r FileRef) IsText() (bool, error) { return r.mimeIs(media.IsText) }

// IsAudio reports whether the content is audio.
func (r FileRef) IsAudio() (bool, error) { return r.mimeIs(media.IsAudio) }

// IsVideo reports whether the content is video.
func (r FileRef) IsVideo() (bool, error) { return r.mimeIs(media.IsVideo) }

// MatchesMimeType reports whether the sniffed media type equals mt, ignoring
// case and parameters.
func (r FileRef) MatchesMimeType(mt string) (bool, error) {
	return r.mimeIs(func(got string) bool { return media.Matches(got, mt) })
}

func (r FileRef) mimeIs(check func(string) bool) (bool, error) {
	mt, err := r.MimeType()
	if err != nil {
		return false, err
	}
	return check(mt), nil
}
