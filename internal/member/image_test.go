package member

import (
	"bytes"
	"testing"

	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestDetectImage(t *testing.T) {
	t.Run("png rewinds the reader", func(t *testing.T) {
		src := memFile{bytes.NewReader(pngHeader)}

		mtype, err := detectImage(src)

		require.NoError(t, err)
		assert.Equal(t, "image/png", mtype.String())
		assert.Equal(t, int64(len(pngHeader)), int64(src.Len()))
	})

	t.Run("text is rejected", func(t *testing.T) {
		_, err := detectImage(memFile{bytes.NewReader([]byte("plain text body"))})

		assert.ErrorIs(t, err, ErrInvalidImageFile)
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		_, err := detectImage(memFile{bytes.NewReader(nil)})

		assert.ErrorIs(t, err, ErrInvalidImageFile)
	})
}

func TestImageExt(t *testing.T) {
	png := mimetype.Detect(pngHeader)

	assert.Equal(t, ".jpg", imageExt("Photo.JPG", png))
	assert.Equal(t, ".png", imageExt("photo", png))
}
