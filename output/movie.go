package output

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// WriteMovie assembles the snapshot frames recorded during the run into an
// MJPEG AVI animation. Frames must share dimensions; an empty frame list is
// a no-op.
func WriteMovie(path string, frames []*image.RGBA, fps int) error {
	if len(frames) == 0 {
		return nil
	}
	bounds := frames[0].Bounds()
	aw, err := mjpeg.New(path, int32(bounds.Dx()), int32(bounds.Dy()), int32(fps))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: 90}
	for _, frame := range frames {
		if err := jpeg.Encode(&buf, frame, opts); err != nil {
			aw.Close()
			return fmt.Errorf("encode frame: %w", err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			return fmt.Errorf("add frame: %w", err)
		}
		buf.Reset()
	}
	return aw.Close()
}
