package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"os"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

// EncodeGIF renders every frame and writes them as one looping GIF played
// back at writerFPS frames per second.
func EncodeGIF(w io.Writer, frames *Frames, scene Scene, writerFPS float64, sess *Session) error {
	if !(writerFPS > 0) || math.IsInf(writerFPS, 0) {
		return fmt.Errorf("%w: writer frame rate must be positive, got %v", dynamo.ErrInvalidArgument, writerFPS)
	}
	if frames.Len() == 0 {
		return fmt.Errorf("%w: no frames to encode", dynamo.ErrInvalidArgument)
	}

	delay := int(math.Round(100 / writerFPS))
	if delay < 1 {
		delay = 1
	}

	anim := gif.GIF{LoopCount: 0}
	frames.Reset()
	for fr, ok := frames.Next(); ok; fr, ok = frames.Next() {
		img, err := DrawFrame(sess, scene, fr)
		if err != nil {
			return fmt.Errorf("draw frame %d: %w", fr.Index, err)
		}
		anim.Image = append(anim.Image, toPaletted(img))
		anim.Delay = append(anim.Delay, delay)
	}

	if err := gif.EncodeAll(w, &anim); err != nil {
		return fmt.Errorf("%w: encode gif: %w", dynamo.ErrIO, err)
	}
	return nil
}

// WriteGIF encodes the animation to path, creating parent directories.
func WriteGIF(path string, frames *Frames, scene Scene, writerFPS float64, sess *Session) (err error) {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", dynamo.ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", dynamo.ErrIO, path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := EncodeGIF(bw, frames, scene, writerFPS, sess); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: write %s: %w", dynamo.ErrIO, path, err)
	}
	return nil
}

func toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	pal := image.NewPaletted(b, palette.WebSafe)
	draw.Draw(pal, b, img, b.Min, draw.Src)
	return pal
}
