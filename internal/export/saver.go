// Package export writes the rendered plot to image files.
package export

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"fyne.io/fyne/v2"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"histview/internal/logger"
)

// Formats lists the extensions offered by the save dialog.
var Formats = []string{".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp"}

type Timer interface {
	StartTiming(operation string) context.Context
	EndTiming(ctx context.Context)
}

type Saver struct {
	logger logger.Logger
	timer  Timer
}

func NewSaver(log logger.Logger, timer Timer) *Saver {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Saver{logger: log, timer: timer}
}

// FormatForExtension maps a file extension to an encoder name. Unknown or
// missing extensions fall back to png.
func FormatForExtension(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		return "jpeg"
	case "tif", "tiff":
		return "tiff"
	case "bmp":
		return "bmp"
	default:
		return "png"
	}
}

// SaveToWriter encodes img. An empty format is taken from the writer's URI
// when it has one.
func (s *Saver) SaveToWriter(w io.Writer, img image.Image, format string) error {
	if img == nil {
		return fmt.Errorf("no image to save")
	}

	if s.timer != nil {
		ctx := s.timer.StartTiming("export")
		defer s.timer.EndTiming(ctx)
	}

	if format == "" {
		if uw, ok := w.(fyne.URIWriteCloser); ok {
			format = FormatForExtension(uw.URI().Extension())
		} else {
			format = "png"
		}
	}

	b := img.Bounds()
	s.logger.Debug("Export", "saving image", map[string]interface{}{
		"format": format,
		"width":  b.Dx(),
		"height": b.Dy(),
	})

	var err error
	switch format {
	case "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		err = bmp.Encode(w, img)
	case "png":
		err = png.Encode(w, img)
	default:
		s.logger.Warning("Export", "unknown format, using PNG", map[string]interface{}{
			"requested_format": format,
		})
		err = png.Encode(w, img)
	}
	if err != nil {
		s.logger.Error("Export", err, map[string]interface{}{"format": format})
		return fmt.Errorf("encode %s: %w", format, err)
	}

	s.logger.Info("Export", "image saved", map[string]interface{}{"format": format})
	return nil
}
