package overlay

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// Snapshotter is implemented by displays that can copy out the presented
// frame.
type Snapshotter interface {
	Snapshot(dst []uint16) ([]uint16, uint64)
}

// FrameImage decodes a presented block-linear buffer into an image scaled by
// scale with nearest-neighbour sampling, keeping pixels crisp.
func FrameImage(buf []uint16, width, height, scale int) *image.NRGBA {
	src := Detile(buf, width, height)
	if scale <= 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Screenshot queues a labeled screenshot of the next presented frame. The PNG
// is written to ScreenshotDir with a timestamped filename. Displays that do
// not implement Snapshotter drop the request.
func (l *FrameLoop) Screenshot(label string) {
	l.screenshotQueue = append(l.screenshotQueue, label)
}

// flushScreenshots writes every queued screenshot from the presented frame.
// Called after Release.
func (l *FrameLoop) flushScreenshots() {
	if len(l.screenshotQueue) == 0 {
		return
	}
	defer func() { l.screenshotQueue = l.screenshotQueue[:0] }()

	snap, ok := l.display.(Snapshotter)
	if !ok {
		Logger().Warn("screenshot: display cannot be read back", "count", len(l.screenshotQueue))
		return
	}
	dir := l.ScreenshotDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		Logger().Warn("screenshot: mkdir failed", "dir", dir, "err", err)
		return
	}

	l.snapBuf, _ = snap.Snapshot(l.snapBuf)
	img := FrameImage(l.snapBuf, l.cfg.Width, l.cfg.Height, l.ScreenshotScale)
	stamp := l.now().Format("20060102_150405")

	for _, label := range l.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("screenshot failed", "err", err)
			continue
		}
		l.screenshots = append(l.screenshots, path)
		Logger().Debug("screenshot written", "path", path)
	}
}

// Screenshots returns the paths of all screenshots written so far.
func (l *FrameLoop) Screenshots() []string { return l.screenshots }

// WritePNG writes the presented frame of d to path.
func WritePNG(path string, d Snapshotter, width, height, scale int) error {
	buf, _ := d.Snapshot(nil)
	return writePNG(path, FrameImage(buf, width, height, scale))
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

