package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding for page bitmaps
	"image/png"
	"io"
	"math"
	"os"
	"path"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/atlasdown/format"
	"github.com/tsawler/atlasdown/model"
)

var (
	// ErrMissingImage is returned when a page's bitmap does not exist.
	ErrMissingImage = errors.New("texture: page bitmap not found")
	// ErrResample is returned when a bitmap cannot be decoded, scaled or
	// encoded.
	ErrResample = errors.New("texture: resample failed")
)

// Action describes what was done with a page bitmap.
type Action int

const (
	// Copied means the bitmap was copied unchanged.
	Copied Action = iota
	// Scaled means the bitmap was resampled or re-encoded as PNG.
	Scaled
	// Skipped means the source bitmap was missing.
	Skipped
	// Failed means reading, resampling or writing failed.
	Failed
)

// String returns the name of the action.
func (a Action) String() string {
	switch a {
	case Copied:
		return "copied"
	case Scaled:
		return "scaled"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome for one page.
type Result struct {
	Page   string // Page name as written in the atlas
	Source string // Source bitmap path
	Dest   string // Output bitmap path
	Action Action
	Scale  float64

	FromWidth, FromHeight int // Source pixel size, 0 when not decoded
	ToWidth, ToHeight     int // Output pixel size, 0 when not written

	Err error
}

// OK returns true if the bitmap was written.
func (r Result) OK() bool {
	return r.Err == nil
}

// BaseName derives the bitmap base name from a page name by dropping any
// directory and a trailing image extension.
func BaseName(pageName string) string {
	base := fileName(pageName)
	if format.Detect(base).IsImage() {
		base = strings.TrimSuffix(base, path.Ext(base))
	}
	return base
}

// fileName drops any directory part, accepting either slash style since
// atlases are often exported on Windows.
func fileName(pageName string) string {
	return path.Base(strings.ReplaceAll(pageName, "\\", "/"))
}

// sourceName is the file name looked up in the source directory. Page names
// without an image extension refer to a PNG.
func sourceName(pageName string) string {
	base := fileName(pageName)
	if format.Detect(base).IsImage() {
		return base
	}
	return base + format.PNG.Extension()
}

// TargetSize returns the pixel size of a bitmap after dividing out scale.
// Each dimension is truncated and never drops below one pixel.
func TargetSize(width, height int, scale float64) (int, int) {
	if scale == 1.0 || !(scale > 0) {
		return width, height
	}
	w := int(math.Floor(float64(width) / scale))
	h := int(math.Floor(float64(height) / scale))
	return max(w, 1), max(h, 1)
}

// Resample scales img to width by height pixels with a Catmull-Rom kernel.
func Resample(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// Rescale writes the bitmap at src to dst, compensated for scale. With a
// scale of 1 a PNG source is copied unchanged; other sources are re-encoded
// as PNG.
func Rescale(src, dst string, scale float64) (Result, error) {
	res := Result{Source: src, Dest: dst, Scale: scale}

	data, err := os.ReadFile(src)
	if err != nil {
		res.Action = Failed
		if errors.Is(err, os.ErrNotExist) {
			res.Action = Skipped
			err = fmt.Errorf("%w: %s", ErrMissingImage, src)
		}
		res.Err = err
		return res, err
	}

	if scale == 1.0 && format.DetectFromMagic(data) == format.PNG {
		if err := copyBytes(dst, data); err != nil {
			return fail(res, err)
		}
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err == nil {
			res.FromWidth, res.FromHeight = cfg.Width, cfg.Height
			res.ToWidth, res.ToHeight = cfg.Width, cfg.Height
		}
		res.Action = Copied
		return res, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fail(res, fmt.Errorf("%w: decoding %s: %v", ErrResample, src, err))
	}

	b := img.Bounds()
	res.FromWidth, res.FromHeight = b.Dx(), b.Dy()
	res.ToWidth, res.ToHeight = TargetSize(b.Dx(), b.Dy(), scale)

	var out image.Image = img
	if res.ToWidth != res.FromWidth || res.ToHeight != res.FromHeight {
		out = Resample(img, res.ToWidth, res.ToHeight)
	}

	if err := writePNG(dst, out); err != nil {
		return fail(res, err)
	}
	res.Action = Scaled
	return res, nil
}

func fail(res Result, err error) (Result, error) {
	res.Action = Failed
	res.ToWidth, res.ToHeight = 0, 0
	res.Err = err
	return res, err
}

func copyBytes(dst string, data []byte) error {
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return f.Close()
}

func writePNG(dst string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrResample, dst, err)
	}
	return copyBytes(dst, buf.Bytes())
}

// Processor rescales the bitmaps of every page in a document.
type Processor struct {
	SourceDir string // Directory holding the page bitmaps
	OutputDir string // Directory receiving <base>.png files
}

// Process handles each page in document order and returns one result per
// page. A failure on one page does not stop the others.
func (p Processor) Process(doc *model.Document) []Result {
	results := make([]Result, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		results = append(results, p.ProcessPage(page))
	}
	return results
}

// ProcessPage handles a single page.
func (p Processor) ProcessPage(page *model.Page) Result {
	src := filepath.Join(p.SourceDir, sourceName(page.Name))
	dst := filepath.Join(p.OutputDir, BaseName(page.Name)+format.PNG.Extension())

	res, _ := Rescale(src, dst, page.Scale)
	res.Page = page.Name
	return res
}
