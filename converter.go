package atlasdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/atlasdown/atlas"
	"github.com/tsawler/atlasdown/format"
	"github.com/tsawler/atlasdown/model"
	"github.com/tsawler/atlasdown/report"
	"github.com/tsawler/atlasdown/skeleton"
	"github.com/tsawler/atlasdown/texture"
)

// Converter provides a fluent interface for downgrading an atlas and its
// companion files. Each configuration method returns a new Converter
// instance, making it safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source
	atlasPath string

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// Result describes what a conversion produced.
type Result struct {
	AtlasPath    string           // written atlas file
	Document     *model.Document  // parsed atlas
	Textures     []texture.Result // one per page, empty when textures are skipped
	SkeletonPath string           // converted skeleton file, empty if none
	ReportPath   string           // written report, empty if none
	Failed       bool             // true if the skeleton converter failed
}

// clone creates a copy of the Converter with a deep copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		atlasPath: c.atlasPath,
		options:   c.options.clone(),
		err:       c.err,
	}
}

// OutputDir sets the directory receiving the converted files. It is created
// if missing and must not be the directory holding the input atlas.
func (c *Converter) OutputDir(dir string) *Converter {
	newConv := c.clone()
	newConv.options.outputDir = dir
	return newConv
}

// SkipTextures disables rescaling of the page bitmaps.
func (c *Converter) SkipTextures() *Converter {
	newConv := c.clone()
	newConv.options.skipTextures = true
	return newConv
}

// KeepExtensions writes unrecognized region entries back out. By default they
// are dropped, since 3.x readers expect a fixed set of region keys.
func (c *Converter) KeepExtensions() *Converter {
	newConv := c.clone()
	newConv.options.keepExtensions = true
	return newConv
}

// Skeleton converts the skeleton data file at path with conv as part of the
// run.
func (c *Converter) Skeleton(path string, conv *skeleton.Converter) *Converter {
	newConv := c.clone()
	if conv == nil {
		newConv.err = fmt.Errorf("skeleton %s: no converter given", path)
		return newConv
	}
	copied := *conv
	newConv.options.skeletonPath = path
	newConv.options.converter = &copied
	return newConv
}

// SkeletonFormat selects the extension of the converted skeleton file, one
// of format.RuleSame, RuleJSON, RuleSkel or RuleOther.
func (c *Converter) SkeletonFormat(rule string) *Converter {
	newConv := c.clone()
	newConv.options.skeletonRule = rule
	return newConv
}

// Report writes an HTML summary of the run to path.
func (c *Converter) Report(path string) *Converter {
	newConv := c.clone()
	newConv.options.reportPath = path
	return newConv
}

// Document parses the input atlas without writing anything.
func (c *Converter) Document() (*model.Document, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	return c.parse()
}

// PageCount returns the number of pages in the input atlas.
func (c *Converter) PageCount() (int, error) {
	doc, _, err := c.Document()
	if err != nil {
		return 0, err
	}
	return doc.PageCount(), nil
}

// AtlasText returns the converted atlas text without writing any files.
func (c *Converter) AtlasText() (string, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return "", warnings, err
	}
	return atlas.Format(doc, c.writeOptions()...), warnings, nil
}

// Convert runs the conversion with a background context.
func (c *Converter) Convert() (*Result, []Warning, error) {
	return c.ConvertContext(context.Background())
}

// ConvertContext writes the converted atlas, rescales the page bitmaps and
// runs the skeleton converter when one is configured. Problems with single
// pages or the skeleton converter are returned as warnings; the error is
// reserved for conditions that stop the run.
func (c *Converter) ConvertContext(ctx context.Context) (*Result, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	doc, warnings, err := c.parse()
	if err != nil {
		return nil, warnings, err
	}

	outDir := c.options.outputDir
	if outDir == "" {
		return nil, warnings, newConvertError("mkdir", outDir, ErrOutputDir)
	}

	atlasOut := filepath.Join(outDir, filepath.Base(c.atlasPath))
	if samePath(atlasOut, c.atlasPath) {
		return nil, warnings, newConvertError("mkdir", outDir,
			fmt.Errorf("%w: output would overwrite %s", ErrOutputDir, c.atlasPath))
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, warnings, newConvertError("mkdir", outDir, fmt.Errorf("%w: %w", ErrOutputDir, err))
	}

	if err := c.writeAtlas(atlasOut, doc); err != nil {
		return nil, warnings, err
	}

	result := &Result{
		AtlasPath: atlasOut,
		Document:  doc,
	}

	if !c.options.skipTextures {
		proc := texture.Processor{
			SourceDir: filepath.Dir(c.atlasPath),
			OutputDir: outDir,
		}
		result.Textures = proc.Process(doc)
		warnings = append(warnings, textureWarnings(result.Textures)...)
	}

	if c.options.skeletonPath != "" {
		dest, err := c.convertSkeleton(ctx, outDir)
		if err != nil {
			result.Failed = true
			warnings = append(warnings, Warning{
				Kind:    ExternalProcessFailure,
				Message: err.Error(),
			})
		} else {
			result.SkeletonPath = dest
		}
	}

	if c.options.reportPath != "" {
		if err := c.writeReport(result, warnings); err != nil {
			return result, warnings, err
		}
		result.ReportPath = c.options.reportPath
	}

	return result, warnings, nil
}

// parse reads and parses the input atlas.
func (c *Converter) parse() (*model.Document, []Warning, error) {
	f, err := os.Open(c.atlasPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, newConvertError("open", c.atlasPath, ErrInputNotFound)
		}
		return nil, nil, newConvertError("open", c.atlasPath, err)
	}
	defer f.Close()

	doc, diags, err := atlas.Parse(f)
	if err != nil {
		return nil, nil, newConvertError("parse", c.atlasPath, err)
	}

	var warnings []Warning
	for _, d := range diags {
		warnings = append(warnings, Warning{
			Kind:    MalformedLine,
			Line:    d.Line,
			Message: fmt.Sprintf("%s (%q)", d.Reason, d.Text),
		})
	}
	return doc, warnings, nil
}

func (c *Converter) writeOptions() []atlas.WriteOption {
	if c.options.keepExtensions {
		return []atlas.WriteOption{atlas.WithExtensions()}
	}
	return nil
}

func (c *Converter) writeAtlas(path string, doc *model.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return newConvertError("write", path, fmt.Errorf("%w: %w", ErrWrite, err))
	}
	if err := atlas.Write(f, doc, c.writeOptions()...); err != nil {
		f.Close()
		return newConvertError("write", path, fmt.Errorf("%w: %w", ErrWrite, err))
	}
	if err := f.Close(); err != nil {
		return newConvertError("write", path, fmt.Errorf("%w: %w", ErrWrite, err))
	}
	return nil
}

// convertSkeleton runs the external converter and returns the written path.
func (c *Converter) convertSkeleton(ctx context.Context, outDir string) (string, error) {
	return ConvertSkeleton(ctx, c.options.skeletonPath, outDir, c.options.skeletonRule, c.options.converter)
}

// ConvertSkeleton converts a skeleton data file on its own, for when no atlas
// accompanies it. The output goes to outDir with the extension chosen by
// rule (see format.SkeletonOutputSuffix) and must not replace src. It
// returns the written path.
func ConvertSkeleton(ctx context.Context, src, outDir, rule string, conv *skeleton.Converter) (string, error) {
	if conv == nil {
		return "", fmt.Errorf("skeleton %s: no converter given", src)
	}
	info, err := os.Stat(src)
	if err != nil || info.IsDir() {
		return "", newConvertError("open", src, ErrInputNotFound)
	}
	if outDir == "" {
		return "", newConvertError("mkdir", outDir, ErrOutputDir)
	}

	ext := filepath.Ext(src)
	suffix, err := format.SkeletonOutputSuffix(ext, rule)
	if err != nil {
		return "", fmt.Errorf("skeleton %s: %w", src, err)
	}

	dest := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(src), ext)+suffix)
	if samePath(dest, src) {
		return "", newConvertError("mkdir", outDir,
			fmt.Errorf("%w: output would overwrite %s", ErrOutputDir, src))
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", newConvertError("mkdir", outDir, fmt.Errorf("%w: %w", ErrOutputDir, err))
	}

	if err := conv.Convert(ctx, src, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func (c *Converter) writeReport(result *Result, warnings []Warning) error {
	path := c.options.reportPath

	textures := make(map[string]string, len(result.Textures))
	for _, t := range result.Textures {
		textures[t.Page] = t.Action.String()
	}

	summary := report.Summary{
		Input:  c.atlasPath,
		Output: result.AtlasPath,
		Failed: result.Failed,
	}
	for _, page := range result.Document.Pages {
		tex, ok := textures[page.Name]
		if !ok {
			tex = "not processed"
		}
		summary.Pages = append(summary.Pages, report.Page{
			Name:          page.Name,
			Scale:         page.Scale,
			Width:         page.Width,
			Height:        page.Height,
			WrittenWidth:  atlas.Compensate(page.Width, page.Scale),
			WrittenHeight: atlas.Compensate(page.Height, page.Scale),
			Regions:       len(page.Regions),
			Texture:       tex,
		})
	}
	for _, w := range warnings {
		summary.Warnings = append(summary.Warnings, w.String())
	}

	f, err := os.Create(path)
	if err != nil {
		return newConvertError("report", path, fmt.Errorf("%w: %w", ErrWrite, err))
	}
	if err := report.Write(f, summary); err != nil {
		f.Close()
		return newConvertError("report", path, fmt.Errorf("%w: %w", ErrWrite, err))
	}
	if err := f.Close(); err != nil {
		return newConvertError("report", path, fmt.Errorf("%w: %w", ErrWrite, err))
	}
	return nil
}

func textureWarnings(results []texture.Result) []Warning {
	var warnings []Warning
	for _, res := range results {
		if res.OK() {
			continue
		}
		kind := ImageResampleFailure
		if errors.Is(res.Err, texture.ErrMissingImage) {
			kind = MissingCompanionImage
		}
		warnings = append(warnings, Warning{
			Kind:    kind,
			Page:    res.Page,
			Message: res.Err.Error(),
		})
	}
	return warnings
}

// samePath reports whether a and b name the same file location.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
