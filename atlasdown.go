// Package atlasdown converts Spine 4.x texture atlases into the 3.x layout.
//
// Basic usage:
//
//	result, warnings, err := atlasdown.Open("hero.atlas").
//	    OutputDir("out").
//	    Convert()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", atlasdown.FormatWarnings(warnings))
//	}
//
// The converter rewrites the atlas text, rescales each page bitmap by its
// page scale and, when configured, runs an external skeleton data converter
// on the companion .json or .skel file.
//
// For lower-level access the atlas, texture and skeleton packages can be
// used directly.
package atlasdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/atlasdown/format"
)

// Open returns a Converter for the atlas at atlasPath. Nothing is read until
// Convert is called.
//
// Example:
//
//	result, warnings, err := atlasdown.Open("hero.atlas").OutputDir("out").Convert()
func Open(atlasPath string) *Converter {
	return &Converter{
		atlasPath: atlasPath,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := atlasdown.Must(atlasdown.Open("hero.atlas").Document())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// FindAtlas returns the atlas that sits next to a skeleton file: the same
// path with the extension replaced by .atlas. It reports false when no such
// file exists.
func FindAtlas(skeletonPath string) (string, bool) {
	ext := filepath.Ext(skeletonPath)
	candidate := strings.TrimSuffix(skeletonPath, ext) + format.Atlas.Extension()
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return "", false
	}
	return candidate, true
}

// DetectInput determines the kind of file at path. The extension is tried
// first; files with an unknown extension are identified by their content.
func DetectInput(path string) (format.Format, error) {
	if f := format.Detect(path); f != format.Unknown {
		return f, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return format.Unknown, newConvertError("open", path, ErrInputNotFound)
		}
		return format.Unknown, newConvertError("open", path, err)
	}
	defer file.Close()

	f, err := format.DetectFromReader(file)
	if err != nil {
		return format.Unknown, newConvertError("open", path, fmt.Errorf("detecting format: %w", err))
	}
	return f, nil
}
