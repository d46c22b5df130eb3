package atlasdown

import (
	"github.com/tsawler/atlasdown/format"
	"github.com/tsawler/atlasdown/skeleton"
)

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Destination
	outputDir  string
	reportPath string

	// Atlas and textures
	skipTextures   bool
	keepExtensions bool

	// Companion skeleton data
	skeletonPath string
	skeletonRule string
	converter    *skeleton.Converter
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		outputDir:      "",
		reportPath:     "",
		skipTextures:   false,
		keepExtensions: false,
		skeletonRule:   format.RuleSame,
	}
}

// clone creates a deep copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	newOpts := o

	// Deep copy the converter settings so chained calls do not share them
	if o.converter != nil {
		conv := *o.converter
		newOpts.converter = &conv
	}

	return newOpts
}
