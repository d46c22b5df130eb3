// Command atlasdown converts a Spine 4.x atlas, its page bitmaps and
// optionally its skeleton data into the 3.x layout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/tsawler/atlasdown"
	"github.com/tsawler/atlasdown/format"
	"github.com/tsawler/atlasdown/skeleton"
	"github.com/tsawler/atlasdown/texture"
)

func main() {
	converterPath := flag.String("converter", "SpineSkeletonDataConverter", "skeleton data converter executable")
	version := flag.String("version", skeleton.DefaultVersion, "target skeleton version")
	removeCurve := flag.Bool("remove-curve", false, "pass --remove-curve to the skeleton converter")
	outputRule := flag.String("output-format", format.RuleSame, "skeleton output extension: same, json, skel or other")
	noTextures := flag.Bool("no-textures", false, "do not rescale page bitmaps")
	keepExtensions := flag.Bool("keep-extensions", false, "write unrecognized region entries")
	reportPath := flag.String("report", "", "write an HTML report to this file")
	timeout := flag.Duration("timeout", skeleton.DefaultTimeout, "skeleton converter timeout")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Printf("Usage: %s [options] input.atlas|input.skel|input.json output-dir\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	input := flag.Arg(0)
	outputDir := flag.Arg(1)
	m := newMarkers(term.IsTerminal(int(os.Stdout.Fd())))

	conv := skeleton.New(*converterPath)
	conv.Version = *version
	conv.RemoveCurve = *removeCurve
	conv.Timeout = *timeout

	kind, err := atlasdown.DetectInput(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", m.fail, err)
		os.Exit(1)
	}

	atlasPath := input
	skeletonPath := ""
	switch {
	case kind.IsSkeleton():
		skeletonPath = input
		found, ok := atlasdown.FindAtlas(input)
		if !ok {
			// no atlas next to the skeleton, convert the data file alone
			os.Exit(convertSkeletonOnly(m, conv, input, outputDir, *outputRule))
		}
		atlasPath = found
	case kind != format.Atlas:
		fmt.Fprintf(os.Stderr, "%s %s: unsupported input (%s)\n", m.fail, input, kind)
		os.Exit(1)
	}

	c := atlasdown.Open(atlasPath).OutputDir(outputDir)
	if *noTextures {
		c = c.SkipTextures()
	}
	if *keepExtensions {
		c = c.KeepExtensions()
	}
	if skeletonPath != "" {
		c = c.Skeleton(skeletonPath, conv).SkeletonFormat(*outputRule)
	}
	if *reportPath != "" {
		c = c.Report(*reportPath)
	}

	result, warnings, err := c.Convert()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", m.fail, err)
		os.Exit(1)
	}

	scaled := "unscaled"
	if result.Document.NeedsScaling() {
		scaled = "scale compensated"
	}
	fmt.Printf("%s %s -> %s (%d pages, %d regions, %s)\n", m.ok, atlasPath, result.AtlasPath,
		result.Document.PageCount(), result.Document.RegionCount(), scaled)
	for _, tex := range result.Textures {
		printTexture(m, tex)
	}
	if result.SkeletonPath != "" {
		fmt.Printf("%s %s -> %s\n", m.ok, skeletonPath, result.SkeletonPath)
	}
	if result.ReportPath != "" {
		fmt.Printf("%s report written to %s\n", m.ok, result.ReportPath)
	}

	for _, w := range warnings {
		if w.Kind == atlasdown.MalformedLine || w.Kind == atlasdown.ExternalProcessFailure {
			fmt.Fprintf(os.Stderr, "%s %s\n", m.warn, w)
		}
	}

	if result.Failed {
		os.Exit(1)
	}
}

// markers are the status prefixes printed before each line.
type markers struct {
	ok, fail, warn string
}

func newMarkers(tty bool) markers {
	if tty {
		return markers{ok: "✓", fail: "✗", warn: "!"}
	}
	return markers{ok: "[OK]", fail: "[ERROR]", warn: "[WARN]"}
}

func printTexture(m markers, tex texture.Result) {
	switch {
	case tex.Err != nil:
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", m.fail, tex.Page, tex.Err)
	case tex.Action == texture.Scaled:
		fmt.Printf("%s %s: %dx%d -> %dx%d\n", m.ok, filepath.Base(tex.Dest),
			tex.FromWidth, tex.FromHeight, tex.ToWidth, tex.ToHeight)
	default:
		fmt.Printf("%s %s: %s\n", m.ok, filepath.Base(tex.Dest), tex.Action)
	}
}

func convertSkeletonOnly(m markers, conv *skeleton.Converter, input, outputDir, rule string) int {
	dest, err := atlasdown.ConvertSkeleton(context.Background(), input, outputDir, rule, conv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", m.fail, err)
		return 1
	}
	fmt.Printf("%s %s -> %s\n", m.ok, input, dest)
	return 0
}
