package atlasdown_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tsawler/atlasdown"
	"github.com/tsawler/atlasdown/atlas"
	"github.com/tsawler/atlasdown/format"
	"github.com/tsawler/atlasdown/skeleton"
)

// These examples verify the README code samples compile correctly.
// They are not meant to be run as actual tests since they require files.

func Example_convertAtlas() {
	result, warnings, err := atlasdown.Open("hero.atlas").
		OutputDir("out").
		Convert()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("wrote", result.AtlasPath)

	for _, w := range warnings {
		fmt.Println("Warning:", w.Message)
	}
}

func Example_convertWithOptions() {
	result, warnings, err := atlasdown.Open("hero.atlas").
		OutputDir("out").
		SkipTextures().            // Leave page bitmaps alone
		KeepExtensions().          // Write unknown region keys back out
		Report("out/report.html"). // HTML summary of the run
		Convert()
	_ = result
	_ = warnings
	_ = err
}

func Example_convertSkeleton() {
	conv := skeleton.New("SpineSkeletonDataConverter")
	conv.RemoveCurve = true

	atlasPath, ok := atlasdown.FindAtlas("hero.skel")
	if !ok {
		log.Fatal("no atlas next to hero.skel")
	}

	result, warnings, err := atlasdown.Open(atlasPath).
		OutputDir("out").
		Skeleton("hero.skel", conv).
		SkeletonFormat(format.RuleJSON).
		Convert()
	if err != nil {
		log.Fatal(err)
	}
	if result.Failed {
		log.Println(atlasdown.FormatWarnings(warnings))
	}
}

func Example_errorHandling() {
	_, _, err := atlasdown.Open("missing.atlas").OutputDir("out").Convert()
	if errors.Is(err, atlasdown.ErrInputNotFound) {
		fmt.Println("no such atlas")
	}

	var cerr *atlasdown.ConvertError
	if errors.As(err, &cerr) {
		fmt.Println("failed during", cerr.Op)
	}
}

func Example_timeout() {
	conv := skeleton.New("SpineSkeletonDataConverter")
	conv.Timeout = 30 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, _, err := atlasdown.Open("hero.atlas").
		OutputDir("out").
		Skeleton("hero.json", conv).
		ConvertContext(ctx)
	_ = err
}

func Example_lowLevel() {
	f, err := os.Open("hero.atlas")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	doc, diags, err := atlas.Parse(f)
	if err != nil {
		log.Fatal(err)
	}
	for _, d := range diags {
		log.Println(d)
	}

	fmt.Print(atlas.Format(doc))
}
