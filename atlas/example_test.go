package atlas_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/atlasdown/atlas"
)

func ExampleParse() {
	src := `hero.png
size: 256, 128
scale: 0.5
head
  bounds: 10, 20, 64, 32
`
	doc, diags, err := atlas.Parse(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	page := doc.Pages[0]
	fmt.Println(page.Name, page.Scale, len(page.Regions), len(diags))
	// Output: hero.png 0.5 1 0
}

func ExampleWrite() {
	doc, _ := atlas.ParseString(`sheet.png
size: 200, 100
scale: 2
icon
  bounds: 10, 20, 30, 40
`)
	if err := atlas.Write(os.Stdout, doc); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// sheet.png
	// size: 100, 50
	// format: RGBA8888
	// filter: Nearest, Nearest
	// repeat: none
	// icon
	//   rotate: false
	//   xy: 5, 10
	//   size: 15, 20
	//   orig: 15, 20
	//   offset: 0, 0
	//   index: -1
}
