// Package texture copies or resamples the bitmap that belongs to each atlas
// page so that it matches the page's compensated size.
//
// A page whose scale is exactly 1 has its PNG copied byte for byte. Any other
// scale produces a bitmap of floor(width/scale) by floor(height/scale)
// pixels, resampled with a Catmull-Rom filter from golang.org/x/image/draw:
//
//	p := texture.Processor{SourceDir: "in", OutputDir: "out"}
//	for _, res := range p.Process(doc) {
//	    if res.Err != nil {
//	        log.Println(res.Err)
//	    }
//	}
//
// A missing or undecodable bitmap is reported in that page's [Result] and the
// remaining pages are still processed.
package texture
