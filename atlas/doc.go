// Package atlas reads Spine 4.x texture atlas descriptors and writes them in
// the Spine 3.x dialect.
//
// # Reading
//
// [Parse] consumes a descriptor and returns a [model.Document] together with
// a list of [Diagnostic] values describing lines that were skipped or only
// partly applied:
//
//	doc, diags, err := atlas.Parse(f)
//	if err != nil {
//	    log.Fatal(err) // I/O failure; content problems never fail a parse
//	}
//	for _, d := range diags {
//	    log.Println(d)
//	}
//
// The grammar is line oriented. A line without a colon is a name line and
// opens either a page or a region; the two are told apart by looking at the
// line that follows (see [Classify]). Other lines are "key: v1, v2, ..."
// entries applied to the current page or region.
//
// # Writing
//
// [Write] emits the 3.x dialect with its fixed field order. Every spatial
// value is divided by the page scale and truncated toward zero (see
// [Compensate]) so that coordinates match the rescaled page bitmaps:
//
//	err := atlas.Write(out, doc)
//
// Region properties the grammar does not recognize are dropped on output
// unless [WithExtensions] is given, because 3.x readers expect a fixed tuple
// sequence per region.
package atlas
