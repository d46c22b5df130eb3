// Package model provides the in-memory representation of a texture atlas.
//
// An atlas is a [Document] made of [Page] values, one per texture sheet, and
// each page owns an ordered list of [Region] values, one per packed sprite or
// attachment piece. The parser in package atlas builds these values once and
// the writer and the texture rescaler only read them afterwards.
//
// # Pages
//
// A page carries the sheet dimensions as packed by the authoring tool along
// with its pixel format, filters, wrap mode and the downscale factor recorded
// in the newer atlas dialect:
//
//	page := model.NewPage("hero.png")
//	page.Width, page.Height = 1024, 512
//	page.Scale = 0.5
//	doc.AddPage(page)
//
// # Regions
//
// Region order is significant to downstream compositing and is preserved
// exactly as read. Keys the grammar does not recognize are kept on the region
// as an ordered list of [Extension] entries.
package model
