// Package text measures and rasterizes chart label text.
//
// Two font stacks are used side by side:
//
//   - [Measurer] shapes strings with go-text/typesetting (HarfBuzz) and
//     returns their advance width. Scene builders use it to check that
//     category labels fit their slot; the raster backend uses it to
//     resolve middle and end text anchors.
//   - [Faces] hands out golang.org/x/image font.Face values for drawing
//     glyphs into an image.
//
// Both are backed by the Go fonts (regular and bold), so no system fonts
// are needed and output is identical on every machine.
package text
