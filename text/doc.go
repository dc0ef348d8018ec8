// Package text turns strings into positioned glyph runs.
//
// The pipeline is segmentation (direction and script), HarfBuzz shaping
// via go-text/typesetting, greedy line wrapping with CJK-aware break
// opportunities, and final line positioning. The result is a Layout of
// glyph placements relative to the top-left corner of the text block,
// ready for rasterization.
package text
