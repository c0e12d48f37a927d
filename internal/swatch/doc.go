// Package swatch renders a row of color cells as a PNG image.
//
// Each color gets one square cell labelled with its hex code. The label is
// drawn in black on light cells and in white on dark ones. Results are
// returned base64-encoded so they can travel inside a JSON tool response,
// or written to disk with Save.
package swatch
