// Package sampler reads colors out of image files for the color tools.
//
// Images are decoded once and kept in an ImageCache keyed by path. Sampled
// pixels are returned as colorconv values so they can be fed straight into
// the conversion and hue-wheel functions.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner.
// For regions, (X1,Y1) is inclusive and (X2,Y2) is exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The sampling functions only read
// from the image they are given.
package sampler
