// Package tilebatch provides the value types shared by the tile batch
// renderer: points, rectangles and viewport windows, as well as the package
// logger.
//
// The renderer itself lives in package batch. It accumulates flat-shaded
// triangles for rectangles and beveled tiles, normalizes them through the
// current Window, and submits the whole frame as a single draw call through a
// gpu.Context.
//
package tilebatch
