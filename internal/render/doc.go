// Package render draws the images around the detection pipeline: synthetic
// sample pages for fixtures and demos, detection overlays for visual
// verification, and plot-style views of detected dot lattices.
//
// All functions return standard image types; encoding and resizing go
// through github.com/disintegration/imaging so output behaves the same as
// the rest of the toolchain.
package render
