// Package minify condenses a full intersection grid of detected dot readings
// into the minified symbol grid consumed by the pattern matcher.
//
// Detection yields one reading per lattice intersection, but the encoded
// symbols repeat on a 3x3 phase: each logical cell is represented by a 3x3
// block of physical intersections. Minification crops the detected region to
// phase-aligned bounds, collapses every 3x3 block by majority vote over its
// arrow readings, and trims the result down to the densest all-arrow
// rectangle so sparse page borders do not dilute matching.
package minify
