// Package detect extracts dot readings from scanned or rendered page images.
//
// The pipeline mirrors the classic inspection flow: grayscale conversion,
// inverse binary thresholding (dots are dark ink on light paper), connected
// component extraction over the foreground mask, an area filter to drop
// specks, and a centroid per component from its first image moments. Each
// dot is then classified into a directional Symbol by its marker color,
// using perceptual (CIE Lab) distance against the four anchor marker colors;
// plain black dots and unrecognized colors classify as Empty.
//
// Detection output feeds internal/minify, which assembles the intersection
// grid and collapses it into the minified form the matcher consumes.
package detect
