// Package imaging loads scanned page images and caches the decoded pixels.
//
// Dot pages are typically inspected several times in a session (detect dots,
// re-detect with a different threshold, render an overlay), so the decoded
// image.Image is cached by file path and reused until evicted. The cache is
// safe for concurrent use.
//
// EncodePNGBase64 renders an image to the base64 PNG form used by tool
// responses that carry images inline.
package imaging
