// Package verify runs the batch pattern check over a directory of extracted
// candidate grids and renders the per-file and summary report.
//
// Candidate files follow the extraction tool's naming convention of an
// identifier embedded between underscores (for example page_07_minified.json
// has identifier "07"). Discovery sorts paths lexicographically so repeated
// runs produce byte-identical reports. A candidate that fails to load or
// parse is reported and counted as a failure for that file only; the rest of
// the batch still runs.
package verify
