// Package align matches lyric lines against recognized-word timing and
// produces a monotonic, non-overlapping cue timeline.
//
// The pipeline inside one alignment run is:
//
//  1. Word repair: degenerate recognizer output (repetitive, sparse, or
//     implausibly fast word timing) is detected and replaced with synthetic
//     words spread evenly across segment-level timing.
//  2. Windowed search: each line is matched to the best-scoring contiguous
//     span of recognized words, searching forward only from a cursor that
//     never rewinds. Lines without an acceptable window fall back to a
//     heuristic placement.
//  3. Reconciliation: a final pass enforces minimum duration, minimum gap,
//     and the audio-duration bound, recording warnings where the cue
//     sequence could not be repaired cleanly.
//
// When no recognized words exist at all, timing is estimated purely from
// text length, block by block. That mode is a first-class input, not an
// error path.
//
// The core is synchronous and free of side effects; the only state carried
// through a run is the word-stream cursor, threaded explicitly through each
// per-line step.
package align
