// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, filling the cost matrix one anti-diagonal at a time.
//
// What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance. It is used in speech and audio
//	alignment, gesture matching and time-series clustering.
//
// Wavefront order:
//
//	Cell (i,j) depends on (i-1,j), (i,j-1) and (i-1,j-1). Every cell on
//	the anti-diagonal i+j = s therefore depends only on anti-diagonals
//	s-1 and s-2, so the matrix is filled wave by wave, each wave walked
//	through a ranges.Range over a writable matrix.Dense proxy.
//
// Key features:
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty on insertion and deletion steps
//   - optional alignment path (ReturnPath=true)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M)
package dtw
