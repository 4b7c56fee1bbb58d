// Package render turns trajectories into images.
//
// A static run is drawn as one line plot with [SavePlot]. An animation is a
// pull-based sequence: [Frames] walks a compressed trace, [DrawFrame]
// renders one frame, and [WriteGIF] encodes them all. The wall clock shown
// on each frame lives in an explicit [Session] instead of hidden state.
//
// Drawing uses gonum.org/v1/plot with the vgimg raster backend.
package render
