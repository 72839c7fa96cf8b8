// Package chart draws small line, bar and scatter charts as SVG.
//
// A chart maps records through accessors and scales onto the pixels of its
// drawing area, draws an axis for the x and the y scale and finally its
// geoms (see package geom).
//
// Dimensions
//
// The size of a chart is derived from the viewport by a Sizing. The
// drawing area is the chart size minus the margins which hold the axes.
// Horizontal scales map to [0, BoundedWidth], vertical scales to the
// inverted range [BoundedHeight, 0] so that larger values are higher.
//
// Scales
//
// Package chart knows about the following scales:
//   - Linear   numeric values, domain is the extent of the data
//   - Time     like Linear for unix seconds, with calendar ticks
//   - Band     one equally wide slot per category
//
// Continuous domains may be extended to round values with Nice and to
// contain a baseline with Include. Values which are undefined never reach
// a scale: mapping them fails with a *MissingValueError and the geom skips
// the record.
//
// Colors are mapped by a ColorScale which interpolates between two
// colors. The ColorTable PaintColors provides the colors of the paintings.
//
// Lifecycle
//
// A Chart starts in StateLoading. Load (or Mount for a background load)
// fetches the records and builds all scales; the chart becomes ready or,
// on any failure, enters StateError. Loading and failed charts render a
// placeholder with a message instead of the chart.
package chart
