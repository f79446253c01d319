// Package ui implements a three-region split layout for Bubble Tea.
//
// The surface is divided by two draggable dividers: a horizontal one
// separating the top band from the bottom region, and a vertical one
// splitting the top band into left and right sub-regions. Core abstractions:
//   - SplitLayoutView: the component; owns the two split ratios and is the
//     only writer of them (mouse drags and keyboard steps)
//   - Regions/ComputeRegions: pure geometry from ratios to cell rectangles
//   - FocusManager: rotates keyboard focus across the divider handles
//   - ContentFunc: caller-supplied producer for each region's content
//
// Ratios persist across sessions through a layoutstore.Store; all storage
// failures degrade to the configured initial ratios.
package ui
