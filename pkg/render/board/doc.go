// Package board renders the contribution grid as an animated SVG.
//
// The document is assembled as a plain string: rounded cell rectangles
// colored by intensity level, edible dots on every active cell, and a
// chomper that travels the planned path eating them. All animation is
// native SMIL (<animate>, <animateMotion>, <animateTransform>), so the
// output plays in any SMIL-capable viewer with no scripting.
//
// Timing is driven entirely by the path schedule: each dot starts its
// fade at its cell's sequence offset, and the chomper's motion uses
// keyPoints/keyTimes so it arrives at cell i exactly at i × step even
// though row turns cover different distances.
package board
