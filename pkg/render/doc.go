// Package render groups the output emitters.
//
// The [board] subpackage renders the animated calendar SVG and its JSON
// layout companion. The [banner] subpackage renders the terminal-style
// typing banner. Both are configured through a [theme.Theme], which
// collects colors, cell geometry, and animation timing in one place.
package render
