// Package ui provides the Bubble Tea terminal host for the carousel engine.
//
// # Overview
//
// The Model owns a main slider and an optional thumbnail strip synced to
// it. It is the engine's host: it hands the sliders a Viewport sized from
// the terminal, feeds them key and mouse input, drives time by sending
// frame messages while a slider reports Animating, and paints cards from
// Move.Position and Layout.SlideOffset.
//
// # Screen
//
//	header     slide, page, breakpoint, state, autoplay
//	track      slide cards, cut at the track edges
//	progress   autoplay rate towards the next tick
//	thumbs     navigation strip (optional)
//	journal    tail of the log file (toggle with e)
//	footer     short help
//
// # Input
//
// Arrows page, digits pick a slide, and shift-arrows jump without
// animation. A left press starts a drag, motion moves the track, and
// release flicks or snaps. A click on a thumbnail moves the main slider
// there. Hovering the track or focusing a slider with tab holds autoplay.
//
// # Reloads
//
// ReloadMsg values arrive on Options.Reloads. A good config rebuilds both
// sliders at the current index; a bad one leaves the deck alone and shows
// the error in the header.
//
// # Preferences
//
// Theme, active index and the reduced-motion toggle are written to the
// prefs file on theme change and on exit.
package ui
