// Package config loads the carousel deck that glide shows.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/glide/carousel.toml (default)
//  3. If the config file doesn't exist, use the built-in deck
//  4. Tables and keys missing from the file keep the built-in values
//
// # TOML Format
//
//	[options]
//	type = "loop"          # slide | loop | fade
//	per_page = 3
//	gap = 2                # cells, or "10%", "1em", "5vw"
//	focus = "center"       # or a slot number
//	drag = "free"          # true | false | "free"
//	autoplay = "pause"     # true | false | "pause"
//	trim_space = "move"    # true | false | "move"
//	speed = 400            # milliseconds, or "400ms"
//	padding = { left = 2, right = 4 }
//	media_query = "max"
//
//	[breakpoints.80]       # applies up to 80 columns with media_query = "max"
//	per_page = 1
//
//	[reduced_motion]
//	speed = 0
//
//	[thumbnails]
//	enabled = true
//	fixed_width = 12
//
//	[[slides]]
//	title = "Hello"
//	body = "World"
//	color = "#ff79c6"
//	width = 36
//	height = 9
//
// Option keys are the carousel option names in snake_case. Values that take
// several shapes (drag, autoplay, trim_space, focus, padding,
// drag_min_threshold and lengths) are converted into typed carousel
// overrides. scroll_easing sets the curve of free scrolling.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML syntax errors
// ("parse config: ..."), unknown option keys (ErrUnknownOption) and values of
// the wrong shape (ErrInvalidValue). Errors name the table and key.
package config
