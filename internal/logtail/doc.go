// Package logtail reads the tail of the glide log and splits records for
// display in the event panel.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays bounded by the tail size rather than the file size. A
// non-positive maxLines returns the whole file. A missing file is not an
// error; it reads as empty, since the log is created lazily on first write.
//
//	lines, err := logtail.Read(path, 200)
//
// # Parsing
//
// Parse understands the text records charmbracelet/log writes:
//
//	12:30:01.250 DEBU glide: event slider=main name=move
//
// The line is decoded with go-logfmt. Bare words before the first key=value
// pair form the header (timestamp, level, prefix and message); the pairs
// become Fields with quoting removed. Lines the decoder rejects come back
// whole in Message, so the panel can still show them.
package logtail
