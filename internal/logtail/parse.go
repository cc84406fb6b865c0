package logtail

import (
	"strings"
	"time"

	"github.com/go-logfmt/logfmt"
)

// Field is one key=value pair of a record.
type Field struct {
	Key   string
	Value string
}

// Entry is a log record split into the parts the text formatter of
// charmbracelet/log writes: timestamp, level, prefix, message, fields.
type Entry struct {
	Time    string
	Level   string
	Prefix  string
	Message string
	Fields  []Field
	// Raw is the unparsed line.
	Raw string
}

// Field returns the value of key and whether the record carries it.
func (e Entry) Field(key string) (string, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

var levels = map[string]bool{
	"DEBU": true,
	"INFO": true,
	"WARN": true,
	"ERRO": true,
	"FATA": true,
}

// TimeLayout is the timestamp layout Parse recognizes.
const TimeLayout = "15:04:05.000"

// Parse splits a record line. Lines that are not logfmt keep everything in
// Message.
func Parse(line string) Entry {
	entry := Entry{Raw: line}

	dec := logfmt.NewDecoder(strings.NewReader(line))
	var header []string
	for dec.ScanRecord() {
		for dec.ScanKeyval() {
			key, value := string(dec.Key()), dec.Value()
			if value == nil && len(entry.Fields) == 0 {
				header = append(header, key)
				continue
			}
			entry.Fields = append(entry.Fields, Field{Key: key, Value: string(value)})
		}
	}
	if dec.Err() != nil {
		return Entry{Raw: line, Message: line}
	}

	if len(header) > 0 {
		if _, err := time.Parse(TimeLayout, header[0]); err == nil {
			entry.Time, header = header[0], header[1:]
		}
	}
	if len(header) > 0 && levels[header[0]] {
		entry.Level, header = header[0], header[1:]
	}
	if len(header) > 0 && strings.HasSuffix(header[0], ":") {
		entry.Prefix, header = strings.TrimSuffix(header[0], ":"), header[1:]
	}
	entry.Message = strings.Join(header, " ")
	return entry
}

// ParseLines parses every line, dropping blank ones.
func ParseLines(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries
}
