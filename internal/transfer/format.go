package transfer

import (
	"fmt"
	"strings"
)

// Format is a deck file format
type Format int

const (
	CSV Format = iota + 1
	JSON
)

// Formats lists the supported formats in menu order
func Formats() []Format {
	return []Format{CSV, JSON}
}

// String returns "CSV" or "JSON"
func (f Format) String() string {
	switch f {
	case CSV:
		return "CSV"
	case JSON:
		return "JSON"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file extension including the dot
func (f Format) Ext() string {
	return "." + strings.ToLower(f.String())
}
