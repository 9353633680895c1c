package entity

import (
	"sort"
	"strings"
)

// Source identifies the platform whose export a row came from
type Source string

// SourceType identifies the file format of an export
type SourceType string

// Direction carries the sign of a transaction; amounts are always magnitudes
type Direction string

// Supported sources
const (
	SourceAlipay Source = "alipay"
	SourceWechat Source = "wechat"
	SourceICBC   Source = "icbc"
	SourceCMB    Source = "cmb"
)

// Supported file formats
const (
	SourceTypeCSV  SourceType = "csv"
	SourceTypeXLSX SourceType = "xlsx"
	SourceTypePDF  SourceType = "pdf"
)

// Directions
const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

var sourceFormats = map[Source]SourceType{
	SourceAlipay: SourceTypeCSV,
	SourceWechat: SourceTypeXLSX,
	SourceICBC:   SourceTypeXLSX,
	SourceCMB:    SourceTypePDF,
}

// IsValidSource validates if the source is a supported platform
func IsValidSource(source string) bool {
	_, ok := sourceFormats[Source(source)]
	return ok
}

// IsValidSourceType validates if the format is supported
func IsValidSourceType(sourceType string) bool {
	switch SourceType(sourceType) {
	case SourceTypeCSV, SourceTypeXLSX, SourceTypePDF:
		return true
	}
	return false
}

// IsValidDirection validates if the direction is in or out
func IsValidDirection(direction string) bool {
	return direction == string(DirectionIn) || direction == string(DirectionOut)
}

// FormatOf returns the export format a source ships
func FormatOf(source Source) (SourceType, bool) {
	f, ok := sourceFormats[source]
	return f, ok
}

// Sources returns every supported source in a stable order
func Sources() []Source {
	out := make([]Source, 0, len(sourceFormats))
	for s := range sourceFormats {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NormalizeSource lowercases and trims a client supplied source hint
func NormalizeSource(raw string) Source {
	return Source(strings.ToLower(strings.TrimSpace(raw)))
}

// Opposite returns the other direction
func (d Direction) Opposite() Direction {
	if d == DirectionIn {
		return DirectionOut
	}
	return DirectionIn
}
