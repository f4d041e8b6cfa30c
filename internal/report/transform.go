package report

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Document is the nested, UI-shaped form of a report: period and category
// maps with numeric leaves, matching the on-screen layout.
type Document map[string]interface{}

// Row is the flat, storage-shaped form: one numeric value per declared column.
type Row map[string]float64

// Number coerces an arbitrary decoded value to float64. Absent, non-numeric
// and null inputs all become 0; the transform never produces NaN or nil leaves.
func Number(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case []byte:
		return parseNumber(string(n))
	case string:
		return parseNumber(n)
	default:
		return 0
	}
}

func parseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// ToStorage flattens a UI-shaped document into a storage row. Every column
// declared by the descriptor is present in the result; leaves missing from
// the document default to 0. Keys outside the field map are ignored.
func ToStorage(d *Descriptor, doc Document) Row {
	row := make(Row, len(d.Fields))
	for _, f := range d.Fields {
		row[f.Column] = lookup(doc, f.Path)
	}
	return row
}

// ToUI reassembles the nested document from a storage row. A nil row yields
// the canonical empty document: every declared leaf present and 0. Columns
// missing from a non-nil row also default to 0, so the shape is identical
// either way.
func ToUI(d *Descriptor, row Row) Document {
	doc := make(Document)
	for _, f := range d.Fields {
		var v float64
		if row != nil {
			v = row[f.Column]
		}
		set(doc, f.Path, v)
	}
	return doc
}

// EmptyDocument returns the all-zero document for a report type.
func EmptyDocument(d *Descriptor) Document {
	return ToUI(d, nil)
}

func lookup(doc Document, path string) float64 {
	segments := strings.Split(path, ".")
	var cur interface{} = map[string]interface{}(doc)
	for _, seg := range segments {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return 0
		}
		cur, ok = m[seg]
		if !ok {
			return 0
		}
	}
	return Number(cur)
}

func set(doc Document, path string, v float64) {
	segments := strings.Split(path, ".")
	m := map[string]interface{}(doc)
	for _, seg := range segments[:len(segments)-1] {
		next, ok := m[seg].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			m[seg] = next
		}
		m = next
	}
	m[segments[len(segments)-1]] = v
}
