package report

import (
	"strings"
	"unicode"
)

// MetricKind describes how a leaf value is interpreted. Counts and amounts
// share the same numeric representation; the distinction drives export
// formatting and schema documentation only.
type MetricKind int

const (
	Count MetricKind = iota
	Amount
)

// Field maps one leaf of the UI-shaped document to one flat storage column.
// Path is dot-separated and mirrors the on-screen form nesting, e.g.
// "financial.onDate.complaints".
type Field struct {
	Path   string
	Column string
	Kind   MetricKind
}

// Descriptor is the static schema of one logical report type: its stable
// identifier, the physical table it persists to, and the field translation
// table between UI shape and storage shape.
type Descriptor struct {
	ID          string
	Title       string
	StorageName string
	Fields      []Field
}

// Columns returns the storage column names in declaration order.
func (d *Descriptor) Columns() []string {
	cols := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		cols[i] = f.Column
	}
	return cols
}

// snake converts a camelCase path segment to its snake_case column form.
func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// column joins path segments into a flat storage column name.
func column(segments ...string) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = snake(s)
	}
	return strings.Join(parts, "_")
}

// metricPeriods builds one Field per metric and period, shaped
// metric -> period -> value in the document.
func metricPeriods(kind MetricKind, periods []string, metrics ...string) []Field {
	fields := make([]Field, 0, len(metrics)*len(periods))
	for _, m := range metrics {
		for _, p := range periods {
			fields = append(fields, Field{
				Path:   m + "." + p,
				Column: column(m, p),
				Kind:   kind,
			})
		}
	}
	return fields
}

// categoryPeriodMetrics builds one Field per category, period and metric,
// shaped category -> period -> metric in the document.
func categoryPeriodMetrics(kind MetricKind, categories, periods, metrics []string) []Field {
	fields := make([]Field, 0, len(categories)*len(periods)*len(metrics))
	for _, c := range categories {
		for _, p := range periods {
			for _, m := range metrics {
				fields = append(fields, Field{
					Path:   c + "." + p + "." + m,
					Column: column(c, p, m),
					Kind:   kind,
				})
			}
		}
	}
	return fields
}

// scalars builds one top-level Field per metric.
func scalars(kind MetricKind, metrics ...string) []Field {
	fields := make([]Field, 0, len(metrics))
	for _, m := range metrics {
		fields = append(fields, Field{Path: m, Column: snake(m), Kind: kind})
	}
	return fields
}
