package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullDocument builds a document with every leaf set to a distinct value.
func fullDocument(d *Descriptor) Document {
	doc := make(Document)
	for i, f := range d.Fields {
		set(doc, f.Path, float64(i+1))
	}
	return doc
}

func TestRoundTrip_AllDescriptors(t *testing.T) {
	for _, d := range All() {
		doc := fullDocument(d)
		row := ToStorage(d, doc)
		back := ToUI(d, row)
		assert.Equalf(t, doc, back, "%s: round trip changed the document", d.ID)
	}
}

func TestEmptyDocument_AllLeavesZero(t *testing.T) {
	for _, d := range All() {
		doc := EmptyDocument(d)
		for _, f := range d.Fields {
			assert.Equalf(t, 0.0, lookup(doc, f.Path), "%s: leaf %s not zero", d.ID, f.Path)
		}
	}
}

func TestEmptyDocument_ShapeMatchesPopulated(t *testing.T) {
	for _, d := range All() {
		empty, _ := json.Marshal(EmptyDocument(d))
		full, _ := json.Marshal(ToUI(d, ToStorage(d, fullDocument(d))))

		var emptyKeys, fullKeys map[string]interface{}
		require.NoError(t, json.Unmarshal(empty, &emptyKeys))
		require.NoError(t, json.Unmarshal(full, &fullKeys))
		assert.Equalf(t, keys(fullKeys), keys(emptyKeys), "%s: shape mismatch", d.ID)
	}
}

// keys strips leaf values, keeping only nesting structure.
func keys(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]interface{}); ok {
			out[k] = keys(nested)
		} else {
			out[k] = nil
		}
	}
	return out
}

func TestToStorage_EmptyInputDefaultsEveryColumn(t *testing.T) {
	for _, d := range All() {
		row := ToStorage(d, Document{})
		assert.Lenf(t, row, len(d.Fields), "%s: missing columns", d.ID)
		for _, f := range d.Fields {
			v, ok := row[f.Column]
			assert.Truef(t, ok, "%s: column %s absent", d.ID, f.Column)
			assert.Zerof(t, v, "%s: column %s not defaulted", d.ID, f.Column)
		}
	}
}

func TestToStorage_IgnoresUndeclaredKeys(t *testing.T) {
	d, err := Resolve("amount_lost_frozen")
	require.NoError(t, err)

	row := ToStorage(d, Document{
		"amountLost": map[string]interface{}{"onDate": 500.0},
		"garbage":    map[string]interface{}{"onDate": 999.0},
	})
	assert.Equal(t, 500.0, row["amount_lost_on_date"])
	_, ok := row["garbage_on_date"]
	assert.False(t, ok)
}

func TestToStorage_AmountScenario(t *testing.T) {
	d, err := Resolve("amount_lost_frozen")
	require.NoError(t, err)

	// values arrive as decoded JSON, numbers and numeric strings alike
	doc := Document{
		"amountLost": map[string]interface{}{
			"onDate":   500.0,
			"fromDate": json.Number("12000"),
			"data2024": "9000",
		},
	}
	row := ToStorage(d, doc)
	assert.Equal(t, 500.0, row["amount_lost_on_date"])
	assert.Equal(t, 12000.0, row["amount_lost_from_date"])
	assert.Equal(t, 9000.0, row["amount_lost_data2024"])
	assert.Equal(t, 0.0, row["amount_frozen_on_date"])
	assert.Equal(t, 0.0, row["amount_returned_data2024"])
}

func TestNumber_Coercion(t *testing.T) {
	assert.Equal(t, 3.5, Number(3.5))
	assert.Equal(t, 7.0, Number(7))
	assert.Equal(t, 7.0, Number(int64(7)))
	assert.Equal(t, 12.25, Number("12.25"))
	assert.Equal(t, 42.0, Number([]byte("42")))
	assert.Equal(t, 0.0, Number("not a number"))
	assert.Equal(t, 0.0, Number(nil))
	assert.Equal(t, 0.0, Number(map[string]interface{}{}))
}

func TestScalarReport_FlatPaths(t *testing.T) {
	d, err := Resolve("cyber_pss_staff")
	require.NoError(t, err)

	doc := Document{"sanctionedStrength": 24.0, "presentStrength": 19.0}
	row := ToStorage(d, doc)
	assert.Equal(t, 24.0, row["sanctioned_strength"])
	assert.Equal(t, 19.0, row["present_strength"])
	assert.Equal(t, 0.0, row["vacancies"])

	back := ToUI(d, row)
	assert.Equal(t, 24.0, back["sanctionedStrength"])
	assert.Equal(t, 0.0, back["vacancies"])
}
