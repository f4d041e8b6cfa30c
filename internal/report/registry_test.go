package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
)

func TestResolve_Known(t *testing.T) {
	d, err := Resolve("amount_lost_frozen")
	require.NoError(t, err)
	assert.Equal(t, "dsr_amount_lost_frozen", d.StorageName)
	assert.NotEmpty(t, d.Fields)
}

func TestResolve_Unknown(t *testing.T) {
	d, err := Resolve("not_a_real_report")
	assert.Nil(t, d)
	assert.ErrorIs(t, err, domain.ErrUnknownReportType)
}

func TestRegistry_TwentyOneReports(t *testing.T) {
	assert.Len(t, All(), 21)
}

func TestRegistry_StorageNamesUnique(t *testing.T) {
	seen := map[string]string{}
	for _, d := range All() {
		prev, dup := seen[d.StorageName]
		assert.Falsef(t, dup, "storage name %s shared by %s and %s", d.StorageName, prev, d.ID)
		seen[d.StorageName] = d.ID
	}
}

func TestRegistry_ColumnsUniquePerDescriptor(t *testing.T) {
	for _, d := range All() {
		seen := map[string]bool{}
		for _, f := range d.Fields {
			assert.Falsef(t, seen[f.Column], "%s: duplicate column %s", d.ID, f.Column)
			assert.Falsef(t, seen[f.Path], "%s: duplicate path %s", d.ID, f.Path)
			seen[f.Column] = true
			seen[f.Path] = true
		}
	}
}

func TestSnake(t *testing.T) {
	assert.Equal(t, "amount_lost", snake("amountLost"))
	assert.Equal(t, "on_date", snake("onDate"))
	assert.Equal(t, "data2024", snake("data2024"))
	assert.Equal(t, "non_financial", snake("nonFinancial"))
}

func TestStagesOfCases_AllStagesPresent(t *testing.T) {
	d, err := Resolve("stages_of_cases")
	require.NoError(t, err)
	// nine stages, two period buckets each
	assert.Len(t, d.Fields, 18)
	assert.Equal(t, "received.onDate", d.Fields[0].Path)
	assert.Equal(t, "received_on_date", d.Fields[0].Column)
}
