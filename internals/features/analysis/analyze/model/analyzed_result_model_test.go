package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskType(t *testing.T) {
	for _, s := range []string{"fasa", "crack", "degradasi"} {
		task, err := ParseTaskType(s)
		require.NoError(t, err)
		assert.Equal(t, TaskType(s), task)
	}

	_, err := ParseTaskType("hardness")
	assert.ErrorIs(t, err, ErrUnknownTask)
	_, err = ParseTaskType("FASA")
	assert.ErrorIs(t, err, ErrUnknownTask)
}

func TestSubReturnsPointerIntoDetail(t *testing.T) {
	d := AnalyzedDetail{DetailID: "d-1"}

	sub, err := d.Sub(TaskCrack)
	require.NoError(t, err)
	sub.HasilKlasifikasiAI = "1"
	assert.Equal(t, "1", d.Crack.HasilKlasifikasiAI)

	_, err = d.Sub(TaskType("lainnya"))
	assert.ErrorIs(t, err, ErrUnknownTask)
}

func TestHasilAnalisaRoundTrip(t *testing.T) {
	var m AnalyzedResultModel
	require.NoError(t, m.SetHasilAnalisa([]AnalyzedDetail{
		{DetailID: "d-1", Image: "m1.jpg", Fasa: HasilUji{HasilKlasifikasiAI: "perlit"}},
	}))

	details, err := m.DecodeHasilAnalisa()
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "perlit", details[0].Fasa.HasilKlasifikasiAI)

	// Dokumen kosong → tidak ada detail, bukan error
	var empty AnalyzedResultModel
	details, err = empty.DecodeHasilAnalisa()
	require.NoError(t, err)
	assert.Empty(t, details)
}
