package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metalab_backend/internals/features/analysis/analyze/model"
)

func sampleDetails() []model.AnalyzedDetail {
	return []model.AnalyzedDetail{
		{
			DetailID: "d-1",
			Image:    "m1.jpg",
			Fasa: model.HasilUji{
				Mode:               model.ModeAI,
				HasilKlasifikasiAI: "perlit",
				ModelAI:            "fasa-resnet-v2",
				Confidence:         91.2,
			},
		},
		{DetailID: "d-2", Image: "m2.jpg"},
	}
}

func TestApplyOverrideSetsManual(t *testing.T) {
	details := sampleDetails()
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	changed, err := ApplyOverride(details, "d-1", model.TaskFasa, model.ModeManual, "ferit", "Budi", now)
	require.NoError(t, err)
	assert.True(t, changed)

	got := details[0].Fasa
	assert.Equal(t, model.ModeManual, got.Mode)
	require.NotNil(t, got.HasilKlasifikasiManual)
	assert.Equal(t, "ferit", *got.HasilKlasifikasiManual)
	assert.Equal(t, "Budi", got.Penguji)
	assert.Equal(t, now, got.TanggalUpdate)

	// Jejak AI tidak boleh hilang
	assert.Equal(t, "perlit", got.HasilKlasifikasiAI)
	assert.Equal(t, "fasa-resnet-v2", got.ModelAI)
	assert.Equal(t, 91.2, got.Confidence)
}

func TestApplyOverrideIdempotent(t *testing.T) {
	details := sampleDetails()
	now := time.Now()

	changed, err := ApplyOverride(details, "d-1", model.TaskFasa, model.ModeManual, "ferit", "Budi", now)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = ApplyOverride(details, "d-1", model.TaskFasa, model.ModeManual, "ferit", "Siti", now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)
	// Nilai sama → tidak ada yang ditulis ulang
	assert.Equal(t, "Budi", details[0].Fasa.Penguji)
}

func TestApplyOverrideRepeatedCorrection(t *testing.T) {
	details := sampleDetails()

	_, err := ApplyOverride(details, "d-1", model.TaskFasa, model.ModeManual, "ferit", "Budi", time.Now())
	require.NoError(t, err)

	changed, err := ApplyOverride(details, "d-1", model.TaskFasa, model.ModeManual, "bainit", "Budi", time.Now())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "bainit", *details[0].Fasa.HasilKlasifikasiManual)
}

func TestApplyOverrideRevertToAI(t *testing.T) {
	details := sampleDetails()
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	_, err := ApplyOverride(details, "d-1", model.TaskFasa, model.ModeManual, "ferit", "Budi", now)
	require.NoError(t, err)

	changed, err := ApplyOverride(details, "d-1", model.TaskFasa, model.ModeAI, "", "Siti", now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, changed)

	got := details[0].Fasa
	// Label AI kembali jadi acuan tampilan, jejak koreksi tetap tersimpan
	assert.Equal(t, model.ModeAI, got.Mode)
	assert.Equal(t, "perlit", got.HasilKlasifikasiAI)
	require.NotNil(t, got.HasilKlasifikasiManual)
	assert.Equal(t, "ferit", *got.HasilKlasifikasiManual)
	assert.Equal(t, "Siti", got.Penguji)
	assert.Equal(t, now.Add(time.Hour), got.TanggalUpdate)
}

func TestApplyOverrideRevertIdempotent(t *testing.T) {
	details := sampleDetails()
	now := time.Now()

	// Sudah mode AI → tidak ada yang berubah
	changed, err := ApplyOverride(details, "d-1", model.TaskFasa, model.ModeAI, "", "Siti", now)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "", details[0].Fasa.Penguji)

	_, err = ApplyOverride(details, "d-1", model.TaskFasa, model.ModeManual, "ferit", "Budi", now)
	require.NoError(t, err)
	_, err = ApplyOverride(details, "d-1", model.TaskFasa, model.ModeAI, "", "Siti", now)
	require.NoError(t, err)

	changed, err = ApplyOverride(details, "d-1", model.TaskFasa, model.ModeAI, "", "Rina", now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "Siti", details[0].Fasa.Penguji)
}

func TestApplyOverrideDetailNotFound(t *testing.T) {
	details := sampleDetails()
	_, err := ApplyOverride(details, "d-404", model.TaskCrack, model.ModeManual, "1", "", time.Now())
	assert.ErrorIs(t, err, ErrDetailNotFound)
}

func TestApplyOverrideUnknownTask(t *testing.T) {
	details := sampleDetails()
	_, err := ApplyOverride(details, "d-1", model.TaskType("hardness"), model.ModeManual, "x", "", time.Now())
	assert.ErrorIs(t, err, model.ErrUnknownTask)
}

func TestApplyOverrideUnknownMode(t *testing.T) {
	details := sampleDetails()
	_, err := ApplyOverride(details, "d-1", model.TaskFasa, model.ClassificationMode("AUTO"), "x", "", time.Now())
	assert.Error(t, err)
}
