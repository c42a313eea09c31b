package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"metalab_backend/internals/features/evaluations/evaluation/model"
)

func TestApplyProgressRule(t *testing.T) {
	threshold := defaultProcessingThreshold

	tests := []struct {
		name     string
		current  model.EvaluationStatus
		progress int
		want     model.EvaluationStatus
	}{
		{"complete menang atas semua", model.StatusDraft, 100, model.StatusCompleted},
		{"di atas ambang jadi processing", model.StatusDraft, 50, model.StatusProcessing},
		{"pending juga naik ke processing", model.StatusPending, 7, model.StatusProcessing},
		{"di bawah ambang tetap draft", model.StatusDraft, 5, model.StatusDraft},
		{"tepat di ambang tidak naik", model.StatusDraft, threshold, model.StatusDraft},
		{"completed turun lagi kalau ada field dikosongkan", model.StatusCompleted, 90, model.StatusProcessing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyProgressRule(tt.current, tt.progress, threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcessingThresholdEnvOverride(t *testing.T) {
	t.Setenv("EVALUATION_PROCESSING_THRESHOLD", "40")
	assert.Equal(t, 40, ProcessingThreshold())

	t.Setenv("EVALUATION_PROCESSING_THRESHOLD", "bukan angka")
	assert.Equal(t, defaultProcessingThreshold, ProcessingThreshold())

	t.Setenv("EVALUATION_PROCESSING_THRESHOLD", "999")
	assert.Equal(t, defaultProcessingThreshold, ProcessingThreshold())
}

func TestExplicitTransition(t *testing.T) {
	now := time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC)

	eval := &model.ProjectEvaluationModel{Status: model.StatusDraft}
	assert.NoError(t, ExplicitTransition(eval, model.StatusPending, now))
	assert.Equal(t, model.StatusPending, eval.Status)

	assert.NoError(t, ExplicitTransition(eval, model.StatusProcessing, now))
	assert.Equal(t, model.StatusProcessing, eval.Status)
	assert.Equal(t, now, eval.LastActive)

	// DRAFT dan COMPLETED tidak boleh diminta langsung
	assert.Error(t, ExplicitTransition(eval, model.StatusDraft, now))
	assert.Error(t, ExplicitTransition(eval, model.StatusCompleted, now))
	assert.Error(t, ExplicitTransition(eval, model.EvaluationStatus("NGACO"), now))
}
