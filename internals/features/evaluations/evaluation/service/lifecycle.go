package service

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"metalab_backend/internals/features/evaluations/evaluation/model"
)

// Ambang progress yang memaksa status PROCESSING setelah edit. Nilai 6
// diwarisi dari sistem lama dan belum dikonfirmasi product owner —
// jangan diubah diam-diam, atur lewat EVALUATION_PROCESSING_THRESHOLD.
const defaultProcessingThreshold = 6

func ProcessingThreshold() int {
	if v := os.Getenv("EVALUATION_PROCESSING_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 100 {
			return n
		}
	}
	return defaultProcessingThreshold
}

// ApplyProgressRule menentukan status baru setelah edit tersimpan:
// progress 100 → COMPLETED; progress > ambang → PROCESSING; selain itu tetap.
func ApplyProgressRule(current model.EvaluationStatus, progress, threshold int) model.EvaluationStatus {
	switch {
	case progress == 100:
		return model.StatusCompleted
	case progress > threshold:
		return model.StatusProcessing
	default:
		return current
	}
}

// ExplicitTransition memvalidasi permintaan ubah status eksplisit.
// Hanya PENDING dan PROCESSING yang boleh diminta; PROCESSING menyegarkan
// last_active.
func ExplicitTransition(m *model.ProjectEvaluationModel, target model.EvaluationStatus, now time.Time) error {
	switch target {
	case model.StatusPending:
		m.Status = model.StatusPending
	case model.StatusProcessing:
		m.Status = model.StatusProcessing
		m.LastActive = now
	default:
		return fmt.Errorf("status %q tidak bisa diminta secara eksplisit", target)
	}
	return nil
}
