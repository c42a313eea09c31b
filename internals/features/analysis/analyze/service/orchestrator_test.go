package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metalab_backend/internals/features/analysis/analyze/client"
	"metalab_backend/internals/features/analysis/analyze/model"
)

type classifierFunc func(ctx context.Context, task model.TaskType, modelName, imageName string, image []byte) (*client.Prediction, error)

func (f classifierFunc) Classify(ctx context.Context, task model.TaskType, modelName, imageName string, image []byte) (*client.Prediction, error) {
	return f(ctx, task, modelName, imageName, image)
}

func testService(c client.Classifier) *AnalyzeService {
	return &AnalyzeService{
		Classifier:    c,
		CallTimeout:   time.Second,
		MaxConcurrent: 4,
		ReadImage:     func(string) ([]byte, error) { return []byte("img"), nil },
		inflight:      make(map[string]struct{}),
	}
}

func testInput(images ...string) AnalysisInput {
	return AnalysisInput{
		EvaluationCode: "EV-001",
		Images:         images,
		ModelFasa:      "fasa-resnet-v2",
		ModelCrack:     "crack-yolo-v8",
		ModelDegradasi: "degradasi-effnet",
	}
}

func TestClassifyAllIndexAlignment(t *testing.T) {
	svc := testService(classifierFunc(func(_ context.Context, task model.TaskType, _, imageName string, _ []byte) (*client.Prediction, error) {
		return &client.Prediction{
			Class:       fmt.Sprintf("%s-%s", task, imageName),
			Probability: 88.8,
		}, nil
	}))

	details, failures := svc.classifyAll(context.Background(), testInput("m1.jpg", "m2.jpg", "m3.jpg"), "Budi")
	require.Empty(t, failures)
	require.Len(t, details, 3)

	for i, img := range []string{"m1.jpg", "m2.jpg", "m3.jpg"} {
		d := details[i]
		assert.Equal(t, img, d.Image)
		assert.NotEmpty(t, d.DetailID)
		assert.Equal(t, "fasa-"+img, d.Fasa.HasilKlasifikasiAI)
		assert.Equal(t, "crack-"+img, d.Crack.HasilKlasifikasiAI)
		assert.Equal(t, "degradasi-"+img, d.Degradasi.HasilKlasifikasiAI)
		assert.Equal(t, "Budi", d.Fasa.Penguji)
		assert.Equal(t, model.ModeAI, d.Fasa.Mode)
	}
}

func TestClassifyAllCrackConfidenceFixed(t *testing.T) {
	svc := testService(classifierFunc(func(_ context.Context, task model.TaskType, _, _ string, _ []byte) (*client.Prediction, error) {
		return &client.Prediction{Class: "1", Probability: 42.5}, nil
	}))

	details, _ := svc.classifyAll(context.Background(), testInput("m1.jpg"), "")
	require.Len(t, details, 1)
	assert.Equal(t, 42.5, details[0].Fasa.Confidence)
	assert.Equal(t, 42.5, details[0].Degradasi.Confidence)
	assert.Equal(t, float64(100), details[0].Crack.Confidence)
}

func TestClassifyAllPartialFailureKeepsBatch(t *testing.T) {
	svc := testService(classifierFunc(func(_ context.Context, task model.TaskType, _, imageName string, _ []byte) (*client.Prediction, error) {
		if task == model.TaskFasa && imageName == "m2.jpg" {
			return nil, errors.New("layanan AI status 500")
		}
		return &client.Prediction{Class: "ok", Probability: 90}, nil
	}))

	details, failures := svc.classifyAll(context.Background(), testInput("m1.jpg", "m2.jpg"), "")
	require.Len(t, details, 2)
	require.Len(t, failures, 1)

	assert.Equal(t, 1, failures[0].ImageIndex)
	assert.Equal(t, "m2.jpg", failures[0].Image)
	assert.Equal(t, model.TaskFasa, failures[0].Task)

	// Sentinel di posisi yang gagal, entri lain utuh
	assert.True(t, details[1].Fasa.Failed())
	assert.Contains(t, details[1].Fasa.Error, "status 500")
	assert.False(t, details[1].Crack.Failed())
	assert.False(t, details[1].Degradasi.Failed())
	assert.False(t, details[0].Fasa.Failed())
}

func TestClassifyAllReadFailureFailsAllTasksForImage(t *testing.T) {
	svc := testService(classifierFunc(func(_ context.Context, _ model.TaskType, _, _ string, _ []byte) (*client.Prediction, error) {
		return &client.Prediction{Class: "ok"}, nil
	}))
	svc.ReadImage = func(path string) ([]byte, error) {
		if path == "hilang.jpg" {
			return nil, errors.New("no such file")
		}
		return []byte("img"), nil
	}

	details, failures := svc.classifyAll(context.Background(), testInput("m1.jpg", "hilang.jpg"), "")
	require.Len(t, details, 2)
	assert.Len(t, failures, 3)
	assert.True(t, details[1].Fasa.Failed())
	assert.True(t, details[1].Crack.Failed())
	assert.True(t, details[1].Degradasi.Failed())
	assert.False(t, details[0].Fasa.Failed())
}

func TestAnalyzeRejectsSecondRunSameCode(t *testing.T) {
	svc := testService(classifierFunc(func(_ context.Context, _ model.TaskType, _, _ string, _ []byte) (*client.Prediction, error) {
		return &client.Prediction{Class: "ok"}, nil
	}))

	require.True(t, svc.acquire("EV-001"))
	_, err := svc.Analyze(context.Background(), testInput("m1.jpg"))
	assert.ErrorIs(t, err, ErrAnalysisInFlight)

	// Kode lain tidak terpengaruh
	assert.True(t, svc.acquire("EV-002"))
}

func TestAnalyzeRejectsIncompleteEvaluation(t *testing.T) {
	svc := testService(classifierFunc(func(_ context.Context, _ model.TaskType, _, _ string, _ []byte) (*client.Prediction, error) {
		return &client.Prediction{Class: "ok"}, nil
	}))

	// Tanpa gambar
	_, err := svc.Analyze(context.Background(), AnalysisInput{
		EvaluationCode: "EV-003",
		ModelFasa:      "a", ModelCrack: "b", ModelDegradasi: "c",
	})
	assert.ErrorIs(t, err, ErrEvaluationIncomplete)

	// Tanpa model crack
	input := testInput("m1.jpg")
	input.ModelCrack = ""
	_, err = svc.Analyze(context.Background(), input)
	assert.ErrorIs(t, err, ErrEvaluationIncomplete)

	// Lock harus sudah dilepas setelah gagal validasi
	assert.True(t, svc.acquire("EV-003"))
}
