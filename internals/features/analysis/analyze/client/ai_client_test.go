package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metalab_backend/internals/features/analysis/analyze/model"
)

func newTestClassifier(srv *httptest.Server) *HTTPClassifier {
	return NewHTTPClassifier(Config{
		BaseURL:     srv.URL,
		CallTimeout: 2 * time.Second,
	})
}

func TestClassifySendsMultipartToTaskEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classify/fasa", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "fasa-resnet-v2", r.FormValue("model"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "m1.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"class":"perlit","probability":93.4,"image":"base64data"}`))
	}))
	defer srv.Close()

	pred, err := newTestClassifier(srv).Classify(
		context.Background(), model.TaskFasa, "fasa-resnet-v2", "m1.jpg", []byte("rawbytes"))
	require.NoError(t, err)
	assert.Equal(t, "perlit", pred.Class)
	assert.Equal(t, 93.4, pred.Probability)
	assert.Equal(t, "base64data", pred.AnnotatedImage)
}

func TestClassifyNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model tidak ditemukan", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClassifier(srv).Classify(
		context.Background(), model.TaskCrack, "ghost", "m1.jpg", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "model tidak ditemukan")
}

func TestClassifyInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("bukan json"))
	}))
	defer srv.Close()

	_, err := newTestClassifier(srv).Classify(
		context.Background(), model.TaskDegradasi, "m", "m1.jpg", nil)
	assert.Error(t, err)
}

func TestClassifyContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestClassifier(srv).Classify(ctx, model.TaskFasa, "m", "m1.jpg", nil)
	assert.Error(t, err)
}
