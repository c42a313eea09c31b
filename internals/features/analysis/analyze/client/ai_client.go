package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"

	"metalab_backend/internals/features/analysis/analyze/model"
)

// Config layanan klasifikasi AI eksternal, dibaca dari ENV.
type Config struct {
	BaseURL       string        `envconfig:"AI_SERVICE_BASE_URL" default:"http://localhost:8500"`
	CallTimeout   time.Duration `envconfig:"AI_SERVICE_TIMEOUT" default:"30s"`
	MaxConcurrent int           `envconfig:"AI_SERVICE_MAX_CONCURRENT" default:"6"`
}

func LoadConfig() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}

// Prediction: respons satu panggilan klasifikasi.
// Probability tidak dikirim untuk crack (deteksi kehadiran, bukan probabilitas).
type Prediction struct {
	Class          string  `json:"class"`
	Probability    float64 `json:"probability"`
	AnnotatedImage string  `json:"image"` // base64, menggantikan gambar mentah di hasil tersimpan
}

// Classifier: kontrak ke layanan AI. Satu endpoint per tugas, satu gambar
// per request. Implementasi palsu dipakai di test.
type Classifier interface {
	Classify(ctx context.Context, task model.TaskType, modelName, imageName string, image []byte) (*Prediction, error)
}

type HTTPClassifier struct {
	cfg        Config
	httpClient *http.Client
}

func NewHTTPClassifier(cfg Config) *HTTPClassifier {
	return &HTTPClassifier{
		cfg: cfg,
		// Timeout per panggilan diatur lewat context oleh pemanggil;
		// timeout client ini hanya pagar terakhir.
		httpClient: &http.Client{Timeout: cfg.CallTimeout + 10*time.Second},
	}
}

// Classify mengirim satu gambar ke endpoint tugas terkait:
// POST {base}/classify/{task}, multipart: file "image" + field "model".
func (c *HTTPClassifier) Classify(ctx context.Context, task model.TaskType, modelName, imageName string, image []byte) (*Prediction, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", imageName)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(image); err != nil {
		return nil, err
	}
	if err := writer.WriteField("model", modelName); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/classify/%s", c.cfg.BaseURL, task)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("panggilan layanan AI gagal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("layanan AI status %d: %s", resp.StatusCode, snippet)
	}

	var pred Prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, fmt.Errorf("respons layanan AI tidak valid: %w", err)
	}
	return &pred, nil
}
