package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"metalab_backend/internals/features/analysis/analyze/client"
	"metalab_backend/internals/features/analysis/analyze/model"
	evalModel "metalab_backend/internals/features/evaluations/evaluation/model"
)

var (
	// ErrAnalysisInFlight: sudah ada analisa berjalan untuk kode pengujian ini.
	ErrAnalysisInFlight = errors.New("analisa untuk pengujian ini sedang berjalan")
	// ErrEvaluationIncomplete: belum ada gambar atau pemilihan model belum lengkap.
	ErrEvaluationIncomplete = errors.New("pengujian belum punya gambar struktur mikro dan tiga model AI")
)

// Confidence crack selalu 100: tugasnya deteksi kehadiran objek (biner),
// bukan probabilitas kelas.
const crackConfidence = 100

// AnalysisInput: semua konteks yang dibutuhkan satu run analisa.
type AnalysisInput struct {
	EvaluationCode string
	ProjectID      uuid.UUID
	Nama           string
	Status         string
	Progress       int
	Snapshot       model.DetailSnapshot

	Images           []string // path gambar struktur mikro, urut upload
	ModelFasa        string
	ModelCrack       string
	ModelDegradasi   string
	Penguji          []string
	Pemeriksa        []string
}

// ClassificationFailure: satu panggilan upstream yang gagal. Batch tetap
// selesai; pemanggil wajib melihat daftar ini.
type ClassificationFailure struct {
	ImageIndex int            `json:"image_index"`
	Image      string         `json:"image"`
	Task       model.TaskType `json:"task"`
	Reason     string         `json:"reason"`
}

// AnalyzeOutcome: hasil run — dokumen tersimpan plus daftar kegagalan per item.
type AnalyzeOutcome struct {
	Result   *model.AnalyzedResultModel `json:"result"`
	Failures []ClassificationFailure    `json:"failures"`
}

// AnalyzeService menjalankan fan-out klasifikasi dan menyimpan hasilnya.
type AnalyzeService struct {
	DB         *gorm.DB
	Classifier client.Classifier

	CallTimeout   time.Duration
	MaxConcurrent int

	// ReadImage bisa diganti di test; default baca dari disk.
	ReadImage func(path string) ([]byte, error)

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewAnalyzeService(db *gorm.DB, classifier client.Classifier, cfg client.Config) *AnalyzeService {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &AnalyzeService{
		DB:            db,
		Classifier:    classifier,
		CallTimeout:   cfg.CallTimeout,
		MaxConcurrent: maxConcurrent,
		ReadImage:     os.ReadFile,
		inflight:      make(map[string]struct{}),
	}
}

// Analyze menjalankan 3×N klasifikasi untuk satu pengujian, membangun
// kesimpulan, dan mengganti AnalyzedResult lama (soft delete = jejak audit).
// Maksimal satu run per kode pengujian pada satu waktu.
func (s *AnalyzeService) Analyze(ctx context.Context, input AnalysisInput) (*AnalyzeOutcome, error) {
	if !s.acquire(input.EvaluationCode) {
		return nil, ErrAnalysisInFlight
	}
	defer s.release(input.EvaluationCode)

	if len(input.Images) == 0 || input.ModelFasa == "" || input.ModelCrack == "" || input.ModelDegradasi == "" {
		return nil, ErrEvaluationIncomplete
	}

	tester := ""
	if len(input.Penguji) > 0 {
		tester = input.Penguji[0]
	}

	details, failures := s.classifyAll(ctx, input, tester)

	result := &model.AnalyzedResultModel{
		EvaluationCode: input.EvaluationCode,
		ProjectID:      input.ProjectID,
		Nama:           input.Nama,
		Status:         input.Status,
		Progress:       input.Progress,
		Penguji:        pq.StringArray(input.Penguji),
		Pemeriksa:      pq.StringArray(input.Pemeriksa),
	}
	if err := result.SetDetail(input.Snapshot); err != nil {
		return nil, err
	}
	if err := result.SetHasilAnalisa(details); err != nil {
		return nil, err
	}
	if err := result.SetKesimpulan(BuildKesimpulan(details)); err != nil {
		return nil, err
	}

	// Dokumen AnalyzedResult atomik: ganti-atau-gagal, tidak ada hasil parsial.
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("evaluation_code = ?", input.EvaluationCode).
			Delete(&model.AnalyzedResultModel{}).Error; err != nil {
			return err
		}
		return tx.Create(result).Error
	}); err != nil {
		return nil, fmt.Errorf("gagal simpan hasil analisa: %w", err)
	}

	if err := s.DB.Model(&evalModel.ProjectEvaluationModel{}).
		Where("evaluation_code = ?", input.EvaluationCode).
		Update("is_analyzed", true).Error; err != nil {
		// Hasil sudah tersimpan; flag bisa disusulkan, jangan gagalkan run.
		log.Println("[ERROR] Gagal set is_analyzed:", err)
	}

	s.appendSamples(details)

	return &AnalyzeOutcome{Result: result, Failures: failures}, nil
}

// classifyAll menjalankan fan-out 3×N dengan batas konkurensi. Hasil per
// tugas disimpan pada indeks gambar asalnya — kegagalan jadi sentinel di
// posisi itu, tidak menggeser entri lain.
func (s *AnalyzeService) classifyAll(ctx context.Context, input AnalysisInput, tester string) ([]model.AnalyzedDetail, []ClassificationFailure) {
	type slot struct {
		pred *client.Prediction
		err  error
	}
	n := len(input.Images)
	slots := map[model.TaskType][]slot{
		model.TaskFasa:      make([]slot, n),
		model.TaskCrack:     make([]slot, n),
		model.TaskDegradasi: make([]slot, n),
	}
	taskModels := map[model.TaskType]string{
		model.TaskFasa:      input.ModelFasa,
		model.TaskCrack:     input.ModelCrack,
		model.TaskDegradasi: input.ModelDegradasi,
	}

	g := new(errgroup.Group)
	g.SetLimit(s.MaxConcurrent)

	for i, imagePath := range input.Images {
		raw, err := s.ReadImage(imagePath)
		if err != nil {
			readErr := fmt.Errorf("gagal baca gambar: %w", err)
			for task := range slots {
				slots[task][i] = slot{err: readErr}
			}
			continue
		}
		for task, modelName := range taskModels {
			i, task, modelName, imagePath := i, task, modelName, imagePath
			g.Go(func() error {
				// Timeout per panggilan: satu panggilan lambat tidak
				// membatalkan panggilan lain.
				callCtx, cancel := context.WithTimeout(ctx, s.CallTimeout)
				defer cancel()

				pred, err := s.Classifier.Classify(callCtx, task, modelName, imagePath, raw)
				slots[task][i] = slot{pred: pred, err: err}
				return nil
			})
		}
	}
	_ = g.Wait()

	now := time.Now()
	details := make([]model.AnalyzedDetail, n)
	var failures []ClassificationFailure

	for i, imagePath := range input.Images {
		detail := model.AnalyzedDetail{
			DetailID: uuid.New().String(),
			Image:    imagePath,
		}
		for _, task := range []model.TaskType{model.TaskFasa, model.TaskCrack, model.TaskDegradasi} {
			sub, _ := detail.Sub(task)
			got := slots[task][i]
			if got.err != nil {
				*sub = model.HasilUji{
					Penguji:       tester,
					TanggalUpdate: now,
					Mode:          model.ModeAI,
					ModelAI:       taskModels[task],
					Error:         got.err.Error(),
				}
				failures = append(failures, ClassificationFailure{
					ImageIndex: i,
					Image:      imagePath,
					Task:       task,
					Reason:     got.err.Error(),
				})
				continue
			}

			confidence := got.pred.Probability
			if task == model.TaskCrack {
				confidence = crackConfidence
			}
			*sub = model.HasilUji{
				Image:              got.pred.AnnotatedImage,
				Penguji:            tester,
				TanggalUpdate:      now,
				Mode:               model.ModeAI,
				HasilKlasifikasiAI: got.pred.Class,
				ModelAI:            taskModels[task],
				Confidence:         confidence,
			}
		}
		details[i] = detail
	}

	return details, failures
}

// appendSamples menulis log Sample per gambar yang tiga-tiganya berhasil.
// Best-effort: log append-only ini tidak boleh menggagalkan run.
func (s *AnalyzeService) appendSamples(details []model.AnalyzedDetail) {
	for _, d := range details {
		if d.Fasa.Failed() || d.Crack.Failed() || d.Degradasi.Failed() {
			continue
		}
		sample, err := model.NewSample(d.Image, d.Fasa, d.Crack, d.Degradasi)
		if err != nil {
			log.Println("[ERROR] Gagal encode sample:", err)
			continue
		}
		if err := s.DB.Create(sample).Error; err != nil {
			log.Println("[ERROR] Gagal simpan sample:", err)
		}
	}
}

func (s *AnalyzeService) acquire(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[code]; busy {
		return false
	}
	s.inflight[code] = struct{}{}
	return true
}

func (s *AnalyzeService) release(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, code)
}
