package dto

// AnalyzeRequest: pemicu run analisa AI. Daftar gambar dan model diambil
// dari pengujian; body hanya membawa daftar personil.
type AnalyzeRequest struct {
	Penguji   []string `json:"penguji"`
	Pemeriksa []string `json:"pemeriksa"`
}

// SampleRecommendationRequest: cari hasil klasifikasi lama per nama gambar.
type SampleRecommendationRequest struct {
	Images         []string `json:"images" validate:"required,min=1"`
	JenisPengujian string   `json:"jenis_pengujian" validate:"omitempty,oneof=fasa crack degradasi"`
}

// UpdateClassificationRequest: koreksi satu sub-hasil. Mode MANUAL menimpa
// label dengan hasil koreksi; mode AI mengembalikan label AI sebagai acuan
// tampilan (hasil tidak dipakai).
type UpdateClassificationRequest struct {
	DetailID       string `json:"detail_id" validate:"required"`
	JenisPengujian string `json:"jenis_pengujian" validate:"required,oneof=fasa crack degradasi"`
	Mode           string `json:"mode" validate:"required,oneof=AI MANUAL"`
	Hasil          string `json:"hasil" validate:"required_if=Mode MANUAL"`
}
