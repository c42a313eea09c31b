package service

import (
	"fmt"

	"metalab_backend/internals/features/analysis/analyze/model"
)

// MostFrequentPrediction memilih label terbanyak dari hasil valid.
// Seri dipecah ke label yang muncul lebih dulu; sentinel gagal dan label
// kosong tidak ikut dihitung.
func MostFrequentPrediction(labels []string) string {
	counts := map[string]int{}
	order := []string{}
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, seen := counts[l]; !seen {
			order = append(order, l)
		}
		counts[l]++
	}

	best := ""
	bestCount := 0
	for _, l := range order {
		if counts[l] > bestCount {
			best = l
			bestCount = counts[l]
		}
	}
	return best
}

// CrackDetected: label crack non-kosong dan bukan "0" berarti microcrack
// terdeteksi. Model crack melaporkan "0" saat tidak menemukan objek.
func CrackDetected(label string) bool {
	return label != "" && label != "0"
}

// effectiveLabel: label manual menang kalau item sudah dikoreksi.
func effectiveLabel(h model.HasilUji) string {
	if h.Failed() {
		return ""
	}
	if h.Mode == model.ModeManual && h.HasilKlasifikasiManual != nil {
		return *h.HasilKlasifikasiManual
	}
	return h.HasilKlasifikasiAI
}

// BuildKesimpulan merangkum hasil per gambar jadi kesimpulan satu pengujian:
// fasa dan degradasi lewat suara terbanyak, crack lewat ada-tidaknya deteksi
// di gambar mana pun.
func BuildKesimpulan(details []model.AnalyzedDetail) model.Kesimpulan {
	fasaLabels := make([]string, 0, len(details))
	degradasiLabels := make([]string, 0, len(details))
	crackFound := false

	for _, d := range details {
		fasaLabels = append(fasaLabels, effectiveLabel(d.Fasa))
		degradasiLabels = append(degradasiLabels, effectiveLabel(d.Degradasi))
		if !d.Crack.Failed() && CrackDetected(effectiveLabel(d.Crack)) {
			crackFound = true
		}
	}

	k := model.Kesimpulan{
		StrukturMikro: MostFrequentPrediction(fasaLabels),
		DamageClass:   MostFrequentPrediction(degradasiLabels),
	}
	if crackFound {
		k.FiturMikroskopik = "Terdeteksi microcrack pada struktur mikro"
	} else {
		k.FiturMikroskopik = "Tidak terdeteksi microcrack pada struktur mikro"
	}
	if k.StrukturMikro != "" || k.DamageClass != "" {
		k.Rekomendasi = fmt.Sprintf(
			"Struktur mikro dominan %s dengan kelas degradasi %s. Verifikasi manual oleh penguji tetap disarankan.",
			orDash(k.StrukturMikro), orDash(k.DamageClass),
		)
	}
	return k
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
