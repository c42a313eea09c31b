package helper

import (
	"fmt"
	"image"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// Penyimpanan file upload di disk lokal (bukan object storage).
// Struktur: {UPLOAD_DIR}/{folder}/{tanggal}-{uuid}-{nama-asli}

const defaultMaxImageWidth = 1920

func uploadRoot() string {
	if v := strings.TrimSpace(os.Getenv("UPLOAD_DIR")); v != "" {
		return v
	}
	return "uploads"
}

func webpQuality() float32 {
	if v := strings.TrimSpace(os.Getenv("WEBP_QUALITY")); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 && f <= 100 {
			return float32(f)
		}
	}
	return 80
}

func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// SaveUploadedImage menyimpan gambar upload ke disk: dinormalisasi (maks lebar
// 1920px) dan ditulis ulang sebagai JPEG, plus varian preview .webp.
// Mengembalikan path relatif file utama.
func SaveUploadedImage(folder string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("file bukan gambar yang valid: %w", err)
	}

	if img.Bounds().Dx() > defaultMaxImageWidth {
		img = resizeToWidth(img, defaultMaxImageWidth)
	}

	dir := filepath.Join(uploadRoot(), folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	name := GenerateUniqueFilename(fh.Filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	mainPath := filepath.Join(dir, base+".jpg")

	if err := imaging.Save(img, mainPath, imaging.JPEGQuality(90)); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}

	// Preview webp best-effort; file utama tetap valid tanpa preview.
	if err := writeWebPPreview(img, filepath.Join(dir, base+".webp")); err != nil {
		log.Printf("[WARNING] Gagal menulis preview webp %s: %v", base, err)
	}

	return mainPath, nil
}

func writeWebPPreview(img image.Image, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return webp.Encode(out, img, &webp.Options{Quality: webpQuality()})
}

func resizeToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	height := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// DeleteStoredFile menghapus file upload lama beserta preview webp-nya.
func DeleteStoredFile(path string) {
	if path == "" || path == "-" {
		return
	}
	if err := os.Remove(path); err == nil {
		log.Println("[INFO] File lama dihapus:", path)
	}
	preview := strings.TrimSuffix(path, filepath.Ext(path)) + ".webp"
	_ = os.Remove(preview)
}

// ResolveStoredFile memastikan path masih di bawah folder upload sebelum dibaca.
func ResolveStoredFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	root, err := filepath.Abs(uploadRoot())
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(abs, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("path di luar folder upload")
	}
	if _, err := os.Stat(abs); err != nil {
		return "", err
	}
	return abs, nil
}
