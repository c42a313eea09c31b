package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"metalab_backend/internals/configs"
	"metalab_backend/internals/features/users/auth/model"
)

// StartSessionCleanupScheduler menghapus sesi kadaluarsa secara berkala.
// Jadwal diatur lewat SESSION_CLEANUP_CRON (default tiap jam).
func StartSessionCleanupScheduler(db *gorm.DB) *cron.Cron {
	schedule := configs.GetEnv("SESSION_CLEANUP_CRON", "0 * * * *")

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		log.Println("[CLEANUP] Menjalankan pembersihan sesi kadaluarsa...")

		res := db.Where("expired_at < ?", time.Now()).Delete(&model.SessionModel{})
		if res.Error != nil {
			log.Printf("[CLEANUP ERROR] Gagal hapus sesi: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("[CLEANUP] %d sesi kadaluarsa dihapus", res.RowsAffected)
		} else {
			log.Println("[CLEANUP] Tidak ada sesi yang memenuhi syarat dihapus")
		}
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] Jadwal cron tidak valid (%s): %v", schedule, err)
		return c
	}

	c.Start()
	return c
}
