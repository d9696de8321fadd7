package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "absensiku_backend/internals/features/notifications/model"
)

// Tipe notifikasi yang dikirim engine
const (
	TypeGeneral        = "general"
	TypeBreakViolation = "break_violation"
	TypeAutoLogout     = "auto_logout"
	TypeLeaveApproved  = "leave_approved"
	TypeLeaveRejected  = "leave_rejected"
	TypeCompOffAdded   = "comp_off_added"
)

// Create menyimpan notifikasi untuk user. Best-effort: kegagalan hanya
// dicatat di log dan tidak menggagalkan operasi bisnis pemanggil.
// db boleh berupa transaksi aktif maupun handle biasa.
func Create(db *gorm.DB, userID uuid.UUID, ntype, title, message string, actionURL *string) {
	n := notifModel.NotificationModel{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      ntype,
		Title:     title,
		Message:   message,
		ActionURL: actionURL,
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[NOTIF ERROR] gagal membuat notifikasi user=%s type=%s: %v", userID, ntype, err)
	}
}
