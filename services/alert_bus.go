package services

import (
	"fmt"
	"time"

	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitReportReady records that a health report finished and notifies the
// user's open websockets and registered devices. Safe to call before
// InitAlertDeps; it just does nothing.
func EmitReportReady(userID uint, score float64) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{
		UserID:    userID,
		Type:      "report",
		Message:   fmt.Sprintf("건강 설문 결과가 준비되었습니다. 객관적 점수: %.0f점", score),
		CreatedAt: time.Now(),
	}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "report.ready",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "건강 리포트 도착", a.Message, map[string]string{
			"type": a.Type, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}
