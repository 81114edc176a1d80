package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/lunaalencar/juridico-api/internal/jobs"
	"github.com/lunaalencar/juridico-api/internal/models"
	"github.com/lunaalencar/juridico-api/pkg/logger"
)

type AuditService struct {
	db     *gorm.DB
	worker *jobs.Worker
}

func NewAuditService(db *gorm.DB, worker *jobs.Worker) *AuditService {
	return &AuditService{db: db, worker: worker}
}

// Log records an audit entry
func (s *AuditService) Log(ctx context.Context, userID uint, action, entity string, entityID uint, details, ip, userAgent string) error {
	logEntry := &models.AuditLog{
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
		IPAddress: ip,
		UserAgent: userAgent,
	}
	return s.db.WithContext(ctx).Create(logEntry).Error
}

// LogAsync records an audit entry off the request path. Audit writes never
// block or fail a business operation.
func (s *AuditService) LogAsync(userID uint, action, entity string, entityID uint, details, ip, userAgent string) {
	if s.worker == nil {
		if err := s.Log(context.Background(), userID, action, entity, entityID, details, ip, userAgent); err != nil {
			logger.Warn("audit log failed", "action", action, "error", err)
		}
		return
	}
	s.worker.EnqueueAsync(func(ctx context.Context) error {
		if err := s.Log(ctx, userID, action, entity, entityID, details, ip, userAgent); err != nil {
			logger.Warn("audit log failed", "action", action, "error", err)
		}
		return nil
	})
}

// List retrieves audit logs, newest first
func (s *AuditService) List(ctx context.Context, limit, offset int) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog
	var total int64

	if err := s.db.WithContext(ctx).Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := s.db.WithContext(ctx).Preload("User").Order("created_at desc").Limit(limit).Offset(offset).Find(&logs)
	return logs, total, result.Error
}
