package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// InterfaceNoticeService defines the notice board interface
type InterfaceNoticeService interface {
	Create(adminID uint, title, content string) (*models.Notice, error)
	Update(adminID, noticeID uint, title, content string) (*models.Notice, error)
	Delete(adminID, noticeID uint) error
	ListByAdmin(adminID uint) ([]models.Notice, error)
	ListForResident(residentID uint) ([]models.Notice, error)
}

// NoticeService provides the notice board operations
type NoticeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewNoticeService creates a new notice service
func NewNoticeService(db *gorm.DB, cfg *config.Config) InterfaceNoticeService {
	return &NoticeService{
		DB:     db,
		Config: cfg,
	}
}

// Create publishes a notice for the acting admin's society
func (s *NoticeService) Create(adminID uint, title, content string) (*models.Notice, error) {
	notice := &models.Notice{
		Title:   title,
		Content: content,
		AdminID: adminID,
	}
	if err := s.DB.Create(notice).Error; err != nil {
		return nil, err
	}
	return notice, nil
}

// getOwned loads a notice only when the acting admin published it
func (s *NoticeService) getOwned(adminID, noticeID uint) (*models.Notice, error) {
	var notice models.Notice
	err := s.DB.Where("id = ? AND admin_id = ?", noticeID, adminID).First(&notice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("notice not found")
		}
		return nil, err
	}
	return &notice, nil
}

// Update edits one of the acting admin's notices
func (s *NoticeService) Update(adminID, noticeID uint, title, content string) (*models.Notice, error) {
	notice, err := s.getOwned(adminID, noticeID)
	if err != nil {
		return nil, err
	}
	notice.Title = title
	notice.Content = content
	if err := s.DB.Save(notice).Error; err != nil {
		return nil, err
	}
	return notice, nil
}

// Delete removes one of the acting admin's notices
func (s *NoticeService) Delete(adminID, noticeID uint) error {
	notice, err := s.getOwned(adminID, noticeID)
	if err != nil {
		return err
	}
	return s.DB.Delete(notice).Error
}

// ListByAdmin lists the society's notices, newest first
func (s *NoticeService) ListByAdmin(adminID uint) ([]models.Notice, error) {
	var notices []models.Notice
	err := s.DB.Where("admin_id = ?", adminID).Order("id DESC").Find(&notices).Error
	return notices, err
}

// ListForResident lists only the notices of the resident's own society
func (s *NoticeService) ListForResident(residentID uint) ([]models.Notice, error) {
	var resident models.Resident
	if err := s.DB.First(&resident, residentID).Error; err != nil {
		return nil, err
	}
	return s.ListByAdmin(resident.AdminID)
}
