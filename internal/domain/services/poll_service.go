package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
)

// PollResult is a poll with its vote tallies, plus the acting resident's
// voting state when listed for a resident
type PollResult struct {
	Poll     models.Poll `json:"poll"`
	Votes1   int64       `json:"votes_option1"`
	Votes2   int64       `json:"votes_option2"`
	HasVoted bool        `json:"has_voted"`
}

// InterfacePollService defines the poll interface
type InterfacePollService interface {
	Create(adminID uint, question, option1, option2 string) (*models.Poll, error)
	Close(adminID, pollID uint) (*models.Poll, error)
	ListByAdmin(adminID uint) ([]PollResult, error)
	ListForResident(residentID uint) ([]PollResult, error)
	Vote(residentID, pollID uint, choice string) error
}

// PollService provides poll management and voting. Tallies and has_voted
// are always derived from the vote table on read, never stored.
type PollService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPollService creates a new poll service
func NewPollService(db *gorm.DB, cfg *config.Config) InterfacePollService {
	return &PollService{
		DB:     db,
		Config: cfg,
	}
}

// Create opens a new two-option poll for the society
func (s *PollService) Create(adminID uint, question, option1, option2 string) (*models.Poll, error) {
	poll := &models.Poll{
		Question: question,
		Option1:  option1,
		Option2:  option2,
		Status:   models.PollStatusActive,
		AdminID:  adminID,
	}
	if err := s.DB.Create(poll).Error; err != nil {
		return nil, err
	}
	return poll, nil
}

// Close stops a poll from accepting further votes
func (s *PollService) Close(adminID, pollID uint) (*models.Poll, error) {
	var poll models.Poll
	err := s.DB.Where("id = ? AND admin_id = ?", pollID, adminID).First(&poll).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("poll not found")
		}
		return nil, err
	}
	poll.Status = models.PollStatusClosed
	if err := s.DB.Save(&poll).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

// tally counts the votes for both options of one poll
func (s *PollService) tally(pollID uint) (int64, int64, error) {
	var votes1, votes2 int64
	err := s.DB.Model(&models.PollVote{}).
		Where("poll_id = ? AND choice = ?", pollID, models.PollChoiceOption1).
		Count(&votes1).Error
	if err != nil {
		return 0, 0, err
	}
	err = s.DB.Model(&models.PollVote{}).
		Where("poll_id = ? AND choice = ?", pollID, models.PollChoiceOption2).
		Count(&votes2).Error
	return votes1, votes2, err
}

// ListByAdmin lists the society's polls with tallies, newest first
func (s *PollService) ListByAdmin(adminID uint) ([]PollResult, error) {
	var polls []models.Poll
	if err := s.DB.Where("admin_id = ?", adminID).Order("id DESC").Find(&polls).Error; err != nil {
		return nil, err
	}

	results := make([]PollResult, 0, len(polls))
	for _, poll := range polls {
		votes1, votes2, err := s.tally(poll.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, PollResult{Poll: poll, Votes1: votes1, Votes2: votes2})
	}
	return results, nil
}

// ListForResident lists the polls of the resident's society with tallies
// and the resident's derived has_voted flag
func (s *PollService) ListForResident(residentID uint) ([]PollResult, error) {
	var resident models.Resident
	if err := s.DB.First(&resident, residentID).Error; err != nil {
		return nil, err
	}

	var polls []models.Poll
	if err := s.DB.Where("admin_id = ?", resident.AdminID).Order("id DESC").Find(&polls).Error; err != nil {
		return nil, err
	}

	results := make([]PollResult, 0, len(polls))
	for _, poll := range polls {
		votes1, votes2, err := s.tally(poll.ID)
		if err != nil {
			return nil, err
		}

		var voted int64
		err = s.DB.Model(&models.PollVote{}).
			Where("poll_id = ? AND user_id = ?", poll.ID, residentID).
			Count(&voted).Error
		if err != nil {
			return nil, err
		}

		results = append(results, PollResult{
			Poll:     poll,
			Votes1:   votes1,
			Votes2:   votes2,
			HasVoted: voted > 0,
		})
	}
	return results, nil
}

// Vote records the resident's choice on a poll of their own society. A
// second attempt is silently ignored: no error, no overwrite. The unique
// (user_id, poll_id) index backs the in-transaction check against races.
func (s *PollService) Vote(residentID, pollID uint, choice string) error {
	if choice != models.PollChoiceOption1 && choice != models.PollChoiceOption2 {
		return errors.New("choice must be option1 or option2")
	}

	var resident models.Resident
	if err := s.DB.First(&resident, residentID).Error; err != nil {
		return err
	}

	var poll models.Poll
	err := s.DB.Where("id = ? AND admin_id = ?", pollID, resident.AdminID).First(&poll).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("poll not found")
		}
		return err
	}
	if poll.Status != models.PollStatusActive {
		return errors.New("poll is closed")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		err := tx.Model(&models.PollVote{}).
			Where("user_id = ? AND poll_id = ?", residentID, pollID).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			// Already voted, nothing to do
			return nil
		}
		return tx.Create(&models.PollVote{
			UserID: residentID,
			PollID: pollID,
			Choice: choice,
		}).Error
	})
	if err == nil {
		return nil
	}

	// A concurrent vote may have hit the unique index between the check
	// and the insert; that still counts as "already voted".
	var existing int64
	if countErr := s.DB.Model(&models.PollVote{}).
		Where("user_id = ? AND poll_id = ?", residentID, pollID).
		Count(&existing).Error; countErr == nil && existing > 0 {
		return nil
	}
	return err
}
