package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestPollVoteAndTally(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	first := seedResident(t, db, cfg, admin.ID, "first@example.com")
	second := seedResident(t, db, cfg, admin.ID, "second@example.com")
	svc := services.NewPollService(db, cfg)

	poll, err := svc.Create(admin.ID, "Repaint the lobby?", "Yes", "No")
	assert.NoError(t, err)

	assert.NoError(t, svc.Vote(first.ID, poll.ID, models.PollChoiceOption1))
	assert.NoError(t, svc.Vote(second.ID, poll.ID, models.PollChoiceOption2))

	results, err := svc.ListByAdmin(admin.ID)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].Votes1)
	assert.Equal(t, int64(1), results[0].Votes2)
}

func TestPollRepeatVoteIsSilentlyIgnored(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewPollService(db, cfg)

	poll, err := svc.Create(admin.ID, "Repaint the lobby?", "Yes", "No")
	assert.NoError(t, err)

	assert.NoError(t, svc.Vote(resident.ID, poll.ID, models.PollChoiceOption1))
	// A second vote neither errors nor flips the recorded choice
	assert.NoError(t, svc.Vote(resident.ID, poll.ID, models.PollChoiceOption2))

	results, err := svc.ListForResident(resident.ID)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].Votes1)
	assert.Equal(t, int64(0), results[0].Votes2)
	assert.True(t, results[0].HasVoted)
}

func TestPollVoteValidation(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	resident := seedResident(t, db, cfg, admin.ID, "rahul@example.com")
	svc := services.NewPollService(db, cfg)

	poll, err := svc.Create(admin.ID, "Repaint the lobby?", "Yes", "No")
	assert.NoError(t, err)

	err = svc.Vote(resident.ID, poll.ID, "option3")
	assert.EqualError(t, err, "choice must be option1 or option2")

	_, err = svc.Close(admin.ID, poll.ID)
	assert.NoError(t, err)

	err = svc.Vote(resident.ID, poll.ID, models.PollChoiceOption1)
	assert.EqualError(t, err, "poll is closed")
}

func TestPollScopedToSociety(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	admin := seedSociety(t, db, cfg, "admin@greenwood.in")
	other := seedSociety(t, db, cfg, "other@maplewood.in")
	outsider := seedResident(t, db, cfg, other.ID, "outsider@example.com")
	svc := services.NewPollService(db, cfg)

	poll, err := svc.Create(admin.ID, "Repaint the lobby?", "Yes", "No")
	assert.NoError(t, err)

	// A resident of another society cannot see or vote on the poll
	err = svc.Vote(outsider.ID, poll.ID, models.PollChoiceOption1)
	assert.EqualError(t, err, "poll not found")

	results, err := svc.ListForResident(outsider.ID)
	assert.NoError(t, err)
	assert.Empty(t, results)

	_, err = svc.Close(other.ID, poll.ID)
	assert.EqualError(t, err, "poll not found")
}
