package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushman2005/SocietyPro/internal/domain/services"
)

func TestContactSubmit(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	mail := newMailRecorder()
	svc := services.NewContactService(db, cfg, mail)

	inquiry, err := svc.Submit("Sunita Rao", "sunita@example.com", "How do I register my society?")
	assert.NoError(t, err)
	assert.NotZero(t, inquiry.ID)
	assert.Equal(t, 1, mail.inquiries)
}

func TestContactSubmitSurvivesMailFailure(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	mail := newMailRecorder()
	mail.fail = true
	svc := services.NewContactService(db, cfg, mail)

	// The inquiry is stored even when the notification cannot be sent
	inquiry, err := svc.Submit("Sunita Rao", "sunita@example.com", "Hello?")
	assert.NoError(t, err)
	assert.NotZero(t, inquiry.ID)

	rows, total, err := svc.List(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, rows, 1)
}

func TestContactListPagesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	svc := services.NewContactService(db, cfg, newMailRecorder())

	for i := 1; i <= 5; i++ {
		_, err := svc.Submit(fmt.Sprintf("Visitor %d", i), fmt.Sprintf("v%d@example.com", i), "hi")
		assert.NoError(t, err)
	}

	rows, total, err := svc.List(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Visitor 5", rows[0].Name)

	rows, _, err = svc.List(2, 3)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Visitor 1", rows[1].Name)
}
