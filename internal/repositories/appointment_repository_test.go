package repositories

import (
	"testing"
	"time"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateAppointment(t *testing.T, repo AppointmentRepository, lawyerID *string) *models.Appointment {
	t.Helper()
	appointment := &models.Appointment{
		LawyerID:      lawyerID,
		Name:          "John Walk-in",
		Email:         "john@example.com",
		ServiceNeeded: "Consultation",
		PreferredDate: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		PreferredTime: "14:30",
	}
	require.NoError(t, repo.Create(appointment))
	return appointment
}

func TestAppointmentRepository_FindPreloadsLawyer(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)

	lawyer := mustCreateUser(t, db, "lawyer@firm.com", models.UserRoleLawyer)
	appointment := mustCreateAppointment(t, repo, &lawyer.ID)

	found, err := repo.FindByID(appointment.ID, auth.AllowAll)
	require.NoError(t, err)
	require.NotNil(t, found.Lawyer)
	assert.Equal(t, lawyer.Email, found.Lawyer.Email)

	all, err := repo.FindAll(AppointmentFilter{}, auth.AllowAll)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Lawyer)
	assert.Equal(t, lawyer.ID, all[0].Lawyer.ID)
}

func TestAppointmentRepository_UpdateClearsLawyer(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)

	lawyer := mustCreateUser(t, db, "lawyer@firm.com", models.UserRoleLawyer)
	appointment := mustCreateAppointment(t, repo, &lawyer.ID)

	// Запись перечитана с предзагруженным юристом, как в сервисном слое
	found, err := repo.FindByID(appointment.ID, auth.AllowAll)
	require.NoError(t, err)
	require.NotNil(t, found.Lawyer)

	found.LawyerID = nil
	require.NoError(t, repo.Update(found))

	reloaded, err := repo.FindByID(appointment.ID, auth.AllowAll)
	require.NoError(t, err)
	assert.Nil(t, reloaded.LawyerID)
	assert.Nil(t, reloaded.Lawyer)
}
