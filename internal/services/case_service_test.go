package services

import (
	"testing"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/models"
	"lawfirm_backend/internal/repositories"
	"lawfirm_backend/internal/services/dto"
	"lawfirm_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCaseService(t *testing.T) (CaseService, *gorm.DB) {
	t.Helper()
	setTestConfig(t)
	db := newTestDB(t)
	svc := NewCaseService(repositories.NewCaseRepository(db), repositories.NewUserRepository(db))
	return svc, db
}

func TestCaseService_CreateOnlyAdmin(t *testing.T) {
	svc, db := newCaseService(t)

	client := mustCreateUser(t, db, "client@test.com", models.UserRoleClient)
	lawyer := mustCreateUser(t, db, "lawyer@firm.com", models.UserRoleLawyer)
	admin := mustCreateUser(t, db, "admin@firm.com", models.UserRoleAdmin)

	req := &dto.CreateCaseRequest{
		CaseNumber: "CV-2025-010",
		CaseType:   "Family Law",
		FiledDate:  "2025-03-10",
		UserID:     client.ID,
		LawyerID:   lawyer.ID,
	}

	// Юрист и клиент дела не заводят
	_, err := svc.Create(auth.Principal{ID: lawyer.ID, Role: models.UserRoleLawyer}, req)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	_, err = svc.Create(auth.Principal{ID: client.ID, Role: models.UserRoleClient}, req)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	resp, err := svc.Create(auth.Principal{ID: admin.ID, Role: models.UserRoleAdmin}, req)
	require.NoError(t, err)
	assert.Equal(t, "CV-2025-010", resp.CaseNumber)
	// Статус по умолчанию
	assert.Equal(t, models.CaseStatusActive, resp.Status)
	require.NotNil(t, resp.Lawyer)
	assert.Equal(t, lawyer.ID, resp.Lawyer.ID)
}

func TestCaseService_CreateValidatesParties(t *testing.T) {
	svc, db := newCaseService(t)

	client := mustCreateUser(t, db, "client@test.com", models.UserRoleClient)
	lawyer := mustCreateUser(t, db, "lawyer@firm.com", models.UserRoleLawyer)
	admin := auth.Principal{ID: "admin-1", Role: models.UserRoleAdmin}

	// Клиентом дела может быть только пользователь с ролью client
	_, err := svc.Create(admin, &dto.CreateCaseRequest{
		CaseNumber: "CV-2025-011",
		CaseType:   "Family Law",
		FiledDate:  "2025-03-10",
		UserID:     lawyer.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCaseClient)

	// Назначать можно только юриста
	_, err = svc.Create(admin, &dto.CreateCaseRequest{
		CaseNumber: "CV-2025-012",
		CaseType:   "Family Law",
		FiledDate:  "2025-03-10",
		UserID:     client.ID,
		LawyerID:   client.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCaseLawyer)

	// Номер дела уникален
	_, err = svc.Create(admin, &dto.CreateCaseRequest{
		CaseNumber: "CV-2025-013",
		CaseType:   "Family Law",
		FiledDate:  "2025-03-10",
		UserID:     client.ID,
	})
	require.NoError(t, err)
	_, err = svc.Create(admin, &dto.CreateCaseRequest{
		CaseNumber: "CV-2025-013",
		CaseType:   "Criminal Defense",
		FiledDate:  "2025-04-01",
		UserID:     client.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrCaseNumberTaken)
}

func TestCaseService_GetForeignCaseIsNotFound(t *testing.T) {
	svc, db := newCaseService(t)

	client := mustCreateUser(t, db, "client@test.com", models.UserRoleClient)
	lawyerA := mustCreateUser(t, db, "a@firm.com", models.UserRoleLawyer)
	lawyerB := mustCreateUser(t, db, "b@firm.com", models.UserRoleLawyer)
	caseSummary := mustCreateCase(t, db, "CV-2025-001", client.ID, &lawyerA.ID)

	// Чужое дело неотличимо от несуществующего
	_, err := svc.Get(auth.Principal{ID: lawyerB.ID, Role: models.UserRoleLawyer}, caseSummary.ID)
	assert.ErrorIs(t, err, apperrors.ErrCaseNotFound)

	resp, err := svc.Get(auth.Principal{ID: lawyerA.ID, Role: models.UserRoleLawyer}, caseSummary.ID)
	require.NoError(t, err)
	assert.Equal(t, "CV-2025-001", resp.CaseNumber)
}

func TestCaseService_UpdateReassignLawyerAdminOnly(t *testing.T) {
	svc, db := newCaseService(t)

	client := mustCreateUser(t, db, "client@test.com", models.UserRoleClient)
	lawyerA := mustCreateUser(t, db, "a@firm.com", models.UserRoleLawyer)
	lawyerB := mustCreateUser(t, db, "b@firm.com", models.UserRoleLawyer)
	caseSummary := mustCreateCase(t, db, "CV-2025-001", client.ID, &lawyerA.ID)

	principalA := auth.Principal{ID: lawyerA.ID, Role: models.UserRoleLawyer}

	// Назначенный юрист правит статус
	closed := models.CaseStatusClosed
	resp, err := svc.Update(principalA, caseSummary.ID, &dto.UpdateCaseRequest{Status: &closed})
	require.NoError(t, err)
	assert.Equal(t, models.CaseStatusClosed, resp.Status)

	// Но не переназначает юриста
	_, err = svc.Update(principalA, caseSummary.ID, &dto.UpdateCaseRequest{LawyerID: &lawyerB.ID})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// Админ переназначает и снимает юриста
	adminPrincipal := auth.Principal{ID: "admin-1", Role: models.UserRoleAdmin}
	resp, err = svc.Update(adminPrincipal, caseSummary.ID, &dto.UpdateCaseRequest{LawyerID: &lawyerB.ID})
	require.NoError(t, err)
	require.NotNil(t, resp.Lawyer)
	assert.Equal(t, lawyerB.ID, resp.Lawyer.ID)

	empty := ""
	resp, err = svc.Update(adminPrincipal, caseSummary.ID, &dto.UpdateCaseRequest{LawyerID: &empty})
	require.NoError(t, err)
	assert.Nil(t, resp.Lawyer)
}

func TestCaseService_DeleteRequiresMutationRight(t *testing.T) {
	svc, db := newCaseService(t)

	client := mustCreateUser(t, db, "client@test.com", models.UserRoleClient)
	lawyer := mustCreateUser(t, db, "lawyer@firm.com", models.UserRoleLawyer)
	caseSummary := mustCreateCase(t, db, "CV-2025-001", client.ID, &lawyer.ID)

	require.NoError(t, svc.Delete(auth.Principal{ID: lawyer.ID, Role: models.UserRoleLawyer}, caseSummary.ID))

	adminPrincipal := auth.Principal{ID: "admin-1", Role: models.UserRoleAdmin}
	err := svc.Delete(adminPrincipal, caseSummary.ID)
	assert.ErrorIs(t, err, apperrors.ErrCaseNotFound)
}
