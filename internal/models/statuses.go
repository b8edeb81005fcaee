package models

type UserRole string
type CaseStatus string
type DocumentCategory string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleLawyer UserRole = "lawyer"
	UserRoleClient UserRole = "client"

	CaseStatusActive  CaseStatus = "active"
	CaseStatusClosed  CaseStatus = "closed"
	CaseStatusSettled CaseStatus = "settled"
	CaseStatusPending CaseStatus = "pending"

	DocumentMedicalRecords   DocumentCategory = "Medical Records"
	DocumentEmploymentRecords DocumentCategory = "Employment Records"
	DocumentInsuranceInfo    DocumentCategory = "Insurance Information"
	DocumentSignedAffidavit  DocumentCategory = "Signed Affidavit"
	DocumentPhotoEvidence    DocumentCategory = "Photo Evidence"
)

// AllUserRoles - закрытый список ролей
var AllUserRoles = []UserRole{UserRoleAdmin, UserRoleLawyer, UserRoleClient}

// AllCaseStatuses - закрытый список статусов дела
var AllCaseStatuses = []CaseStatus{CaseStatusActive, CaseStatusClosed, CaseStatusSettled, CaseStatusPending}

// AllDocumentCategories - фиксированный перечень категорий документов
var AllDocumentCategories = []DocumentCategory{
	DocumentMedicalRecords,
	DocumentEmploymentRecords,
	DocumentInsuranceInfo,
	DocumentSignedAffidavit,
	DocumentPhotoEvidence,
}

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleLawyer, UserRoleClient:
		return true
	}
	return false
}

func (s CaseStatus) Valid() bool {
	switch s {
	case CaseStatusActive, CaseStatusClosed, CaseStatusSettled, CaseStatusPending:
		return true
	}
	return false
}

func (c DocumentCategory) Valid() bool {
	for _, known := range AllDocumentCategories {
		if c == known {
			return true
		}
	}
	return false
}
