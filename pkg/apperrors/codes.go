package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeCaseNotFound        ErrorCode = "CASE_NOT_FOUND"
	CodeCaseUpdateNotFound  ErrorCode = "CASE_UPDATE_NOT_FOUND"
	CodeDocumentNotFound    ErrorCode = "DOCUMENT_NOT_FOUND"
	CodeAppointmentNotFound ErrorCode = "APPOINTMENT_NOT_FOUND"
	CodeMessageNotFound     ErrorCode = "MESSAGE_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeCaseNumberTaken    ErrorCode = "CASE_NUMBER_TAKEN"
	CodeInvalidCaseClient  ErrorCode = "INVALID_CASE_CLIENT"
	CodeInvalidCaseLawyer  ErrorCode = "INVALID_CASE_LAWYER"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
