package response

import (
	"errors"
	"net/http"

	"github.com/sitehub/sitehub-backend-go/internal/domain/attendance"
	"github.com/sitehub/sitehub-backend-go/internal/domain/auth"
	"github.com/sitehub/sitehub-backend-go/internal/domain/client"
	"github.com/sitehub/sitehub-backend-go/internal/domain/dailylog"
	"github.com/sitehub/sitehub-backend-go/internal/domain/employee"
	"github.com/sitehub/sitehub-backend-go/internal/domain/file"
	"github.com/sitehub/sitehub-backend-go/internal/domain/payroll"
	"github.com/sitehub/sitehub-backend-go/internal/domain/project"
	"github.com/sitehub/sitehub-backend-go/internal/domain/quote"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timeentry"
	"github.com/sitehub/sitehub-backend-go/internal/domain/timesheet"
	"github.com/sitehub/sitehub-backend-go/internal/domain/user"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrWrongPassword):
		Unauthorized(w, "Current password is incorrect")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrOAuthEmailUnknown):
		Forbidden(w, "No account exists for this Google email")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrPermissionRequired):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own account", nil)
	case errors.Is(err, user.ErrRefreshTokenNotFound):
		Unauthorized(w, "Invalid token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrUserAlreadyLinked):
		Conflict(w, "User account is already linked to another employee")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrContactNotFound):
		NotFound(w, "Client contact not found")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectNumberExists):
		Conflict(w, "Project number already exists")
	case errors.Is(err, project.ErrClientNotFound):
		NotFound(w, "Referenced client not found")

	// Daily log domain errors
	case errors.Is(err, dailylog.ErrDailyLogNotFound):
		NotFound(w, "Daily log not found")
	case errors.Is(err, dailylog.ErrProjectNotFound):
		NotFound(w, "Referenced project not found")

	// Quote domain errors
	case errors.Is(err, quote.ErrQuoteNotFound):
		NotFound(w, "Quote not found")
	case errors.Is(err, quote.ErrClientNotFound):
		NotFound(w, "Referenced client not found")
	case errors.Is(err, quote.ErrLineTotalMismatch):
		BadRequest(w, "Line item total does not match quantity * unit price", nil)
	case errors.Is(err, quote.ErrInvalidStatus):
		BadRequest(w, "Invalid quote status", nil)

	// File domain errors
	case errors.Is(err, file.ErrFileNotFound):
		NotFound(w, "File not found")
	case errors.Is(err, file.ErrFileTooLarge):
		BadRequest(w, "File exceeds the maximum upload size", nil)
	case errors.Is(err, file.ErrNoFilesUploaded):
		BadRequest(w, "No files uploaded", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadySignedIn):
		Conflict(w, "Employee already has an open sign-in for this date")
	case errors.Is(err, attendance.ErrAlreadySignedOut):
		Conflict(w, "Sign-in record already has a sign-out time")
	case errors.Is(err, attendance.ErrSignInNotFound):
		NotFound(w, "Sign-in record not found")
	case errors.Is(err, attendance.ErrNoneToSignIn):
		Conflict(w, "All requested employees already have open sign-ins")
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Referenced employee not found")
	case errors.Is(err, attendance.ErrSignOutBeforeIn):
		BadRequest(w, "Sign-out time must be after the sign-in time", nil)

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrHoursOutOfRange):
		BadRequest(w, "Hours must be greater than 0 and at most 24", nil)
	case errors.Is(err, timeentry.ErrNotSignedOut):
		BadRequest(w, "Sign-in record has no sign-out time yet", nil)
	case errors.Is(err, timeentry.ErrSignInNotFound):
		NotFound(w, "Referenced sign-in record not found")
	case errors.Is(err, timeentry.ErrEmployeeNotFound):
		NotFound(w, "Referenced employee not found")
	case errors.Is(err, timeentry.ErrProjectNotFound):
		NotFound(w, "Referenced project not found")
	case errors.Is(err, timeentry.ErrAlreadyProcessed):
		Conflict(w, "Time entry has already been approved or rejected")
	case errors.Is(err, timeentry.ErrTimesheetLocked):
		Conflict(w, "Time entry belongs to an approved timesheet")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrTimesheetLocked):
		Conflict(w, "Cannot edit approved timesheet")
	case errors.Is(err, timesheet.ErrDeleteNonDraft):
		Conflict(w, "Only draft timesheets can be deleted")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoEntriesForProject):
		NotFound(w, "No time entries found for this project in the given range")
	case errors.Is(err, payroll.ErrInvalidDateRange):
		BadRequest(w, "end date must not be before start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
