package api

import (
	"net/http"

	"github.com/bitmark-inc/cityworks-api/analysis"
	"github.com/bitmark-inc/cityworks-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid authorization format",
		1001: "invalid token",
		1002: "permission denied",
		1003: "the account has been deactivated",
		1004: "invalid email or password",
		1005: store.ErrRefreshTokenInvalid.Error(),

		1010: "invalid parameters",

		1100: store.ErrEmailTaken.Error(),
		1101: store.ErrUserNotFound.Error(),
		1102: "current password is incorrect",

		1200: store.ErrIssueNotFound.Error(),
		1201: "the issue already has a task",

		1300: store.ErrTaskNotFound.Error(),
		1301: store.ErrTaskStatusConflict.Error(),
		1302: "invalid task status transition",

		1400: store.ErrRoadNotFound.Error(),

		1500: store.ErrIntersectionNotFound.Error(),
		1501: store.ErrAnalysisNotFound.Error(),

		1600: store.ErrPlanNotFound.Error(),
		1601: store.ErrPlanStatusConflict.Error(),
		1602: "invalid decongestion plan status transition",
		1603: "only draft plans can be edited",

		1700: store.ErrSessionNotFound.Error(),
		1701: store.ErrAnnotationNotFound.Error(),
		1702: "the planning session has been archived",
		1703: "the owner cannot leave the planning session",
		1704: "invalid number of points for the annotation kind",
		1705: "not a member of the planning session",

		1800: store.ErrNeighborhoodNotFound.Error(),
		1801: store.ErrNeighborhoodExists.Error(),
		1802: store.ErrPropertyNotFound.Error(),
		1803: analysis.ErrInsufficientData.Error(),

		1900: store.ErrReportNotFound.Error(),
		1901: "report has not been exported",
		1902: store.ErrReportInProgress.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1000)
	errorInvalidToken               = errorJSON(1001)
	errorPermissionDenied           = errorJSON(1002)
	errorAccountInactive            = errorJSON(1003)
	errorInvalidCredentials         = errorJSON(1004)
	errorInvalidRefreshToken        = errorJSON(1005)

	errorInvalidParameters = errorJSON(1010)

	errorEmailTaken        = errorJSON(1100)
	errorUserNotFound      = errorJSON(1101)
	errorIncorrectPassword = errorJSON(1102)

	errorIssueNotFound = errorJSON(1200)
	errorIssueHasTask  = errorJSON(1201)

	errorTaskNotFound       = errorJSON(1300)
	errorTaskStatusConflict = errorJSON(1301)
	errorTaskTransition     = errorJSON(1302)

	errorRoadNotFound = errorJSON(1400)

	errorIntersectionNotFound = errorJSON(1500)
	errorAnalysisNotFound     = errorJSON(1501)

	errorPlanNotFound       = errorJSON(1600)
	errorPlanStatusConflict = errorJSON(1601)
	errorPlanTransition     = errorJSON(1602)
	errorPlanNotEditable    = errorJSON(1603)

	errorSessionNotFound    = errorJSON(1700)
	errorAnnotationNotFound = errorJSON(1701)
	errorSessionArchived    = errorJSON(1702)
	errorOwnerCannotLeave   = errorJSON(1703)
	errorInvalidAnnotation  = errorJSON(1704)
	errorNotSessionMember   = errorJSON(1705)

	errorNeighborhoodNotFound = errorJSON(1800)
	errorNeighborhoodExists   = errorJSON(1801)
	errorPropertyNotFound     = errorJSON(1802)
	errorInsufficientData     = errorJSON(1803)

	errorReportNotFound    = errorJSON(1900)
	errorReportNotExported = errorJSON(1901)
	errorReportInProgress  = errorJSON(1902)
)

type storeError struct {
	status   int
	response ErrorResponse
}

// knownErrors maps sentinel errors to their http status and error body
var knownErrors = map[error]storeError{
	store.ErrRefreshTokenInvalid:  {http.StatusUnauthorized, errorInvalidRefreshToken},
	store.ErrEmailTaken:           {http.StatusConflict, errorEmailTaken},
	store.ErrUserNotFound:         {http.StatusNotFound, errorUserNotFound},
	store.ErrIssueNotFound:        {http.StatusNotFound, errorIssueNotFound},
	store.ErrIssueHasTask:         {http.StatusConflict, errorIssueHasTask},
	store.ErrTaskNotFound:         {http.StatusNotFound, errorTaskNotFound},
	store.ErrTaskStatusConflict:   {http.StatusConflict, errorTaskStatusConflict},
	store.ErrRoadNotFound:         {http.StatusNotFound, errorRoadNotFound},
	store.ErrIntersectionNotFound: {http.StatusNotFound, errorIntersectionNotFound},
	store.ErrAnalysisNotFound:     {http.StatusNotFound, errorAnalysisNotFound},
	store.ErrPlanNotFound:         {http.StatusNotFound, errorPlanNotFound},
	store.ErrPlanStatusConflict:   {http.StatusConflict, errorPlanStatusConflict},
	store.ErrSessionNotFound:      {http.StatusNotFound, errorSessionNotFound},
	store.ErrAnnotationNotFound:   {http.StatusNotFound, errorAnnotationNotFound},
	store.ErrNeighborhoodNotFound: {http.StatusNotFound, errorNeighborhoodNotFound},
	store.ErrNeighborhoodExists:   {http.StatusConflict, errorNeighborhoodExists},
	store.ErrPropertyNotFound:     {http.StatusNotFound, errorPropertyNotFound},
	store.ErrReportNotFound:       {http.StatusNotFound, errorReportNotFound},
	store.ErrReportInProgress:     {http.StatusConflict, errorReportInProgress},
	analysis.ErrInsufficientData:  {http.StatusUnprocessableEntity, errorInsufficientData},
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int64  `json:"code"`
	Message string `json:"error"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
