package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/abhisek/studyhub/internal/navigation"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ValidationErrorResponse describes one invalid request field
type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ActionResponse is returned by every state-changing endpoint
type ActionResponse struct {
	Status  navigation.Status       `json:"status"`
	Code    string                  `json:"code"`
	Message string                  `json:"message,omitempty"`
	Verdict *navigation.VerdictView `json:"verdict,omitempty"`
	View    navigation.View         `json:"view"`
}

// ===== REQUEST STRUCTURES =====

// PageRequest selects the active page
type PageRequest struct {
	Page string `json:"page" binding:"required,page"`
}

// QuestionRequest asks for a new practice question
type QuestionRequest struct {
	UseExternal bool `json:"use_external"`
}

// AnswerRequest carries the chosen option, 0 for A through 3 for D
type AnswerRequest struct {
	Option *int `json:"option" binding:"required,min=0,max=3"`
}

// StartTestRequest starts a unit test of Count questions
type StartTestRequest struct {
	Count int `json:"count" binding:"omitempty,min=1,max=100"`
}

// statusFor maps an outcome to its HTTP status.
func statusFor(out navigation.Outcome) int {
	switch out.Status {
	case navigation.StatusOK, navigation.StatusInfo:
		return http.StatusOK
	case navigation.StatusExpired:
		return http.StatusConflict
	}
	if out.Code() == "invalid_selection" {
		return http.StatusUnprocessableEntity
	}
	return http.StatusConflict
}

// respondBindError writes a 400 with per-field details when err came from
// the validator.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "invalid request body",
			Details: err.Error(),
			Code:    "bad_request",
		})
		return
	}

	details := make([]ValidationErrorResponse, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, ValidationErrorResponse{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: "validation failed",
		Details: details,
		Code:    "validation_error",
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "page":
		return "must be one of guide, flashcards, practice, test, timed"
	}
	return "is invalid"
}
