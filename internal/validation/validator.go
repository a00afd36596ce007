package validation

import (
	"regexp"
	"strings"

	"surveyforge/internal/domain"
	"surveyforge/internal/dto"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateSurveyRequest validates the create survey request
func (v *Validator) ValidateCreateSurveyRequest(req *dto.CreateSurveyRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, domain.NewMissingFieldError("title"))
	}
	if req.Status != "" && !domain.SurveyStatus(req.Status).IsValid() {
		errs = append(errs, domain.NewInvalidFormatError("status", req.Status))
	}

	return errs
}

// ValidateUpdateSurveyRequest validates the update survey request
func (v *Validator) ValidateUpdateSurveyRequest(req *dto.UpdateSurveyRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs = append(errs, domain.NewMissingFieldError("title"))
	}
	if req.Status != nil && !domain.SurveyStatus(*req.Status).IsValid() {
		errs = append(errs, domain.NewInvalidFormatError("status", *req.Status))
	}

	return errs
}

// ValidateQuestionType validates a question type parameter
func (v *Validator) ValidateQuestionType(questionType string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(questionType) == "" {
		errs = append(errs, domain.NewMissingFieldError("type"))
	} else if !domain.QuestionType(questionType).IsValid() {
		errs = append(errs, domain.NewInvalidFormatError("type", questionType))
	}

	return errs
}

// ValidateReorderRequest validates the question reorder request. An empty
// destination is legal; it makes the reorder a no-op.
func (v *Validator) ValidateReorderRequest(req *dto.ReorderQuestionsRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.SourceID) == "" {
		errs = append(errs, domain.NewMissingFieldError("source_id"))
	}

	return errs
}

// ValidateAddUserRequest validates the add user request
func (v *Validator) ValidateAddUserRequest(req *dto.AddUserRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, domain.NewMissingFieldError("name"))
	}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	} else if !emailRegex.MatchString(req.Email) {
		errs = append(errs, domain.NewInvalidFormatError("email", req.Email))
	}
	if strings.TrimSpace(req.Role) == "" {
		errs = append(errs, domain.NewMissingFieldError("role"))
	} else if !domain.Role(req.Role).IsValid() {
		errs = append(errs, domain.NewInvalidFormatError("role", req.Role))
	}

	return errs
}

// ValidateGenerateRequest validates the AI generation request
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateSurveyRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Prompt) == "" {
		errs = append(errs, domain.NewMissingFieldError("prompt"))
	} else if len(req.Prompt) > 2000 {
		errs = append(errs, domain.NewOutOfRangeError("prompt", len(req.Prompt), 1, 2000))
	}

	return errs
}

// ValidateSubmitResponseRequest validates a response submission
func (v *Validator) ValidateSubmitResponseRequest(req *dto.SubmitResponseRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if len(req.Answers) == 0 {
		errs = append(errs, domain.NewMissingFieldError("answers"))
	}

	return errs
}
