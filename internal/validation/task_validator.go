package validation

import (
	"todolist/internal/config"
)

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldID          = "id"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured length limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateName validates a task name. The value is checked as given; callers store it untrimmed.
func (tv *TaskValidator) ValidateName(name string) error {
	return tv.validateText(FieldName, name, tv.validator.NameMaxLength())
}

// ValidateDescription validates a task description
func (tv *TaskValidator) ValidateDescription(description string) error {
	return tv.validateText(FieldDescription, description, tv.validator.DescriptionMaxLength())
}

func (tv *TaskValidator) validateText(field, value string, maxLen int) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(value) {
		validationError.AddRequiredError(field)
		return validationError
	}

	if !tv.validator.IsValidUTF8(value) {
		validationError.AddInvalidCharacterError(field, value)
	}

	if !tv.validator.IsValidStringLength(value, 1, maxLen) {
		validationError.AddInvalidLengthError(field, value, 0, maxLen)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskForCreation validates the fields of a new task
func (tv *TaskValidator) ValidateTaskForCreation(name, description string) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateName(name))
	validationError.Merge(tv.ValidateDescription(description))

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskForUpdate validates a task for update
func (tv *TaskValidator) ValidateTaskForUpdate(id, name, description string) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateTaskID(id))
	validationError.Merge(tv.ValidateName(name))
	validationError.Merge(tv.ValidateDescription(description))

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID. Any non-blank ID is acceptable; unknown IDs are a lookup concern.
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError(FieldID)
		return validationError
	}
	return nil
}
