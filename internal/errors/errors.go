package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an error when an entity already exists
type ConflictError struct {
	Entity  string
	Context string // Additional context like "in this team"
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a field constraint violation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents a failed credential or token check
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents a membership or role requirement that was
// not met by the requester
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// BusinessRuleError represents a domain rule violation, e.g. touching the
// team owner's membership or referencing a resource across team boundaries
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrMembershipNotFound = &NotFoundError{Entity: "team membership"}
	ErrProjectNotFound    = &NotFoundError{Entity: "project"}
	ErrDiagramNotFound    = &NotFoundError{Entity: "diagram"}
	ErrTermNotFound       = &NotFoundError{Entity: "term"}
	ErrDomainNotFound     = &NotFoundError{Entity: "domain"}
)

// Conflict Errors
var (
	ErrLoginIDExists    = &ConflictError{Entity: "user", Context: "with this login id"}
	ErrMembershipExists = &ConflictError{Entity: "team membership", Context: "for this user"}
)

// Authorization Errors
var (
	ErrNotTeamMember = &AuthorizationError{Message: "user is not a member of this team"}
	ErrAdminRequired = &AuthorizationError{Message: "admin role required for this action"}
	ErrReadOnlyRole  = &AuthorizationError{Message: "viewer role cannot modify team resources"}
)

// Business Rule Errors
var (
	ErrOwnerImmutable       = &BusinessRuleError{Message: "team owner's membership cannot be changed"}
	ErrProjectTeamMismatch  = &BusinessRuleError{Message: "project does not belong to this team"}
	ErrDiagramScopeMismatch = &BusinessRuleError{Message: "diagram does not belong to this project"}
	ErrTermTeamMismatch     = &BusinessRuleError{Message: "term does not belong to this team"}
	ErrDomainTeamMismatch   = &BusinessRuleError{Message: "domain does not belong to this team"}
	ErrDomainInUse          = &BusinessRuleError{Message: "domain is referenced by existing terms"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid login id or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsBusinessRule checks if an error is a BusinessRuleError
func IsBusinessRule(err error) bool {
	var ruleErr *BusinessRuleError
	return errors.As(err, &ruleErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewBusinessRuleError creates a new BusinessRuleError
func NewBusinessRuleError(message string) error {
	return &BusinessRuleError{Message: message}
}
