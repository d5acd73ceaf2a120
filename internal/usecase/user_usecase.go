// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vms/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to register a new staff account.
// The password is generated server side and mailed to the new user.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      entity.Role
}

// LoginInput defines the data required for a user to log in.
// Identifier carries either the email address or the phone number.
type LoginInput struct {
	Identifier string
	Password   string
}

// UpdateUserInput defines the data for editing an existing user's profile.
// Role is optional; changing it requires an administrator actor.
type UpdateUserInput struct {
	TargetID  uuid.UUID
	ActorID   uuid.UUID
	ActorRole entity.Role
	FirstName string
	LastName  string
	Phone     string
	Role      *entity.Role
}

// ResetPasswordInput defines the data required to complete a password reset.
type ResetPasswordInput struct {
	ResetToken  string
	NewPassword string
}

// --- Output DTOs ---

// CreateUserOutput returns the newly created user's basic information.
type CreateUserOutput struct {
	User *entity.User `json:"user"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// VerifyOTPOutput returns the short-lived token authorizing a password reset.
type VerifyOTPOutput struct {
	ResetToken string `json:"reset_token"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// CreateUser registers a staff account and mails the generated credentials.
	CreateUser(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error)

	// Login authenticates by email or phone and issues a token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// Logout ends a session. Tokens are stateless, so this validates the
	// refresh token and records the logout for auditing.
	Logout(ctx context.Context, refreshToken string) error

	// ListUsers retrieves a page of registered users.
	ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, error)

	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUser edits a user's profile. Users may edit themselves;
	// administrators may edit anyone and are the only ones who may change roles.
	UpdateUser(ctx context.Context, input UpdateUserInput) (*entity.User, error)

	// ListHosts retrieves all users holding the host role.
	ListHosts(ctx context.Context) ([]*entity.User, error)

	// DeleteUser removes a user account. Actors cannot delete themselves.
	DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error

	// ForgotPassword mails a one time pass code to the account's email.
	// It succeeds silently when the email is unknown.
	ForgotPassword(ctx context.Context, email string) error

	// VerifyOTP checks a pass code and returns a reset token on success.
	VerifyOTP(ctx context.Context, email, otp string) (*VerifyOTPOutput, error)

	// ResetPassword sets a new password using a valid reset token.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
