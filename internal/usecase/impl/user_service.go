// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	deliverycontext "vms/internal/delivery/context"
	"vms/internal/domain/entity"
	domainerrors "vms/internal/domain/errors"
	"vms/internal/domain/repository"
	"vms/internal/domain/service"
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	generatedPasswordLength = 12
	otpLength               = 6
	otpTTL                  = 15 * time.Minute
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	resetRepo    repository.PasswordResetRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailSender   service.MailSender
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	ResetRepo    repository.PasswordResetRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MailSender   service.MailSender
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		resetRepo:    params.ResetRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailSender:   params.MailSender,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser registers a staff account with a generated password and mails
// the credentials to the new user. The mail step is best-effort.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*usecase.CreateUserOutput, error) {
	srv.log(ctx).Info("Starting user creation", slog.String("email", input.Email), slog.Any("role", input.Role))

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	password, err := generatePassword(generatedPasswordLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate password")
	}

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during creation", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash generated password")
	}

	newUser := &entity.User{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hashedPassword,
		Role:         input.Role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, newUser); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateEmail):
				return domainerrors.ErrEmailInUse.WrapMessage("user creation rejected")
			case errors.Is(err, repository.ErrDuplicatePhone):
				return domainerrors.ErrPhoneInUse.WrapMessage("user creation rejected")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user creation transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.sendCredentialsMail(ctx, newUser, password)

	srv.log(ctx).Debug("User creation completed", slog.Any("userID", newUser.ID))

	return &usecase.CreateUserOutput{User: newUser}, nil
}

// sendCredentialsMail mails the generated credentials. Failures are logged
// only; the account exists either way and the password can be reset.
func (srv *userService) sendCredentialsMail(ctx context.Context, user *entity.User, password string) {
	mail := &service.Mail{
		To:      user.Email,
		Subject: "Your visitor management account",
		Body: fmt.Sprintf(
			"Hello %s,\n\nAn account has been created for you.\n\nEmail: %s\nPassword: %s\n\nPlease log in and change your password.",
			user.FullName(), user.Email, password,
		),
	}
	if err := srv.mailSender.Send(ctx, mail); err != nil {
		srv.log(ctx).Warn("Failed to send credentials mail", slog.Any("userID", user.ID), slog.Any("error", err))
	}
}

// Login authenticates a user by email or phone and issues a token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("identifier", input.Identifier))

	user, err := srv.userRepo.FindByEmailOrPhone(ctx, input.Identifier)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load login user")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != "refresh" {
		srv.log(ctx).Warn("Refresh rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh failed")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
	}, nil
}

// Logout ends a session. Tokens are stateless and expire on their own, so
// there is nothing to revoke server side; the refresh token is validated and
// the logout is recorded for auditing.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != "refresh" {
		return domainerrors.ErrRefreshTokenInvalid.WrapMessage("logout rejected")
	}

	srv.log(ctx).Info("User logged out", slog.Any("userID", claims.UserID))

	return nil
}

// ListUsers retrieves a page of registered users.
func (srv *userService) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	users, err := srv.userRepo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// UpdateUser edits a user's profile. Users may edit their own profile;
// administrators may edit anyone. Only administrators may change roles.
func (srv *userService) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*entity.User, error) {
	if input.ActorID != input.TargetID && !input.ActorRole.IsAdministrative() {
		return nil, domainerrors.ErrForbidden.WrapMessage("user update rejected")
	}

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.TargetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user update rejected")
			}

			return errors.Wrap(err, "failed to load user for update")
		}

		user.FirstName = input.FirstName
		user.LastName = input.LastName
		user.Phone = input.Phone

		if input.Role != nil && *input.Role != user.Role {
			if !input.ActorRole.IsAdministrative() {
				return domainerrors.ErrForbidden.WrapMessage("role change rejected")
			}
			if !input.Role.IsValid() {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown role")
			}
			user.Role = *input.Role
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicatePhone) {
				return domainerrors.ErrPhoneInUse.WrapMessage("user update rejected")
			}

			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update user", slog.Any("targetID", input.TargetID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User updated", slog.Any("actorID", input.ActorID), slog.Any("targetID", input.TargetID))

	return updated, nil
}

// ListHosts retrieves all users holding the host role.
func (srv *userService) ListHosts(ctx context.Context) ([]*entity.User, error) {
	hosts, err := srv.userRepo.ListByRole(ctx, entity.RoleHost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hosts")
	}

	return hosts, nil
}

// DeleteUser removes a user account. Actors cannot delete themselves.
func (srv *userService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return domainerrors.ErrSelfDeletion.WrapMessage("user deletion rejected")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user deletion rejected")
			}

			return errors.Wrap(err, "failed to load user for deletion")
		}

		return userRepo.Delete(ctx, targetID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete user", slog.Any("targetID", targetID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("User deleted", slog.Any("actorID", actorID), slog.Any("targetID", targetID))

	return nil
}

// ForgotPassword mails a one time pass code to the account's email.
// Unknown emails succeed silently so the endpoint cannot be used to probe accounts.
func (srv *userService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	otp, err := generateOTP(otpLength)
	if err != nil {
		return errors.Wrap(err, "failed to generate pass code")
	}

	otpHash, err := srv.hasher.Hash(otp)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash pass code")
	}

	reset := &entity.PasswordReset{
		ID:        uuid.New(),
		Email:     user.Email,
		OTPHash:   otpHash,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := srv.resetRepo.CreateReset(ctx, reset); err != nil {
		return errors.Wrap(err, "failed to store password reset")
	}

	mail := &service.Mail{
		To:      user.Email,
		Subject: "Password reset code",
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour password reset code is %s. It expires in %d minutes.",
			user.FullName(), otp, int(otpTTL.Minutes()),
		),
	}
	if err := srv.mailSender.Send(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to send pass code mail", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to send pass code mail")
	}

	srv.log(ctx).Info("Password reset code issued", slog.Any("userID", user.ID))

	return nil
}

// VerifyOTP checks a pass code and returns a short-lived reset token on success.
func (srv *userService) VerifyOTP(ctx context.Context, email, otp string) (*usecase.VerifyOTPOutput, error) {
	reset, err := srv.resetRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrPasswordResetNotFound) {
			return nil, domainerrors.ErrOTPInvalid.WrapMessage("no pending reset")
		}

		return nil, errors.Wrap(err, "failed to load password reset")
	}

	if reset.Expired(time.Now()) {
		return nil, domainerrors.ErrOTPExpired.WrapMessage("pass code expired")
	}

	if !srv.hasher.Check(otp, reset.OTPHash) {
		return nil, domainerrors.ErrOTPInvalid.WrapMessage("pass code mismatch")
	}

	resetToken, err := srv.tokenService.GenerateResetToken(email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	if err := srv.resetRepo.DeleteByEmail(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to consume password reset", slog.Any("error", err))
	}

	return &usecase.VerifyOTPOutput{ResetToken: resetToken}, nil
}

// ResetPassword sets a new password using a valid reset token.
func (srv *userService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	email, err := srv.tokenService.ValidateResetToken(input.ResetToken)
	if err != nil {
		return domainerrors.ErrRefreshTokenInvalid.WrapMessage("reset token rejected")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerrors.ErrPasswordStrength.WrapMessage("password reset rejected")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("password reset rejected")
			}

			return errors.Wrap(err, "failed to load user for password reset")
		}

		return userRepo.UpdatePassword(ctx, user.ID, hashedPassword)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset completed")

	return nil
}

const passwordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generatePassword draws a random password from an alphabet without
// lookalike characters.
func generatePassword(length int) (string, error) {
	buf := make([]byte, length)
	alphabetSize := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}

	return string(buf), nil
}

// generateOTP draws a random numeric pass code.
func generateOTP(length int) (string, error) {
	buf := make([]byte, length)
	ten := big.NewInt(10)
	for i := range buf {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		buf[i] = byte('0' + n.Int64())
	}

	return string(buf), nil
}
