package impl

import (
	"context"
	"testing"
	"time"

	"vms/internal/domain/entity"
	domainerrors "vms/internal/domain/errors"
	"vms/internal/domain/repository"
	"vms/internal/domain/service"
	mockRepo "vms/internal/mocks/repository"
	mockSvc "vms/internal/mocks/service"
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	resetRepo    *mockRepo.MockPasswordResetRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailSender   *mockSvc.MockMailSender
}

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	mocks := &userServiceMocks{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		resetRepo:    mockRepo.NewMockPasswordResetRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		mailSender:   mockSvc.NewMockMailSender(t),
	}

	svc := NewUserService(UserServiceParams{
		TxManager:    newPassthroughTxManager(t, mocks.factory),
		UserRepo:     mocks.userRepo,
		ResetRepo:    mocks.resetRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenService,
		MailSender:   mocks.mailSender,
		Logger:       newDiscardLogger(),
	})

	return svc, mocks
}

func TestUserService_CreateUser_Success(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)

	mocks.hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("hashed-password", nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	var mailed *service.Mail
	mocks.mailSender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Run(func(_ context.Context, mail *service.Mail) {
			mailed = mail
		}).
		Return(nil)

	output, err := svc.CreateUser(ctx, usecase.CreateUserInput{
		FirstName: "Grace",
		LastName:  "Achieng",
		Email:     "grace@example.com",
		Phone:     "0711000000",
		Role:      entity.RoleReceptionist,
	})
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", output.User.Email)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	assert.Equal(t, entity.RoleReceptionist, output.User.Role)

	require.NotNil(t, mailed)
	assert.Equal(t, "grace@example.com", mailed.To)
	assert.Contains(t, mailed.Body, "grace@example.com")
}

func TestUserService_CreateUser_UnknownRole(t *testing.T) {
	svc, _ := newUserServiceForTest(t)

	_, err := svc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email: "grace@example.com",
		Role:  entity.Role("janitor"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)

	mocks.hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("hashed-password", nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := svc.CreateUser(ctx, usecase.CreateUserInput{
		Email: "taken@example.com",
		Role:  entity.RoleHost,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestUserService_CreateUser_MailFailureDoesNotFailCreation(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)

	mocks.hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("hashed-password", nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	mocks.mailSender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Return(errors.New("smtp unreachable"))

	output, err := svc.CreateUser(ctx, usecase.CreateUserInput{
		Email: "grace@example.com",
		Role:  entity.RoleSoldier,
	})
	require.NoError(t, err)
	assert.NotNil(t, output.User)
}

func TestUserService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "grace@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleAdmin,
	}

	mocks.userRepo.EXPECT().
		FindByEmailOrPhone(ctx, "grace@example.com").
		Return(user, nil)
	mocks.hasher.EXPECT().
		Check("secret-password", "stored-hash").
		Return(true)
	mocks.tokenService.EXPECT().
		GenerateTokens(user.ID, entity.RoleAdmin.String()).
		Return("access-token", "refresh-token", nil)

	output, err := svc.Login(ctx, usecase.LoginInput{
		Identifier: "grace@example.com",
		Password:   "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.userRepo.EXPECT().
		FindByEmailOrPhone(ctx, "grace@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "stored-hash"}, nil)
	mocks.hasher.EXPECT().
		Check("wrong-password", "stored-hash").
		Return(false)

	_, err := svc.Login(ctx, usecase.LoginInput{
		Identifier: "grace@example.com",
		Password:   "wrong-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownIdentifier(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.userRepo.EXPECT().
		FindByEmailOrPhone(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{
		Identifier: "nobody@example.com",
		Password:   "whatever",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Refresh_Success(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleHost}

	mocks.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: user.ID, Role: user.Role.String(), Type: "refresh"}, nil)
	mocks.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)
	mocks.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Role.String()).
		Return("new-access", "new-refresh", nil)

	output, err := svc.Refresh(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_Refresh_AccessTokenRejected(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.tokenService.EXPECT().
		ValidateToken("access-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "access"}, nil)

	_, err := svc.Refresh(ctx, "access-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_DeleteUser_Self(t *testing.T) {
	svc, _ := newUserServiceForTest(t)

	actorID := uuid.New()
	err := svc.DeleteUser(context.Background(), actorID, actorID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfDeletion))
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	targetID := uuid.New()

	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(&entity.User{ID: targetID}, nil)
	mocks.userRepo.EXPECT().
		Delete(ctx, targetID).
		Return(nil)

	require.NoError(t, svc.DeleteUser(ctx, uuid.New(), targetID))
}

func TestUserService_ForgotPassword_UnknownEmailSucceeds(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	require.NoError(t, svc.ForgotPassword(ctx, "nobody@example.com"))
}

func TestUserService_ForgotPassword_IssuesCode(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	user := &entity.User{ID: uuid.New(), FirstName: "Grace", Email: "grace@example.com"}

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)
	mocks.hasher.EXPECT().
		Hash(mock.MatchedBy(func(otp string) bool { return len(otp) == otpLength })).
		Return("otp-hash", nil)

	var stored *entity.PasswordReset
	mocks.resetRepo.EXPECT().
		CreateReset(ctx, mock.AnythingOfType("*entity.PasswordReset")).
		Run(func(_ context.Context, reset *entity.PasswordReset) {
			stored = reset
		}).
		Return(nil)
	mocks.mailSender.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Return(nil)

	require.NoError(t, svc.ForgotPassword(ctx, user.Email))

	require.NotNil(t, stored)
	assert.Equal(t, user.Email, stored.Email)
	assert.Equal(t, "otp-hash", stored.OTPHash)
	assert.False(t, stored.Expired(time.Now()))
	assert.True(t, stored.Expired(time.Now().Add(otpTTL+time.Minute)))
}

func TestUserService_VerifyOTP_Success(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	reset := &entity.PasswordReset{
		Email:     "grace@example.com",
		OTPHash:   "otp-hash",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	mocks.resetRepo.EXPECT().
		FindByEmail(ctx, reset.Email).
		Return(reset, nil)
	mocks.hasher.EXPECT().
		Check("123456", "otp-hash").
		Return(true)
	mocks.tokenService.EXPECT().
		GenerateResetToken(reset.Email).
		Return("reset-token", nil)
	mocks.resetRepo.EXPECT().
		DeleteByEmail(ctx, reset.Email).
		Return(nil)

	output, err := svc.VerifyOTP(ctx, reset.Email, "123456")
	require.NoError(t, err)
	assert.Equal(t, "reset-token", output.ResetToken)
}

func TestUserService_VerifyOTP_Expired(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.resetRepo.EXPECT().
		FindByEmail(ctx, "grace@example.com").
		Return(&entity.PasswordReset{
			Email:     "grace@example.com",
			OTPHash:   "otp-hash",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	_, err := svc.VerifyOTP(ctx, "grace@example.com", "123456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOTPExpired))
}

func TestUserService_VerifyOTP_WrongCode(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.resetRepo.EXPECT().
		FindByEmail(ctx, "grace@example.com").
		Return(&entity.PasswordReset{
			Email:     "grace@example.com",
			OTPHash:   "otp-hash",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}, nil)
	mocks.hasher.EXPECT().
		Check("000000", "otp-hash").
		Return(false)

	_, err := svc.VerifyOTP(ctx, "grace@example.com", "000000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOTPInvalid))
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	user := &entity.User{ID: uuid.New(), Email: "grace@example.com"}

	mocks.tokenService.EXPECT().
		ValidateResetToken("reset-token").
		Return(user.Email, nil)
	mocks.hasher.EXPECT().
		ValidatePasswordStrength("N3w-Str0ng-Pass").
		Return(nil)
	mocks.hasher.EXPECT().
		Hash("N3w-Str0ng-Pass").
		Return("new-hash", nil)

	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)
	mocks.userRepo.EXPECT().
		UpdatePassword(ctx, user.ID, "new-hash").
		Return(nil)

	require.NoError(t, svc.ResetPassword(ctx, usecase.ResetPasswordInput{
		ResetToken:  "reset-token",
		NewPassword: "N3w-Str0ng-Pass",
	}))
}

func TestUserService_ResetPassword_WeakPassword(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.tokenService.EXPECT().
		ValidateResetToken("reset-token").
		Return("grace@example.com", nil)
	mocks.hasher.EXPECT().
		ValidatePasswordStrength("short").
		Return(errors.New("too short"))

	err := svc.ResetPassword(ctx, usecase.ResetPasswordInput{
		ResetToken:  "reset-token",
		NewPassword: "short",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestGeneratePassword(t *testing.T) {
	password, err := generatePassword(generatedPasswordLength)
	require.NoError(t, err)
	assert.Len(t, password, generatedPasswordLength)
	for _, r := range password {
		assert.Contains(t, passwordAlphabet, string(r))
	}
}

func TestGenerateOTP(t *testing.T) {
	otp, err := generateOTP(otpLength)
	require.NoError(t, err)
	assert.Len(t, otp, otpLength)
	for _, r := range otp {
		assert.GreaterOrEqual(t, r, '0')
		assert.LessOrEqual(t, r, '9')
	}
}

func TestUserService_Logout_Success(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)

	require.NoError(t, svc.Logout(ctx, "refresh-token"))
}

func TestUserService_Logout_AccessTokenRejected(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	mocks.tokenService.EXPECT().
		ValidateToken("access-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "access"}, nil)

	err := svc.Logout(ctx, "access-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_UpdateUser_Self(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	userID := uuid.New()
	stored := &entity.User{ID: userID, FirstName: "Old", LastName: "Name", Phone: "111", Role: entity.RoleHost}

	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(stored, nil)
	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	updated, err := svc.UpdateUser(ctx, usecase.UpdateUserInput{
		TargetID:  userID,
		ActorID:   userID,
		ActorRole: entity.RoleHost,
		FirstName: "New",
		LastName:  "Name",
		Phone:     "222",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.FirstName)
	assert.Equal(t, "222", updated.Phone)
	assert.Equal(t, entity.RoleHost, updated.Role)
}

func TestUserService_UpdateUser_OtherUserForbidden(t *testing.T) {
	svc, _ := newUserServiceForTest(t)

	_, err := svc.UpdateUser(context.Background(), usecase.UpdateUserInput{
		TargetID:  uuid.New(),
		ActorID:   uuid.New(),
		ActorRole: entity.RoleReceptionist,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_UpdateUser_RoleChangeRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	userID := uuid.New()
	stored := &entity.User{ID: userID, FirstName: "A", LastName: "B", Phone: "111", Role: entity.RoleHost}

	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(stored, nil)

	newRole := entity.RoleAdmin
	_, err := svc.UpdateUser(ctx, usecase.UpdateUserInput{
		TargetID:  userID,
		ActorID:   userID,
		ActorRole: entity.RoleHost,
		FirstName: "A",
		LastName:  "B",
		Phone:     "111",
		Role:      &newRole,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_UpdateUser_AdminChangesRole(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newUserServiceForTest(t)

	targetID := uuid.New()
	stored := &entity.User{ID: targetID, FirstName: "A", LastName: "B", Phone: "111", Role: entity.RoleSoldier}

	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.userRepo.EXPECT().
		FindByID(ctx, targetID).
		Return(stored, nil)
	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	newRole := entity.RoleReceptionist
	updated, err := svc.UpdateUser(ctx, usecase.UpdateUserInput{
		TargetID:  targetID,
		ActorID:   uuid.New(),
		ActorRole: entity.RoleAdmin,
		FirstName: "A",
		LastName:  "B",
		Phone:     "111",
		Role:      &newRole,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleReceptionist, updated.Role)
}
