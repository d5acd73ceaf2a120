package impl

import (
	"context"
	"testing"
	"time"

	"vms/internal/domain/entity"
	mockRepo "vms/internal/mocks/repository"
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice_New(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, nil)
	deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	svc := NewDeviceService(deviceRepo)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fcm-token",
		DeviceID: "device-abc",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesExistingToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "stale-token",
		DeviceID: "device-abc",
		Platform: "ios",
		IsActive: true,
	}
	refreshed := &entity.UserDevice{
		ID:        existing.ID,
		UserID:    userID,
		FCMToken:  "fresh-token",
		DeviceID:  "device-abc",
		Platform:  "ios",
		IsActive:  true,
		UpdatedAt: time.Now(),
	}

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)
	deviceRepo.EXPECT().
		UpdateFCMToken(ctx, existing.ID, "fresh-token").
		Return(nil)
	deviceRepo.EXPECT().
		FindDeviceByID(ctx, existing.ID).
		Return(refreshed, nil)

	svc := NewDeviceService(deviceRepo)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fresh-token",
		DeviceID: "device-abc",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "fresh-token", device.FCMToken)
}

func TestDeviceService_UpdateFCMToken_WrongOwner(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.New()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	svc := NewDeviceService(deviceRepo)

	err := svc.UpdateFCMToken(ctx, uuid.New(), deviceID, "fresh-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeviceUnauthorized)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	svc := NewDeviceService(deviceRepo)

	require.NoError(t, svc.DeactivateDevice(ctx, userID, deviceID))
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
			{ID: uuid.New(), UserID: userID, FCMToken: "token-2", IsActive: true},
		}, nil)

	svc := NewDeviceService(deviceRepo)

	devices, err := svc.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, devices, 2)
}
