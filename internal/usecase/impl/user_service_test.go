package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	svc      usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockTokenService
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	svc := NewUserService(userRepo, hasher, tokens, newDiscardLogger())
	svc.(*userService).clock = func() time.Time { return fixedNow }

	return &userServiceFixture{svc: svc, userRepo: userRepo, hasher: hasher, tokens: tokens}
}

func TestUserService_Register(t *testing.T) {
	f := newUserServiceFixture(t)

	f.hasher.On("Hash", "hunter2hunter2").Return("$2a$10$hash", nil)
	f.userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	f.tokens.On("GenerateToken", mock.AnythingOfType("uuid.UUID"), entity.RoleUser).Return("signed-token", nil)

	output, err := f.svc.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Ada",
		Email:    "  Ada@Example.COM ",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", output.Token)
	// Email is stored canonicalized so lookups are case-insensitive.
	assert.Equal(t, "ada@example.com", output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "$2a$10$hash", output.User.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	f := newUserServiceFixture(t)

	f.hasher.On("Hash", mock.Anything).Return("$2a$10$hash", nil)
	f.userRepo.On("CreateUser", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := f.svc.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})
	assertAppError(t, err, domainerrors.ErrUserAlreadyExists)

	f.tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	f := newUserServiceFixture(t)

	f.hasher.On("Hash", mock.Anything).Return("", assert.AnError)

	_, err := f.svc.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})
	assertAppError(t, err, domainerrors.ErrPasswordHashFailed)

	f.userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	f := newUserServiceFixture(t)
	userID := uuid.New()

	stored := &entity.User{ID: userID, Email: "ada@example.com", PasswordHash: "$2a$10$hash", Role: entity.RoleAdmin}

	f.userRepo.On("FindUserByEmail", mock.Anything, "ada@example.com").Return(stored, nil)
	f.hasher.On("Check", "hunter2hunter2", "$2a$10$hash").Return(true)
	f.tokens.On("GenerateToken", userID, entity.RoleAdmin).Return("signed-token", nil)

	output, err := f.svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "Ada@Example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		f := newUserServiceFixture(t)
		f.userRepo.On("FindUserByEmail", mock.Anything, "ghost@example.com").
			Return(nil, repository.ErrUserNotFound)

		_, err := f.svc.Login(context.Background(), &usecase.LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		assertAppError(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newUserServiceFixture(t)
		stored := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "$2a$10$hash"}
		f.userRepo.On("FindUserByEmail", mock.Anything, "ada@example.com").Return(stored, nil)
		f.hasher.On("Check", "wrong", "$2a$10$hash").Return(false)

		_, err := f.svc.Login(context.Background(), &usecase.LoginInput{
			Email:    "ada@example.com",
			Password: "wrong",
		})
		assertAppError(t, err, domainerrors.ErrInvalidCredentials)

		f.tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
	})
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	f := newUserServiceFixture(t)
	id := uuid.New()

	f.userRepo.On("FindUserByID", mock.Anything, id).Return(nil, repository.ErrUserNotFound)

	_, err := f.svc.GetUser(context.Background(), id)
	assertAppError(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser(t *testing.T) {
	f := newUserServiceFixture(t)
	id := uuid.New()

	stored := &entity.User{ID: id, Name: "Ada", Email: "ada@example.com", Role: entity.RoleUser}
	f.userRepo.On("FindUserByID", mock.Anything, id).Return(stored, nil)
	f.userRepo.On("UpdateUser", mock.Anything, stored).Return(nil)

	role := "admin"
	updated, err := f.svc.UpdateUser(context.Background(), id, &usecase.UpdateUserInput{Role: &role})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, updated.Role)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
}

func TestUserService_UpdateUser_UnknownRole(t *testing.T) {
	f := newUserServiceFixture(t)
	id := uuid.New()

	stored := &entity.User{ID: id, Role: entity.RoleUser}
	f.userRepo.On("FindUserByID", mock.Anything, id).Return(stored, nil)

	role := "superuser"
	_, err := f.svc.UpdateUser(context.Background(), id, &usecase.UpdateUserInput{Role: &role})
	assertAppError(t, err, domainerrors.ErrValidationFailed)

	f.userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser(t *testing.T) {
	f := newUserServiceFixture(t)
	id := uuid.New()

	f.userRepo.On("FindUserByID", mock.Anything, id).Return(&entity.User{ID: id}, nil)
	f.userRepo.On("DeleteUser", mock.Anything, id).Return(nil)

	require.NoError(t, f.svc.DeleteUser(context.Background(), id))
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	f := newUserServiceFixture(t)
	id := uuid.New()

	f.userRepo.On("FindUserByID", mock.Anything, id).Return(nil, repository.ErrUserNotFound)

	err := f.svc.DeleteUser(context.Background(), id)
	assertAppError(t, err, domainerrors.ErrUserNotFound)

	f.userRepo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}
