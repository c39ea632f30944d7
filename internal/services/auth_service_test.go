package services_test

import (
	"testing"

	"glowmart/internal/apperr"
	"glowmart/internal/models"
	"glowmart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestRegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	user := &models.User{Name: "Amina", Email: "amina@example.com", Password: "password123", Role: models.RoleAdmin}

	mockRepo.On("GetByEmail", "amina@example.com").Return(nil, apperr.NotFound("user not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := service.RegisterUser(user)
	assert.NoError(t, err)

	// The password is stored hashed and a self-assigned admin role is
	// stripped.
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	assert.Equal(t, models.RoleUser, user.Role)
	mockRepo.AssertExpectations(t)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	existing := &models.User{ID: "user-1", Email: "amina@example.com"}
	mockRepo.On("GetByEmail", "amina@example.com").Return(existing, nil).Once()

	err := service.RegisterUser(&models.User{Email: "amina@example.com", Password: "password123"})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	user := &models.User{
		ID:       "user-1",
		Email:    "amina@example.com",
		Password: hashPassword(t, "password123"),
		Role:     models.RoleUser,
	}
	mockRepo.On("GetByEmail", "amina@example.com").Return(user, nil)

	token, loggedIn, err := service.LoginUser("amina@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", loggedIn.ID)

	// The issued token round-trips through validation.
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, models.RoleUser, claims["role"])
}

func TestLoginUser_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	user := &models.User{ID: "user-1", Email: "amina@example.com", Password: hashPassword(t, "password123")}
	mockRepo.On("GetByEmail", "amina@example.com").Return(user, nil)

	_, _, err := service.LoginUser("amina@example.com", "wrong")
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, apperr.NotFound("user not found"))

	// Unknown email and wrong password are indistinguishable to the caller.
	_, _, err := service.LoginUser("ghost@example.com", "password123")
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	mockRepo := new(MockUserRepository)
	issuer := services.NewAuthService(mockRepo, "secret-a")
	verifier := services.NewAuthService(mockRepo, "secret-b")

	user := &models.User{ID: "user-1", Email: "amina@example.com", Password: hashPassword(t, "password123")}
	mockRepo.On("GetByEmail", "amina@example.com").Return(user, nil)

	token, _, err := issuer.LoginUser("amina@example.com", "password123")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestChangePassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	user := &models.User{ID: "user-1", Password: hashPassword(t, "oldpassword")}
	mockRepo.On("GetByID", "user-1").Return(user, nil)

	// Wrong current password.
	err := service.ChangePassword("user-1", "nope", "newpassword")
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))

	// Too-short replacement.
	err = service.ChangePassword("user-1", "oldpassword", "short")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()
	err = service.ChangePassword("user-1", "oldpassword", "newpassword")
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newpassword")))
	mockRepo.AssertExpectations(t)
}

func TestUpdateProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test-secret")

	user := &models.User{ID: "user-1", Name: "Amina", Phone: "01711111111"}
	mockRepo.On("GetByID", "user-1").Return(user, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil)

	updated, err := service.UpdateProfile("user-1", "Amina Rahman", "")
	assert.NoError(t, err)
	assert.Equal(t, "Amina Rahman", updated.Name)
	// Blank fields keep their previous values.
	assert.Equal(t, "01711111111", updated.Phone)
}
