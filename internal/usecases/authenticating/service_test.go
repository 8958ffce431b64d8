package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/entry-services-api/infrastructure/repository/mocks"
	"github.com/vfg2006/entry-services-api/internal/config"
	"github.com/vfg2006/entry-services-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceTest(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{
		userRepo: mockUserRepo,
		cfg:      &config.Config{SecretKey: "segredo-de-teste"},
	}

	return service, mockUserRepo
}

func TestService_CreateUser(t *testing.T) {
	service, mockUserRepo := newAuthServiceTest(t)

	mockUserRepo.EXPECT().
		GetUserByEmail("maria@exemplo.com").
		Return(nil, nil)

	mockUserRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			// A senha nunca é armazenada em texto plano
			assert.NotEqual(t, "senha123", user.PasswordHash)
			assert.True(t, user.Active)
			user.ID = 1
			return user, nil
		})

	user, err := service.CreateUser(&domain.User{
		Name:         "Maria",
		Email:        " Maria@Exemplo.com ",
		PasswordHash: "senha123",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "maria@exemplo.com", user.Email)
}

func TestService_CreateUser_EmailAlreadyExists(t *testing.T) {
	service, mockUserRepo := newAuthServiceTest(t)

	mockUserRepo.EXPECT().
		GetUserByEmail("maria@exemplo.com").
		Return(&domain.User{ID: 9, Email: "maria@exemplo.com"}, nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "Maria",
		Email:        "maria@exemplo.com",
		PasswordHash: "senha123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserAlreadyExists))
}

func TestService_CreateUser_MissingData(t *testing.T) {
	service, _ := newAuthServiceTest(t)

	_, err := service.CreateUser(&domain.User{Email: "maria@exemplo.com"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequiredData))
}

func TestService_LoginUser(t *testing.T) {
	service, mockUserRepo := newAuthServiceTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockUserRepo.EXPECT().
		GetUserByEmail("maria@exemplo.com").
		Return(&domain.User{
			ID:           1,
			Name:         "Maria",
			Email:        "maria@exemplo.com",
			PasswordHash: string(hash),
			Active:       true,
		}, nil)

	token, err := service.LoginUser("maria@exemplo.com", "senha123")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	// O token emitido deve validar com a mesma chave
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "maria@exemplo.com", claims.UserEmail)
	assert.True(t, claims.UserActive)
}

func TestService_LoginUser_WrongPassword(t *testing.T) {
	service, mockUserRepo := newAuthServiceTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockUserRepo.EXPECT().
		GetUserByEmail("maria@exemplo.com").
		Return(&domain.User{
			ID:           1,
			Email:        "maria@exemplo.com",
			PasswordHash: string(hash),
			Active:       true,
		}, nil)

	_, err = service.LoginUser("maria@exemplo.com", "senha-errada")

	require.Error(t, err)
	assert.True(t, IsCredentialsError(err))
}

func TestService_LoginUser_DisabledUser(t *testing.T) {
	service, mockUserRepo := newAuthServiceTest(t)

	mockUserRepo.EXPECT().
		GetUserByEmail("maria@exemplo.com").
		Return(&domain.User{ID: 1, Email: "maria@exemplo.com", Active: false}, nil)

	_, err := service.LoginUser("maria@exemplo.com", "senha123")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserDisabled))
}

func TestService_LoginUser_UserNotFound(t *testing.T) {
	service, mockUserRepo := newAuthServiceTest(t)

	mockUserRepo.EXPECT().
		GetUserByEmail("ninguem@exemplo.com").
		Return(nil, nil)

	_, err := service.LoginUser("ninguem@exemplo.com", "senha123")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	service, _ := newAuthServiceTest(t)

	_, err := service.ValidateToken("token-invalido")

	assert.Error(t, err)
}

func TestService_GetUserProfile(t *testing.T) {
	service, mockUserRepo := newAuthServiceTest(t)

	mockUserRepo.EXPECT().
		GetUserByID(1).
		Return(&domain.User{ID: 1, Name: "Maria", PasswordHash: "hash"}, nil)

	user, err := service.GetUserProfile(1)

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "Maria", user.Name)
}
