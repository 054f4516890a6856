package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pribylovaa/go-crm-service/internal/config"
	"github.com/pribylovaa/go-crm-service/internal/models"
	"github.com/pribylovaa/go-crm-service/internal/storage"
	"github.com/pribylovaa/go-crm-service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:      "unit-secret",
		AccessTokenTTL: 24 * time.Hour,
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := New(st, testCfg())
	return svc, st, ctrl
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestRegisterUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	// Пробелы снаружи обрезаются, регистр email сохраняется как введён.
	email := "User@Example.com"

	// Сначала UserByEmail -> ErrNotFound, потом SaveUser.
	st.EXPECT().UserByEmail(gomock.Any(), email).Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)

	user, err := svc.RegisterUser(ctx, "  Alice  ", "  User@Example.com  ", "secret1")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.Equal(t, "Alice", user.Name)
	require.Equal(t, email, user.Email)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "secret1", user.PasswordHash)
	require.WithinDuration(t, time.Now().UTC(), user.CreatedAt, 2*time.Second)
}

func TestRegisterUser_EmailAlreadyExists_OnLookup(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Если UserByEmail вернул пользователя (err == nil) - email занят.
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uuid.New(), Email: "user@example.com"}, nil)

	_, err := svc.RegisterUser(context.Background(), "A", "user@example.com", "secret1")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUser_SaveUserAlreadyExists_MapsToEmailTaken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Гонка: lookup ничего не нашёл, но вставка упёрлась в уникальный индекс.
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		Return(storage.ErrAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), "A", "user@example.com", "secret1")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUser_StorageLookupError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(nil, errors.New("db down"))

	_, err := svc.RegisterUser(context.Background(), "A", "user@example.com", "secret1")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)
}

func TestLoginUser_OK_TouchesLastLogin(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	hash := mustHashPW(t, "secret1")

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uid, Name: "A", Email: "user@example.com", PasswordHash: hash}, nil)
	st.EXPECT().TouchLastLogin(gomock.Any(), uid, gomock.Any()).Return(nil)

	// Пробелы снаружи обрезаются перед поиском, регистр не меняется.
	user, token, err := svc.LoginUser(context.Background(), " user@example.com ", "secret1")
	require.NoError(t, err)
	require.Equal(t, uid, user.ID)
	require.NotEmpty(t, token)
	require.NotNil(t, user.LastLogin)
}

func TestLoginUser_TouchLastLoginFailure_DoesNotFailLogin(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	hash := mustHashPW(t, "secret1")

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uid, Email: "user@example.com", PasswordHash: hash}, nil)
	st.EXPECT().TouchLastLogin(gomock.Any(), uid, gomock.Any()).
		Return(errors.New("update failed"))

	user, token, err := svc.LoginUser(context.Background(), "user@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Nil(t, user.LastLogin)
}

func TestLoginUser_UnknownEmail_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, storage.ErrNotFound)

	_, _, err := svc.LoginUser(context.Background(), "nobody@example.com", "whatever")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_EmailCaseSensitive(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Email ищется в хранилище ровно в том регистре, в каком введён.
	st.EXPECT().UserByEmail(gomock.Any(), "User@Example.com").
		Return(nil, storage.ErrNotFound)

	_, _, err := svc.LoginUser(context.Background(), "User@Example.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_WrongPassword_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	hash := mustHashPW(t, "right-password")

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: hash}, nil)

	_, _, err := svc.LoginUser(context.Background(), "user@example.com", "wrong-password")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_MalformedHash_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Битый хэш в БД неотличим для клиента от неверного пароля.
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: "not-a-bcrypt-hash"}, nil)

	_, _, err := svc.LoginUser(context.Background(), "user@example.com", "secret1")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestHashPassword_RoundtripAndSaltedness(t *testing.T) {
	t.Parallel()

	h1 := mustHashPW(t, "secret1")
	h2 := mustHashPW(t, "secret1")

	// Случайная соль: повторные хэши различаются, но оба проверяются.
	require.NotEqual(t, h1, h2)
	require.True(t, checkPassword(h1, "secret1"))
	require.True(t, checkPassword(h2, "secret1"))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	h := mustHashPW(t, "secret1")

	require.False(t, checkPassword(h, "secret2"))
	require.False(t, checkPassword(h, ""))
	require.False(t, checkPassword("garbage", "secret1"))
	require.False(t, checkPassword("", "secret1"))
}
