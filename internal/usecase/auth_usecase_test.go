package usecase

import (
	"context"
	"testing"
	"time"

	"lifelink-api/config"
	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
	"lifelink-api/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func mockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func registerRequest() *dto.RegisterDonorRequest {
	return &dto.RegisterDonorRequest{
		FirstName:   "Asha",
		LastName:    "Verma",
		Phone:       "9000000030",
		Password:    "strongpassword",
		BloodGroup:  "O_NEGATIVE",
		Gender:      "FEMALE",
		DateOfBirth: "1994-02-11",
	}
}

func TestRegisterDonor_DuplicatePhoneRollsBack(t *testing.T) {
	db, mock := mockGormDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	userRepo := newFakeUserRepo()
	userRepo.err = &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_phone"}
	donorRepo := newFakeDonorRepo()

	usecase := NewAuthUsecase(db, testLogger(), userRepo, donorRepo, testJWTService(), nil)

	_, err := usecase.RegisterDonor(context.Background(), registerRequest())

	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
	// The donor profile row must not exist after the rollback
	assert.Empty(t, donorRepo.donors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDonor_InvalidDateOfBirth(t *testing.T) {
	db, mock := mockGormDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	usecase := NewAuthUsecase(db, testLogger(), newFakeUserRepo(), newFakeDonorRepo(), testJWTService(), nil)

	req := registerRequest()
	req.DateOfBirth = "11/02/1994"
	_, err := usecase.RegisterDonor(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_UnknownPhone(t *testing.T) {
	usecase := NewAuthUsecase(nil, testLogger(), newFakeUserRepo(), newFakeDonorRepo(), testJWTService(), nil)

	_, err := usecase.Login(context.Background(), &dto.LoginRequest{
		Phone:    "9999999999",
		Password: "whatever123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:           uuid.New(),
		Phone:        "9000000031",
		PasswordHash: string(hash),
		Role:         entity.RoleDonor,
	}
	userRepo.users[user.ID] = user

	usecase := NewAuthUsecase(nil, testLogger(), userRepo, newFakeDonorRepo(), testJWTService(), nil)

	_, err = usecase.Login(context.Background(), &dto.LoginRequest{
		Phone:    "9000000031",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DeactivatedUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	inactive := false
	user := &entity.User{
		ID:           uuid.New(),
		Phone:        "9000000032",
		PasswordHash: string(hash),
		Role:         entity.RoleDonor,
		IsActive:     &inactive,
	}
	userRepo.users[user.ID] = user

	usecase := NewAuthUsecase(nil, testLogger(), userRepo, newFakeDonorRepo(), testJWTService(), nil)

	_, err = usecase.Login(context.Background(), &dto.LoginRequest{
		Phone:    "9000000032",
		Password: "correct-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken_Garbage(t *testing.T) {
	usecase := NewAuthUsecase(nil, testLogger(), newFakeUserRepo(), newFakeDonorRepo(), testJWTService(), nil)

	_, err := usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: "not-a-jwt",
	})

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	jwtService := testJWTService()
	usecase := NewAuthUsecase(nil, testLogger(), newFakeUserRepo(), newFakeDonorRepo(), jwtService, nil)

	accessToken, _, err := jwtService.GenerateAccessToken(uuid.New(), "9000000033", string(entity.RoleDonor), nil)
	require.NoError(t, err)

	_, err = usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: accessToken,
	})

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetCurrentUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	donorRepo := newFakeDonorRepo()

	user := &entity.User{
		ID:        uuid.New(),
		Phone:     "9000000034",
		FirstName: "Asha",
		LastName:  "Verma",
		Role:      entity.RoleDonor,
	}
	userRepo.users[user.ID] = user
	donor := donorRepo.add(&entity.Donor{Name: "Asha Verma", Phone: "9000000034"})

	usecase := NewAuthUsecase(nil, testLogger(), userRepo, donorRepo, testJWTService(), nil)

	resp, err := usecase.GetCurrentUser(context.Background(), user.ID, nil)

	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)
	require.NotNil(t, resp.DonorID)
	assert.Equal(t, donor.ID, *resp.DonorID)
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	usecase := NewAuthUsecase(nil, testLogger(), newFakeUserRepo(), newFakeDonorRepo(), testJWTService(), nil)

	_, err := usecase.GetCurrentUser(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
