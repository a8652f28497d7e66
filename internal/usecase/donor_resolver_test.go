package usecase

import (
	"context"
	"testing"

	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDonorResolver_HintResolvesDirectly(t *testing.T) {
	userRepo := newFakeUserRepo()
	donorRepo := newFakeDonorRepo()
	donor := donorRepo.add(&entity.Donor{Name: "Asha", Phone: "9000000001"})

	resolver := NewDonorResolver(nil, testLogger(), userRepo, donorRepo)

	resolved, err := resolver.Resolve(context.Background(), uuid.New(), &donor.ID)

	assert.NoError(t, err)
	assert.Equal(t, donor.ID, resolved.ID)
	// The hint path never touches the user table
	assert.Empty(t, userRepo.users)
}

func TestDonorResolver_StaleHintFails(t *testing.T) {
	userRepo := newFakeUserRepo()
	donorRepo := newFakeDonorRepo()

	// A donor profile reachable via the phone chain must not rescue a
	// hint that no longer resolves.
	user := &entity.User{ID: uuid.New(), Phone: "9000000002", Role: entity.RoleDonor}
	userRepo.users[user.ID] = user
	donorRepo.add(&entity.Donor{Name: "Ravi", Phone: "9000000002"})

	resolver := NewDonorResolver(nil, testLogger(), userRepo, donorRepo)

	staleHint := uuid.New()
	resolved, err := resolver.Resolve(context.Background(), user.ID, &staleHint)

	assert.ErrorIs(t, err, ErrDonorProfileNotFound)
	assert.Nil(t, resolved)
}

func TestDonorResolver_UserNotFound(t *testing.T) {
	resolver := NewDonorResolver(nil, testLogger(), newFakeUserRepo(), newFakeDonorRepo())

	resolved, err := resolver.Resolve(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, resolved)
}

func TestDonorResolver_UserPhoneMissing(t *testing.T) {
	userRepo := newFakeUserRepo()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleDonor}
	userRepo.users[user.ID] = user

	resolver := NewDonorResolver(nil, testLogger(), userRepo, newFakeDonorRepo())

	_, err := resolver.Resolve(context.Background(), user.ID, nil)

	assert.ErrorIs(t, err, ErrUserPhoneMissing)
}

func TestDonorResolver_NoDonorProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	user := &entity.User{ID: uuid.New(), Phone: "9000000003", Role: entity.RoleDonor}
	userRepo.users[user.ID] = user

	resolver := NewDonorResolver(nil, testLogger(), userRepo, newFakeDonorRepo())

	_, err := resolver.Resolve(context.Background(), user.ID, nil)

	assert.ErrorIs(t, err, ErrDonorProfileNotFound)
}
