package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/leon37/WishLedger/internal/infrastructure/database"
	"github.com/leon37/WishLedger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewConnection("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func createUser(t *testing.T, repo *UserRepository, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, PasswordHash: "x"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := createUser(t, repo, "alice")
	assert.NotZero(t, alice.ID)

	t.Run("GetByUsername exact match", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)

		_, err = repo.GetByUsername(ctx, "ALICE")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)

		_, err = repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("duplicate username rejected by index", func(t *testing.T) {
		err := repo.Create(ctx, &model.User{Username: "alice", PasswordHash: "y"})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}

func TestWishListOwnerIsolation(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewWishListRepo(db)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	// 交错插入两个用户的数据
	trip, err := repo.Create(ctx, alice.ID, "Trip")
	require.NoError(t, err)
	_, err = repo.Create(ctx, bob.ID, "Books")
	require.NoError(t, err)
	_, err = repo.Create(ctx, alice.ID, "Camera")
	require.NoError(t, err)

	// 归属在仓储层写死
	assert.Equal(t, alice.ID, trip.UserID)

	aliceLists, err := repo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceLists, 2)
	// 按插入顺序
	assert.Equal(t, "Trip", aliceLists[0].Name)
	assert.Equal(t, "Camera", aliceLists[1].Name)
	for _, wl := range aliceLists {
		assert.Equal(t, alice.ID, wl.UserID)
	}

	bobLists, err := repo.ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobLists, 1)
	assert.Equal(t, "Books", bobLists[0].Name)

	// 没有数据的用户拿到空列表，而不是别人的
	empty, err := repo.ListByOwner(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCelebrationOwnerIsolation(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewCelebrationRepo(db)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	cel, err := repo.Create(ctx, alice.ID, "生日", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, cel.UserID)
	assert.Equal(t, "2026-09-01", cel.Date)

	_, err = repo.Create(ctx, bob.ID, "纪念日", "not-a-date") // 日期不做校验，按原样存
	require.NoError(t, err)

	aliceCels, err := repo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceCels, 1)
	assert.Equal(t, "生日", aliceCels[0].Title)

	bobCels, err := repo.ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobCels, 1)
	assert.Equal(t, "not-a-date", bobCels[0].Date)
}
