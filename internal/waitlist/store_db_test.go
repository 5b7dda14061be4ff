package waitlist

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestStore opens an in-memory SQLite database with the same GORM
// settings the production connection uses, notably TranslateError.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// One connection: each in-memory SQLite connection is its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Entry{}))
	return NewStore(db)
}

func newEntry(email, firstName string) *Entry {
	return &Entry{
		Email:     email,
		FirstName: firstName,
		LastName:  "Doe",
	}
}

func TestStoreJoinAssignsPositions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	position, total, err := store.Join(ctx, newEntry("alice@example.com", "Alice"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), position)
	assert.Equal(t, int64(1), total)

	position, total, err = store.Join(ctx, newEntry("bob@example.com", "Bob"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), position)
	assert.Equal(t, int64(2), total)

	// The position must be readable back from the row, not just returned.
	info, err := store.Position(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.Position)
	assert.WithinDuration(t, time.Now().UTC(), info.JoinedAt, time.Minute)

	info, err = store.Position(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Position)
}

func TestStoreJoinDuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.Join(ctx, newEntry("alice@example.com", "Alice"))
	require.NoError(t, err)

	_, _, err = store.Join(ctx, newEntry("alice@example.com", "Alice"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The rejected join must not have left a second row behind.
	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
}

func TestStorePositionNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Position(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrEmailNotFound)
}

func TestStoreInvite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.Join(ctx, newEntry("alice@example.com", "Alice"))
	require.NoError(t, err)

	require.NoError(t, store.Invite(ctx, "alice@example.com"))

	var entry Entry
	require.NoError(t, store.db.Where("email = ?", "alice@example.com").First(&entry).Error)
	assert.Equal(t, StatusInvited, entry.Status)
	require.NotNil(t, entry.InvitedAt)
	assert.WithinDuration(t, time.Now().UTC(), *entry.InvitedAt, time.Minute)

	assert.ErrorIs(t, store.Invite(ctx, "ghost@example.com"), ErrEmailNotFound)
}

func TestStoreFirstName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.Join(ctx, newEntry("alice@example.com", "Alice"))
	require.NoError(t, err)
	_, _, err = store.Join(ctx, newEntry("anon@example.com", ""))
	require.NoError(t, err)

	name, err := store.FirstName(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	// Rows without a stored name fall back to a generic greeting.
	name, err = store.FirstName(ctx, "anon@example.com")
	require.NoError(t, err)
	assert.Equal(t, "there", name)

	_, err = store.FirstName(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrEmailNotFound)
}

func TestStoreStats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	twitter := "twitter"
	first := newEntry("alice@example.com", "Alice")
	first.ReferralSource = &twitter
	second := newEntry("bob@example.com", "Bob")
	second.ReferralSource = &twitter
	third := newEntry("carol@example.com", "Carol")

	for _, e := range []*Entry{first, second, third} {
		_, _, err := store.Join(ctx, e)
		require.NoError(t, err)
	}
	require.NoError(t, store.Invite(ctx, "bob@example.com"))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(3), stats.Recent)

	assert.Equal(t, int64(2), stats.ByStatus[StatusPending])
	assert.Equal(t, int64(1), stats.ByStatus[StatusInvited])

	// Absent referral sources bucket under "Unknown".
	require.Len(t, stats.TopReferralSources, 2)
	assert.Equal(t, ReferralCount{Source: "twitter", Count: 2}, stats.TopReferralSources[0])
	assert.Equal(t, ReferralCount{Source: "Unknown", Count: 1}, stats.TopReferralSources[1])

	// All three signups are recent, so the prior total clamps to 1.
	assert.Equal(t, 300.0, stats.GrowthRate)
}
