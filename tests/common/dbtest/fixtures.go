//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rvmarket/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	fixtureHashOnce sync.Once
	fixtureHash     string
)

// all fixture users share one bcrypt hash; hashing per user would dominate test time
func passwordHash(t *testing.T) string {
	t.Helper()

	fixtureHashOnce.Do(func() {
		hash, err := password.HashPassword("password123")
		if err != nil {
			panic(err)
		}
		fixtureHash = hash
	})
	return fixtureHash
}

func CreateTestUser(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, name, email, passwordHash(t))
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestListing(t *testing.T, db DBLike, ownerID uuid.UUID, title string, pricePerDay int64) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO rv_listings (id, user_id, title, description, location, price_per_day) VALUES ($1, $2, $3, $4, $5, $6)",
		listingID, ownerID, title, "A comfortable camper for weekend trips", "Denver, CO", pricePerDay)
	require.NoError(t, err)

	return listingID
}

func CreateTestBooking(t *testing.T, db DBLike, listingID, userID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO bookings (id, rv_listing_id, user_id, start_date, end_date, status) VALUES ($1, $2, $3, $4, $5, $6)",
		bookingID, listingID, userID, start, end, status)
	require.NoError(t, err)

	return bookingID
}

func BookingCount(t *testing.T, db DBLike, listingID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE rv_listing_id = $1", listingID).Scan(&count)
	require.NoError(t, err)

	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from an empty database
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
