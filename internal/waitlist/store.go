// Package waitlist translates waitlist operations into queries against the
// external hosted row store.
package waitlist

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/slice"
	"gorm.io/gorm"
)

// recentWindow is the lookback used for the "recent signups" statistic.
const recentWindow = 7 * 24 * time.Hour

// unknownSource buckets rows whose referral source is absent.
const unknownSource = "Unknown"

// Store adapts waitlist operations onto the hosted store. The store itself
// owns all concurrency control; Store keeps no mutable state.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store adapter over the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Stats is the derived waitlist statistics payload, recomputed per request.
type Stats struct {
	Total              int64            `json:"total"`
	Recent             int64            `json:"recent"`
	ByStatus           map[string]int64 `json:"by_status"`
	TopReferralSources []ReferralCount  `json:"top_referral_sources"`
	GrowthRate         float64          `json:"growth_rate"`
}

// ReferralCount is one referral source with its signup count.
type ReferralCount struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

// PositionInfo is the result of a position lookup.
type PositionInfo struct {
	Position int64     `json:"position"`
	JoinedAt time.Time `json:"joined_at"`
}

// Join inserts a new entry and returns its position, defined as the
// post-insert total row count. The position is written back to the row in
// the same transaction, so later lookups read the value assigned here. A
// uniqueness violation on email maps to ErrDuplicateEmail; any other store
// failure passes through.
func (s *Store) Join(ctx context.Context, entry *Entry) (position, total int64, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) ||
				strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
				return ErrDuplicateEmail
			}
			return err
		}

		var count int64
		if err := tx.Model(&Entry{}).Count(&count).Error; err != nil {
			return err
		}

		if err := tx.Model(entry).Update("position", count).Error; err != nil {
			return err
		}

		entry.Position = count
		position, total = count, count
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return position, total, nil
}

// Stats issues four reads (total, 7-day recent, status histogram, referral
// histogram) and derives growth rate and the top-5 referral sources.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&Entry{}).Count(&total).Error; err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-recentWindow)
	var recent int64
	if err := s.db.WithContext(ctx).Model(&Entry{}).
		Where("created_at >= ?", cutoff).
		Count(&recent).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		Key   string
		Count int64
	}

	var statusRows []bucket
	if err := s.db.WithContext(ctx).Model(&Entry{}).
		Select("status as key, count(*) as count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	byStatus := make(map[string]int64, len(statusRows))
	for _, row := range statusRows {
		status := row.Key
		if status == "" {
			status = StatusPending
		}
		byStatus[status] += row.Count
	}

	var referralRows []bucket
	if err := s.db.WithContext(ctx).Model(&Entry{}).
		Select("coalesce(referral_source, '') as key, count(*) as count").
		Group("referral_source").
		Scan(&referralRows).Error; err != nil {
		return nil, err
	}
	referrals := make(map[string]int64, len(referralRows))
	for _, row := range referralRows {
		source := row.Key
		if source == "" {
			source = unknownSource
		}
		referrals[source] += row.Count
	}

	return &Stats{
		Total:              total,
		Recent:             recent,
		ByStatus:           byStatus,
		TopReferralSources: topReferralSources(referrals, 5),
		GrowthRate:         growthRate(total, recent),
	}, nil
}

// Position returns an entry's position and join time, or ErrEmailNotFound.
func (s *Store) Position(ctx context.Context, email string) (*PositionInfo, error) {
	var entry Entry
	err := s.db.WithContext(ctx).
		Select("position", "created_at").
		Where("email = ?", email).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}

	return &PositionInfo{
		Position: entry.Position,
		JoinedAt: entry.CreatedAt,
	}, nil
}

// Invite marks an entry as invited and stamps the invitation time. An email
// with no matching row yields ErrEmailNotFound.
func (s *Store) Invite(ctx context.Context, email string) error {
	now := time.Now().UTC()
	result := s.db.WithContext(ctx).Model(&Entry{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"status":     StatusInvited,
			"invited_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmailNotFound
	}
	return nil
}

// FirstName returns the first name stored for an email, falling back to
// "there" when the row is missing a name. Used for invitation greetings.
func (s *Store) FirstName(ctx context.Context, email string) (string, error) {
	var entry Entry
	err := s.db.WithContext(ctx).
		Select("first_name").
		Where("email = ?", email).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEmailNotFound
		}
		return "", err
	}

	if entry.FirstName == "" {
		return "there", nil
	}
	return entry.FirstName, nil
}

// growthRate is the ratio of recent signups to the prior total, as a
// percentage rounded to 2 decimal places.
func growthRate(total, recent int64) float64 {
	prior := total - recent
	if prior < 1 {
		prior = 1
	}
	rate := float64(recent) / float64(prior) * 100
	return math.Round(rate*100) / 100
}

// topReferralSources ranks referral sources by count descending, ties broken
// by source name ascending so the ordering is deterministic.
func topReferralSources(counts map[string]int64, limit int) []ReferralCount {
	ranked := make([]ReferralCount, 0, len(counts))
	for source, count := range counts {
		ranked = append(ranked, ReferralCount{Source: source, Count: count})
	}

	slice.SortBy(ranked, func(a, b ReferralCount) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Source < b.Source
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
