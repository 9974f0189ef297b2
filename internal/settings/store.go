package settings

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salonworks/salon-scheduler/internal/models"
)

const cacheTTL = 5 * time.Minute

// Store reads and writes SystemSetting rows, with an optional Redis
// read-through cache in front of the database. A nil Redis client disables
// caching; the store stays fully functional either way.
type Store struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewStore(db *gorm.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

func cacheKey(key string) string {
	return "setting:" + key
}

// Get returns the value for key. Missing keys surface the underlying
// gorm.ErrRecordNotFound; callers that can default (the business-hours
// resolver) treat any error as "use the default".
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, cacheKey(key)).Result(); err == nil {
			return val, nil
		}
	}

	var row models.SystemSetting
	if err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&row).Error; err != nil {
		return "", err
	}

	if s.rdb != nil {
		s.rdb.Set(ctx, cacheKey(key), row.Value, cacheTTL)
	}

	return row.Value, nil
}

// Set upserts a setting and invalidates its cache entry.
func (s *Store) Set(ctx context.Context, key, value string) error {
	row := models.SystemSetting{Key: key, Value: value}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error; err != nil {
		return err
	}

	if s.rdb != nil {
		s.rdb.Del(ctx, cacheKey(key))
	}

	return nil
}
