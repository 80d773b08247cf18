package exhibition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artfriendly/go-api-server/internal/config"
	"github.com/artfriendly/go-api-server/internal/shared/cache"
	"github.com/artfriendly/go-api-server/internal/shared/page"
	"github.com/go-redis/redis/v8"
)

const (
	popularKey      = "exhibition:popular"
	pageKeyPrefix   = "exhibition:page:"
	endingKeyPrefix = "exhibition:ending:"
)

// Cache keeps member-independent exhibition listings in redis.
// isLike is never cached; it is filled per request.
type Cache struct {
	rdb       *redis.Client
	pageTTL   time.Duration
	endingTTL time.Duration
}

func NewCache(rdb *redis.Client, cfg config.CacheConfig) *Cache {
	return &Cache{
		rdb:       rdb,
		pageTTL:   cfg.ExhibitionPageTTL,
		endingTTL: cfg.EndingTTL,
	}
}

func pageKey(pageNumber int) string {
	return fmt.Sprintf("%s%d", pageKeyPrefix, pageNumber)
}

func endingKey(today time.Time) string {
	return endingKeyPrefix + today.Format(dateLayout)
}

func (c *Cache) GetPage(ctx context.Context, pageNumber int) (*page.Page[ExhibitionSummary], error) {
	var cached page.Page[ExhibitionSummary]
	if err := cache.GetJSON(ctx, c.rdb, pageKey(pageNumber), &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

func (c *Cache) SetPage(ctx context.Context, pageNumber int, p page.Page[ExhibitionSummary]) error {
	return cache.SetJSON(ctx, c.rdb, pageKey(pageNumber), p, c.pageTTL)
}

func (c *Cache) GetEnding(ctx context.Context, today time.Time) ([]ExhibitionSummary, error) {
	var cached []ExhibitionSummary
	if err := cache.GetJSON(ctx, c.rdb, endingKey(today), &cached); err != nil {
		return nil, err
	}
	return cached, nil
}

func (c *Cache) SetEnding(ctx context.Context, today time.Time, list []ExhibitionSummary) error {
	return cache.SetJSON(ctx, c.rdb, endingKey(today), list, c.endingTTL)
}

// GetPopular returns the stored ranking; a missing ranking is an empty list
func (c *Cache) GetPopular(ctx context.Context) ([]PopularExhibitionResponse, error) {
	var ranking []PopularExhibitionResponse
	err := cache.GetJSON(ctx, c.rdb, popularKey, &ranking)
	if errors.Is(err, cache.ErrCacheMiss) {
		return []PopularExhibitionResponse{}, nil
	}
	if err != nil {
		return nil, err
	}
	return ranking, nil
}

// SetPopular replaces the ranking in one SET
func (c *Cache) SetPopular(ctx context.Context, ranking []PopularExhibitionResponse) error {
	return cache.SetJSON(ctx, c.rdb, popularKey, ranking, 0)
}

// HasPopular reports whether a ranking has been stored yet
func (c *Cache) HasPopular(ctx context.Context) (bool, error) {
	n, err := c.rdb.Exists(ctx, popularKey).Result()
	if err != nil {
		return false, fmt.Errorf("cache exists %s: %w", popularKey, err)
	}
	return n > 0, nil
}

// InvalidateListings drops cached pages and ending lists
func (c *Cache) InvalidateListings(ctx context.Context) error {
	if err := cache.DeletePattern(ctx, c.rdb, pageKeyPrefix+"*"); err != nil {
		return err
	}
	return cache.DeletePattern(ctx, c.rdb, endingKeyPrefix+"*")
}
