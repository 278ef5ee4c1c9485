package pagecache

import (
	"context"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"
	"path"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// pageCache keeps rendered GET responses in redis. Every entry is indexed
// under its own path and each ancestor path, so invalidating a path also
// drops everything beneath it.
type pageCache struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewPageCache(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.PageCache {
	return &pageCache{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func entryKey(pagePath, query, userKey string) string {
	return constvars.PageCacheRedisKeyPrefix + pagePath + "?" + query + "#" + userKey
}

func indexKey(pagePath string) string {
	return constvars.PageCacheIndexKeyPrefix + pagePath
}

func normalize(pagePath string) string {
	if pagePath == "" {
		return "/"
	}
	return path.Clean("/" + strings.TrimPrefix(pagePath, "/"))
}

// ancestors lists pagePath followed by its parents up to the root.
func ancestors(pagePath string) []string {
	out := []string{pagePath}
	for pagePath != "/" {
		pagePath = path.Dir(pagePath)
		out = append(out, pagePath)
	}
	return out
}

// Lookup returns nil without an error on a miss.
func (c *pageCache) Lookup(ctx context.Context, pagePath, query, userKey string) (*models.CachedPage, error) {
	data, err := c.RedisRepository.Get(ctx, entryKey(normalize(pagePath), query, userKey))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	page := new(models.CachedPage)
	err = json.Unmarshal([]byte(data), page)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return page, nil
}

func (c *pageCache) Store(ctx context.Context, pagePath, query, userKey string, page *models.CachedPage) error {
	if c.TTL <= 0 {
		return nil
	}
	pagePath = normalize(pagePath)
	key := entryKey(pagePath, query, userKey)

	err := c.RedisRepository.Set(ctx, key, page, c.TTL)
	if err != nil {
		return err
	}
	for _, parent := range ancestors(pagePath) {
		err = c.RedisRepository.AddToSet(ctx, indexKey(parent), key)
		if err != nil {
			return err
		}
		err = c.RedisRepository.Expire(ctx, indexKey(parent), c.TTL)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *pageCache) Invalidate(ctx context.Context, paths ...string) error {
	for _, pagePath := range paths {
		index := indexKey(normalize(pagePath))
		keys, err := c.RedisRepository.GetSetMembers(ctx, index)
		if err != nil {
			return err
		}
		err = c.RedisRepository.Delete(ctx, append(keys, index)...)
		if err != nil {
			return err
		}
	}
	return nil
}
