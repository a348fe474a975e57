// Package routecache 在 Redis 中缓存批次的路线计算结果
// 路线是派生的建议性数据：允许随时重算覆盖，不作为权威状态
package routecache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/deliveryease/dispatch/algorithm"
)

const (
	// RouteCacheKeyPrefix Redis 缓存 key 前缀
	RouteCacheKeyPrefix = "route:plan:"
	// RouteCacheTTL 缓存过期时间
	RouteCacheTTL = 24 * time.Hour
)

// CachedPlan 缓存的路线和有效站点集合指纹
// 指纹不匹配说明批次的订单集合变了，缓存路线作废
type CachedPlan struct {
	Plan        algorithm.RoutePlan `json:"plan"`
	Fingerprint string              `json:"fingerprint"`
}

// Cache 路线缓存接口
type Cache interface {
	// Get 获取批次的缓存路线，不存在时返回 nil
	Get(ctx context.Context, batchID int64) (*CachedPlan, error)
	// Set 写入批次的路线
	Set(ctx context.Context, batchID int64, plan *CachedPlan) error
	// Delete 删除批次的缓存路线
	Delete(ctx context.Context, batchID int64) error
}

type redisRouteCache struct {
	client *redis.Client
}

// NewCache 创建路线缓存
func NewCache(redisAddr, redisPassword string) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &redisRouteCache{client: client}, nil
}

// NewCacheWithClient 用已有的 Redis 客户端创建路线缓存（测试用）
func NewCacheWithClient(client *redis.Client) Cache {
	return &redisRouteCache{client: client}
}

func cacheKey(batchID int64) string {
	return fmt.Sprintf("%s%d", RouteCacheKeyPrefix, batchID)
}

func (c *redisRouteCache) Get(ctx context.Context, batchID int64) (*CachedPlan, error) {
	data, err := c.client.Get(ctx, cacheKey(batchID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cached CachedPlan
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("unmarshal cached plan failed: %w", err)
	}

	return &cached, nil
}

func (c *redisRouteCache) Set(ctx context.Context, batchID int64, plan *CachedPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal cached plan failed: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(batchID), data, RouteCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisRouteCache) Delete(ctx context.Context, batchID int64) error {
	if err := c.client.Del(ctx, cacheKey(batchID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}
