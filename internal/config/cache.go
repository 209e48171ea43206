package config

import "time"

const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
)

type CacheConfig struct {
	Driver        string        `env:"DRIVER" envDefault:"redis"`
	CategoriesTTL time.Duration `env:"CATEGORIES_TTL" envDefault:"600s"`
	ProductsTTL   time.Duration `env:"PRODUCTS_TTL" envDefault:"300s"`
	CatalogTTL    time.Duration `env:"CATALOG_TTL" envDefault:"300s"`

	// in-process backend sizing
	MemoryCapacity    int `env:"MEMORY_CAPACITY" envDefault:"10000"`
	MemoryShards      int `env:"MEMORY_SHARDS" envDefault:"64"`
	MemoryEvictionPct int `env:"MEMORY_EVICTION_PCT" envDefault:"10"`
}

func LoadCacheConfig() (*CacheConfig, error) {
	return parse[CacheConfig]("cache", "CACHE_")
}

// MaxTTL is the longest per-domain TTL, used as the in-process client TTL.
func (c *CacheConfig) MaxTTL() time.Duration {
	maxTTL := c.CategoriesTTL
	for _, ttl := range []time.Duration{c.ProductsTTL, c.CatalogTTL} {
		if ttl > maxTTL {
			maxTTL = ttl
		}
	}
	return maxTTL
}
