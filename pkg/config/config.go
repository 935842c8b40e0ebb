package config

import "time"

// Dashboard definition dashboard service YAML structure
type Dashboard struct {
	Port      string `mapstructure:"port"`
	IP        string `mapstructure:"ip"`
	PprofAddr string `mapstructure:"pprof_addr"`

	YouTube YouTubeConfig `mapstructure:"youtube"`
	Search  SearchConfig  `mapstructure:"search"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

// YouTubeConfig definition YouTube Data API client setting
type YouTubeConfig struct {
	// KeyFile JSON file holding {"KEY": "..."}
	KeyFile string `mapstructure:"key_file"`
	// Endpoint overrides the API base URL, empty uses the public endpoint
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// SearchConfig definition search form defaults
type SearchConfig struct {
	DefaultQuery string `mapstructure:"default_query"`
	DefaultOrder string `mapstructure:"default_order"`
	MaxResults   int64  `mapstructure:"max_results"`
}

// CacheConfig definition query cache setting
type CacheConfig struct {
	// TTL of the in-process cache, 0 keeps entries for the process lifetime
	TTL time.Duration `mapstructure:"ttl"`
	// RedisTTL of the shared cache, only used when redis is enabled
	RedisTTL time.Duration `mapstructure:"redis_ttl"`
}

// RedisConfig definition redis setting
type RedisConfig struct {
	Enabled       bool     `mapstructure:"enabled"`
	Addr          string   `mapstructure:"addr"`
	Password      string   `mapstructure:"password"`
	RedisDB       int      `mapstructure:"redis_db"`
	MasterName    string   `mapstructure:"master_name"`
	SentinelAddrs []string `mapstructure:"sentinel_addrs"`
}

// ApplyDefaults fills zero values left by the YAML file
func (d *Dashboard) ApplyDefaults() {
	if d.Port == "" {
		d.Port = "8501"
	}
	if d.YouTube.KeyFile == "" {
		d.YouTube.KeyFile = "env.json"
	}
	if d.YouTube.Timeout == 0 {
		d.YouTube.Timeout = 15 * time.Second
	}
	if d.Search.DefaultQuery == "" {
		d.Search.DefaultQuery = "Python"
	}
	if d.Search.DefaultOrder == "" {
		d.Search.DefaultOrder = "viewCount"
	}
	if d.Search.MaxResults == 0 {
		d.Search.MaxResults = 50
	}
	if d.Cache.RedisTTL == 0 {
		d.Cache.RedisTTL = time.Hour
	}
}
