// config/config.go
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Neo4j         DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Auth          AuthConfiguration
	Cache         CacheConfiguration
	RateLimit     RateLimitConfiguration
	Bootstrap     BootstrapConfiguration
	Log           LogConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for the Neo4j connection
type DatabaseConfiguration struct {
	URI      string
	Username string
	Password string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	PoolTimeout  time.Duration
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL        string
	AuditIndex string
}

// AuthConfiguration holds the token signing settings
type AuthConfiguration struct {
	SecretKey                string
	Algorithm                string
	AccessTokenExpireMinutes int
	BcryptCost               int
}

// AccessTokenLifetime returns the default lifetime of issued tokens
func (a AuthConfiguration) AccessTokenLifetime() time.Duration {
	return time.Duration(a.AccessTokenExpireMinutes) * time.Minute
}

// CacheConfiguration holds per-namespace TTLs in seconds
type CacheConfiguration struct {
	TTL map[string]int
}

// RateLimitConfiguration bounds requests per client IP
type RateLimitConfiguration struct {
	Requests int
	Per      time.Duration
}

// BootstrapConfiguration controls seeding of roles and the first superuser
type BootstrapConfiguration struct {
	Enabled           bool
	SuperuserEmail    string
	SuperuserPassword string
}

type LogConfiguration struct {
	Dir string
}

var config *Configuration

func InitConfig() error {
	// .env is only present for local development
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return err
		}
	}

	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaults(viper.GetViper())

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	var cfg Configuration
	if err := viper.Unmarshal(&cfg); err != nil {
		return err
	}
	config = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("neo4j.uri", "bolt://localhost:7687")
	v.SetDefault("neo4j.username", "neo4j")
	v.SetDefault("neo4j.password", "")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dialTimeout", "2s")
	v.SetDefault("redis.readTimeout", "500ms")
	v.SetDefault("redis.writeTimeout", "500ms")
	v.SetDefault("redis.poolSize", 20)
	v.SetDefault("redis.poolTimeout", "1s")
	v.SetDefault("elasticsearch.url", "http://localhost:9200")
	v.SetDefault("elasticsearch.auditIndex", "audit-logs")
	// keys without a default are invisible to AutomaticEnv during Unmarshal
	v.SetDefault("auth.secretKey", "")
	v.SetDefault("auth.algorithm", "HS256")
	v.SetDefault("auth.accessTokenExpireMinutes", 60*24*8)
	v.SetDefault("auth.bcryptCost", 12)
	v.SetDefault("cache.ttl", map[string]int{
		"posts_list":      120,
		"post_detail":     300,
		"search":          60,
		"dashboard_stats": 60,
		"dashboard_posts": 60,
		"categories":      600,
		"tags":            600,
		"comments":        60,
	})
	v.SetDefault("rateLimit.requests", 100)
	v.SetDefault("rateLimit.per", "1m")
	v.SetDefault("bootstrap.enabled", false)
	v.SetDefault("bootstrap.superuserEmail", "")
	v.SetDefault("bootstrap.superuserPassword", "")
	v.SetDefault("log.dir", "logging")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}
