package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "5000"
	defaultMongoHost    = "cluster0.pqvcpai.mongodb.net"
	defaultDBName       = "wordinsightDB"
	defaultStoreTimeout = 10 * time.Second
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"https://worldinsight.netlify.app",
}

type Config struct {
	Port         string
	AccessToken  string
	MongoURI     string
	MongoDBName  string
	Production   bool
	CORSOrigins  []string
	StoreTimeout time.Duration
}

// Load reads the env file named by START (or .env) and then the process
// environment. Any configuration error is fatal.
func Load() *Config {
	file := os.Getenv("START")
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Cannot parse env file %s: %v", file, err)
		}
		log.Printf("Env file %s not found, using process environment", file)
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("%v", err)
	}
	return cfg
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		AccessToken: os.Getenv("ACCESS_TOKEN"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDBName: getEnv("MONGO_DB_NAME", defaultDBName),
		Production:  isProduction(),
		CORSOrigins: getEnvList("CORS_ALLOWED_ORIGINS", defaultOrigins),
	}

	if cfg.AccessToken == "" {
		return nil, errors.New("ACCESS_TOKEN is not set in environment")
	}

	if cfg.MongoURI == "" {
		user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
		if user == "" || pass == "" {
			return nil, errors.New("MONGO_URI or DB_USER/DB_PASS must be set in environment")
		}
		cfg.MongoURI = atlasURI(user, pass, getEnv("MONGO_HOST", defaultMongoHost))
	}

	timeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", defaultStoreTimeout.String()))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT %q", os.Getenv("STORE_TIMEOUT"))
	}
	cfg.StoreTimeout = timeout

	return cfg, nil
}

func atlasURI(user, pass, host string) string {
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=Cluster0",
	}
	return u.String()
}

func isProduction() bool {
	env := os.Getenv("NODE_ENV")
	if env == "" {
		env = os.Getenv("APP_ENV")
	}
	return strings.EqualFold(env, "production")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
