package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr      string `yaml:"listen_addr" json:"listen_addr"`
	WorkDir         string `yaml:"work_dir" json:"work_dir"`
	MetaDSN         string `yaml:"meta_dsn" json:"meta_dsn"`
	FFmpegBin       string `yaml:"ffmpeg_bin" json:"ffmpeg_bin"`
	SegmentSeconds  int    `yaml:"segment_seconds" json:"segment_seconds"`
	SplitTimeoutSec int    `yaml:"split_timeout_sec" json:"split_timeout_sec"`
	MaxUploadMB     int64  `yaml:"max_upload_mb" json:"max_upload_mb"`
	GCTTLMin        int    `yaml:"gc_ttl_min" json:"gc_ttl_min"`
	GCIntervalMin   int    `yaml:"gc_interval_min" json:"gc_interval_min"`
}

// Load читает YAML-конфигурацию, применяет ENV-переопределения и возвращает актуальную структуру.
func Load() (*Config, error) {
	path := getenv("CONFIG_PATH", "./config.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	// ENV override
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("WORK_DIR"); v != "" {
		c.WorkDir = v
	}
	if v := os.Getenv("META_DSN"); v != "" {
		c.MetaDSN = v
	}
	if v := os.Getenv("FFMPEG_BIN"); v != "" {
		c.FFmpegBin = v
	}
	c.SegmentSeconds = envInt("SEGMENT_SECONDS", c.SegmentSeconds)
	c.SplitTimeoutSec = envInt("SPLIT_TIMEOUT_SEC", c.SplitTimeoutSec)

	c.ApplyDefaults()

	return &c, nil
}

// ApplyDefaults заполняет нулевые поля значениями по умолчанию.
func (c *Config) ApplyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.WorkDir == "" {
		c.WorkDir = "/tmp/audiosplit"
	}
	if c.FFmpegBin == "" {
		c.FFmpegBin = "ffmpeg"
	}
	if c.SegmentSeconds <= 0 {
		c.SegmentSeconds = 600
	}
	if c.SplitTimeoutSec <= 0 {
		c.SplitTimeoutSec = 300
	}
	if c.MaxUploadMB <= 0 {
		c.MaxUploadMB = 512
	}
	if c.GCTTLMin <= 0 {
		c.GCTTLMin = 60
	}
	if c.GCIntervalMin <= 0 {
		c.GCIntervalMin = 30
	}
}

// envInt возвращает целочисленное значение из переменной окружения либо дефолт.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
