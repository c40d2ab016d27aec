package helper

import (
	"time"

	"github.com/spf13/viper"
)

var CfgFile string

const (
	DefaultBaseURL = "http://localhost:8000/api/v1"
	DefaultTimeout = 30 * time.Second
)

// BaseURL returns the configured dashboard API base URL.
func BaseURL() string {
	url := viper.GetString("url")
	if url == "" {
		return DefaultBaseURL
	}
	return url
}

// Timeout returns the configured per-request timeout.
func Timeout() time.Duration {
	seconds := viper.GetInt("timeout")
	if seconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(seconds) * time.Second
}
