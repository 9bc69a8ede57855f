package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.API.BaseURL != "http://localhost:8081/api" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.API.Timeout)
	}
	if cfg.Search.Debounce != 400*time.Millisecond {
		t.Errorf("Debounce = %v", cfg.Search.Debounce)
	}
	if cfg.Search.PageSize != 5 {
		t.Errorf("PageSize = %d", cfg.Search.PageSize)
	}
	if cfg.SSH.Port != "2222" {
		t.Errorf("SSH.Port = %q", cfg.SSH.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADCENTER_API_URL", "https://ads.example.com/api")
	t.Setenv("ADCENTER_API_TIMEOUT", "3s")
	t.Setenv("ADCENTER_SEARCH_DEBOUNCE", "250ms")
	t.Setenv("ADCENTER_PAGE_SIZE", "20")
	t.Setenv("ADCENTER_TOKEN", "tok")

	cfg := Load()

	if cfg.API.BaseURL != "https://ads.example.com/api" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v", cfg.API.Timeout)
	}
	if cfg.Search.Debounce != 250*time.Millisecond {
		t.Errorf("Debounce = %v", cfg.Search.Debounce)
	}
	if cfg.Search.PageSize != 20 {
		t.Errorf("PageSize = %d", cfg.Search.PageSize)
	}
	if cfg.API.Token != "tok" {
		t.Errorf("Token = %q", cfg.API.Token)
	}
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("ADCENTER_API_TIMEOUT", "soon")
	t.Setenv("ADCENTER_PAGE_SIZE", "many")

	cfg := Load()

	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want default", cfg.API.Timeout)
	}
	if cfg.Search.PageSize != 5 {
		t.Errorf("PageSize = %d, want default", cfg.Search.PageSize)
	}
}
