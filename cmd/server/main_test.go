package main

import (
	"strings"
	"testing"
)

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("GO_ENV", "")
	if cfg := loadConfig(); cfg.Env != "development" {
		t.Errorf("Expected development by default, got %q", cfg.Env)
	}

	t.Setenv("GO_ENV", "production")
	if cfg := loadConfig(); cfg.Env != "production" {
		t.Errorf("Expected production, got %q", cfg.Env)
	}
}

func TestFiberConfigFollowsEnv(t *testing.T) {
	tests := []struct {
		env         string
		printRoutes bool
	}{
		{"development", true},
		{"staging", true},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			got := fiberConfig(&Config{Env: tt.env})
			if got.EnablePrintRoutes != tt.printRoutes {
				t.Errorf("EnablePrintRoutes = %v, want %v", got.EnablePrintRoutes, tt.printRoutes)
			}
			if !strings.Contains(got.AppName, "("+tt.env+")") {
				t.Errorf("Expected env in app name, got %q", got.AppName)
			}
			if got.ErrorHandler == nil {
				t.Error("Expected JSON error handler")
			}
		})
	}
}
