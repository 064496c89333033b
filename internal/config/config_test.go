package config

import (
	"os"
	"path/filepath"
	"testing"
)

func unsetKeepsakeEnv() {
	_ = os.Unsetenv("KEEPSAKE_HTTP_PORT")
	_ = os.Unsetenv("KEEPSAKE_DATA_DIR")
	_ = os.Unsetenv("KEEPSAKE_STATIC_DIR")
	_ = os.Unsetenv("KEEPSAKE_UPLOAD_DIR")
	_ = os.Unsetenv("KEEPSAKE_MAX_UPLOAD_BYTES")
	_ = os.Unsetenv("KEEPSAKE_SESSION_TTL_HOURS")
}

func TestConfigLoad_Defaults(t *testing.T) {
	unsetKeepsakeEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 3000 {
		t.Fatalf("unexpected default port: %d", cfg.HTTPPort)
	}
	if cfg.MaxUploadBytes != 50*1024*1024 {
		t.Fatalf("unexpected default upload bound: %d", cfg.MaxUploadBytes)
	}
	if cfg.SessionTTLHours != 168 {
		t.Fatalf("unexpected default session ttl: %d", cfg.SessionTTLHours)
	}
}

func TestConfigLoad_UploadDirDerivedFromStaticDir(t *testing.T) {
	unsetKeepsakeEnv()
	_ = os.Setenv("KEEPSAKE_STATIC_DIR", "/srv/keepsake/frontend")
	defer unsetKeepsakeEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	want := filepath.Join("/srv/keepsake/frontend", "assets", "uploads")
	if cfg.UploadDir != want {
		t.Fatalf("upload dir derivation failed, got %s", cfg.UploadDir)
	}
}

func TestConfigLoad_UploadDirOverride(t *testing.T) {
	unsetKeepsakeEnv()
	_ = os.Setenv("KEEPSAKE_UPLOAD_DIR", "/var/lib/keepsake/uploads")
	defer unsetKeepsakeEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.UploadDir != "/var/lib/keepsake/uploads" {
		t.Fatalf("upload dir override failed, got %s", cfg.UploadDir)
	}
}

func TestResolveDefaults_RejectsBadPort(t *testing.T) {
	cfg := &Config{HTTPPort: 0, StaticDir: ".", MaxUploadBytes: 1, SessionTTLHours: 1}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error for port 0")
	}
}

func TestResolveDefaults_RejectsBadTTL(t *testing.T) {
	cfg := &Config{HTTPPort: 3000, StaticDir: ".", MaxUploadBytes: 1, SessionTTLHours: 0}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error for zero ttl")
	}
}
