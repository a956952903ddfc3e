package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestSSHServerConfigDefaults(t *testing.T) {
	tests := []struct {
		name string
		cfg  SSHServerConfig
		want SSHServerConfig
	}{
		{
			name: "empty takes defaults",
			cfg:  SSHServerConfig{},
			want: DefaultSSHServerConfig(),
		},
		{
			name: "explicit values kept",
			cfg:  SSHServerConfig{Address: ":2222", DBPath: "x.db", IdleTimeout: time.Minute, TickRate: 30},
			want: SSHServerConfig{Address: ":2222", DBPath: "x.db", IdleTimeout: time.Minute, TickRate: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.withDefaults()
			if got.Address != tt.want.Address || got.DBPath != tt.want.DBPath ||
				got.IdleTimeout != tt.want.IdleTimeout || got.TickRate != tt.want.TickRate {
				t.Errorf("withDefaults() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestSSHServerShutdownClosesStore(t *testing.T) {
	dir := t.TempDir()
	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "host_key"),
		DBPath:      filepath.Join(dir, "scores.db"),
		Logger:      log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	if srv.db == nil {
		t.Fatal("expected a database-backed store")
	}
	if err := srv.store.Set("neonstrike_highscore", "10"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if _, _, err := srv.db.Get("neonstrike_highscore"); err == nil {
		t.Error("store should be closed after shutdown")
	}
}
