package config

import (
	"testing"
	"time"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := fromEnv(env(nil))
	if err != nil {
		t.Fatalf("fromEnv: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.WebDist != "web/dist" || cfg.BotLevel != "normal" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.BotDelay != time.Second || cfg.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestOverrides(t *testing.T) {
	cases := []struct {
		name string
		vars map[string]string
		want Config
	}{
		{
			name: "port fallback",
			vars: map[string]string{"PORT": "3000"},
			want: Config{Addr: ":3000", WebDist: "web/dist", BotDelay: time.Second, BotLevel: "normal"},
		},
		{
			name: "addr wins over port",
			vars: map[string]string{"ADDR": "127.0.0.1:9000", "PORT": "3000"},
			want: Config{Addr: "127.0.0.1:9000", WebDist: "web/dist", BotDelay: time.Second, BotLevel: "normal"},
		},
		{
			name: "everything",
			vars: map[string]string{
				"WEB_DIST":  "/srv/www",
				"BOT_DELAY": "250ms",
				"BOT_LEVEL": "Easy",
				"DEBUG":     "yes",
			},
			want: Config{Addr: ":8080", WebDist: "/srv/www", BotDelay: 250 * time.Millisecond, BotLevel: "easy", Debug: true},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fromEnv(env(tc.vars))
			if err != nil {
				t.Fatalf("fromEnv: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestInvalidValues(t *testing.T) {
	for _, vars := range []map[string]string{
		{"BOT_DELAY": "soon"},
		{"BOT_DELAY": "-1s"},
		{"BOT_LEVEL": "grandmaster"},
		{"DEBUG": "maybe"},
	} {
		if _, err := fromEnv(env(vars)); err == nil {
			t.Fatalf("expected error for %v", vars)
		}
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":7070")
	t.Setenv("BOT_DELAY", "2s")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.BotDelay != 2*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
