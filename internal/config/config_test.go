package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
nthread: 4
nu: 64
nv: 64
nghost: 4
reconstruct_order: 3
scheme: ssprk3
cfl_num: 0.4
max_epoch: 10
problem: sod
params:
  nu: 64
broadcast:
  enabled: true
  addr: ":9000"
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeTemp(t, "run.yaml", sampleYAML)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NThread != 4 || cfg.NU != 64 || cfg.NV != 64 {
		t.Errorf("unexpected grid config: %+v", cfg)
	}
	if cfg.Problem != "sod" {
		t.Errorf("Problem = %q, want sod", cfg.Problem)
	}
	if !cfg.Broadcast.Enabled || cfg.Broadcast.Addr != ":9000" {
		t.Errorf("unexpected broadcast config: %+v", cfg.Broadcast)
	}
	if cfg.Gamma != 1.4 {
		t.Errorf("default gamma not applied: got %v", cfg.Gamma)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  RunConfig
	}{
		{"zero threads", RunConfig{NThread: 0, NGhost: 4, ReconstructOrder: 3, NU: 8, Problem: "sod", Scheme: "ssprk3"}},
		{"too few ghosts", RunConfig{NThread: 1, NGhost: 2, ReconstructOrder: 3, NU: 8, Problem: "sod", Scheme: "ssprk3"}},
		{"bad order", RunConfig{NThread: 1, NGhost: 4, ReconstructOrder: 5, NU: 8, Problem: "sod", Scheme: "ssprk3"}},
		{"more threads than cells", RunConfig{NThread: 9, NGhost: 4, ReconstructOrder: 3, NU: 8, Problem: "sod", Scheme: "ssprk3"}},
		{"missing problem", RunConfig{NThread: 1, NGhost: 4, ReconstructOrder: 3, NU: 8, Scheme: "ssprk3"}},
		{"unknown scheme", RunConfig{NThread: 1, NGhost: 4, ReconstructOrder: 3, NU: 8, Problem: "sod", Scheme: "rk4"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.cfg.Validate(); err == nil {
				t.Errorf("expected an error for %s", c.name)
			}
		})
	}
}

func TestValidateAcceptsGoodConfig(t *testing.T) {
	cfg := RunConfig{NThread: 4, NGhost: 4, ReconstructOrder: 3, NU: 64, Problem: "sod", Scheme: "ssprk3"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
