package forge

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// ForgeAdapter runs forge commands in a Foundry project
type ForgeAdapter struct {
	log    *slog.Logger
	binary string
}

// NewForgeAdapter creates a new forge executor
func NewForgeAdapter(log *slog.Logger) *ForgeAdapter {
	return &ForgeAdapter{
		log:    log.With("component", "ForgeAdapter"),
		binary: "forge",
	}
}

// Build runs forge build in dir
func (f *ForgeAdapter) Build(ctx context.Context, dir string) error {
	start := time.Now()
	f.log.Debug("running forge build", "dir", dir)

	cmd := exec.CommandContext(ctx, f.binary, "build")
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	duration := time.Since(start)

	if err != nil {
		f.log.Error("forge build failed", "error", err, "output", string(output), "duration", duration)
		return fmt.Errorf("forge build failed: %w\nOutput: %s", err, string(output))
	}

	f.log.Debug("forge build completed successfully", "duration", duration)
	return nil
}
