package hugo

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"time"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// SkipHugoEnv disables Render when set to "1".
const SkipHugoEnv = "DOCSITE_SKIP_HUGO"

// Render runs hugo inside the output directory, producing public/.
func (g *Generator) Render(ctx context.Context) error {
	if os.Getenv(SkipHugoEnv) == "1" {
		slog.Info("Skipping Hugo render", "env", SkipHugoEnv)
		return nil
	}
	bin, err := exec.LookPath(g.config.Hugo.Binary)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryHugo, "hugo binary not found").
			WithContext("binary", g.config.Hugo.Binary).Build()
	}

	start := time.Now()
	// #nosec G204 -- binary comes from operator configuration
	cmd := exec.CommandContext(ctx, bin, "--gc", "--minify", "--destination", "public")
	cmd.Dir = g.outDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	slog.Info("Running Hugo binary to render static site", logfields.Path(g.outDir))
	if err := cmd.Run(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryHugo, "hugo command failed").
			WithContext("dir", g.outDir).Build()
	}
	slog.Info("Hugo render complete",
		logfields.Path(g.PublicDir()),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}
