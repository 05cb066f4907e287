package cli

import (
	"fmt"
	"log/slog"

	"github.com/questdeck/questdeck/internal/packs"
	"github.com/questdeck/questdeck/internal/quest"
)

// buildRegistry constructs the pool registry: built-in pools plus,
// when packsDir is set, compiled pool packs. Pack loading is fail-fast
// here; `questdeck validate` is the collect-all path.
func buildRegistry(packsDir string) (*quest.Registry, error) {
	reg, err := quest.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	if packsDir == "" {
		return reg, nil
	}

	result, errs := packs.LoadPacks(packsDir, packs.LoadModeFailFast)
	if len(errs) > 0 {
		return nil, fmt.Errorf("load packs from %s: %w", packsDir, errs[0])
	}

	for _, pool := range result.Pools {
		if err := reg.Register(pool); err != nil {
			return nil, fmt.Errorf("register pack pool: %w", err)
		}
	}
	slog.Debug("packs loaded", "dir", packsDir, "pools", len(result.Pools), "files", result.FileCount)

	return reg, nil
}
