package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/server/config"
	"github.com/stretchr/testify/assert"
)

func TestRun_ReturnsSetupError(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDriver = "oracle"
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "app.db")

	err := run(context.Background(), cfg, logging.Discard())
	assert.ErrorContains(t, err, "db init error")
}
