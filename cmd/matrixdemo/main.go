// SPDX-License-Identifier: MIT

// Command matrixdemo inverts a 1×1 matrix holding MATRIXDEMO_DEMO_VALUE and
// logs the expected and computed reciprocal.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/s21kit/internal/config"
	"github.com/katalvlaran/s21kit/internal/logging"
	"github.com/katalvlaran/s21kit/matrix"
)

func main() {
	os.Exit(run(os.Stderr))
}

// run executes the demo and returns the process exit code.
func run(w io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		return 1
	}
	logger, err := logging.New(w, cfg.Log)
	if err != nil {
		slog.Error("logger", "err", err)
		return 1
	}

	inv, err := invert(cfg.Demo.Value)
	if err != nil {
		logger.Error("inverse failed", "value", cfg.Demo.Value, "err", err)
		return 1
	}
	logger.Info("inverse", "value", cfg.Demo.Value, "expected", 1/cfg.Demo.Value, "got", inv)

	return 0
}

// invert returns the single entry of inverse([[v]]).
func invert(v float64) (float64, error) {
	m := matrix.New()
	if err := m.Set(0, 0, v); err != nil {
		return 0, err
	}
	inv, err := m.InverseMatrix()
	if err != nil {
		return 0, err
	}

	return inv.Elem(0, 0), nil
}
