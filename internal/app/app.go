package app

import (
	"go.uber.org/fx"

	"github.com/Additional-Code/petrogen/internal/catalog"
	"github.com/Additional-Code/petrogen/internal/config"
	"github.com/Additional-Code/petrogen/internal/csvio"
	"github.com/Additional-Code/petrogen/internal/dbadapter"
	"github.com/Additional-Code/petrogen/internal/generator"
	"github.com/Additional-Code/petrogen/internal/logger"
	"github.com/Additional-Code/petrogen/internal/report"
	"github.com/Additional-Code/petrogen/internal/rng"
)

// Core provides the foundational modules shared across commands.
var Core = fx.Options(
	config.Module,
	logger.Module,
	rng.Module,
	csvio.Module,
	catalog.Module,
	generator.Module,
	dbadapter.Module,
	report.Module,
)
