package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/renascerfit/coach/internal/app/api/server"
	"github.com/renascerfit/coach/internal/app/service/billing"
	"github.com/renascerfit/coach/internal/app/service/entitlement"
	"github.com/renascerfit/coach/internal/app/service/guard"
	"github.com/renascerfit/coach/internal/app/service/readiness"
	"github.com/renascerfit/coach/internal/platform/db"
	"github.com/renascerfit/coach/pkg/config"
	"github.com/renascerfit/coach/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	entitlement.Module,
	guard.Module,
	readiness.Module,
	billing.Module,
)
