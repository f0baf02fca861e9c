package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/shopyard/shopyard-backend/api/responses"
	"github.com/shopyard/shopyard-backend/pkg/config"
	"github.com/shopyard/shopyard-backend/pkg/db"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
	"github.com/shopyard/shopyard-backend/pkg/logger"
	"github.com/shopyard/shopyard-backend/pkg/redis"
)

const readinessTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Shopyard-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Shopyard-Env", cfg.App.Env)
		ctx := r.Context()

		checks := map[string]string{}
		healthy := true

		if dbP != nil {
			pingCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
			err := dbP.Ping(pingCtx)
			cancel()
			if err != nil {
				checks["database"] = "down"
				healthy = false
			} else {
				checks["database"] = "up"
			}
		}

		if redisP != nil {
			pingCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
			err := redisP.Ping(pingCtx)
			cancel()
			if err != nil {
				checks["redis"] = "down"
				healthy = false
			} else {
				checks["redis"] = "up"
			}
		}

		if !healthy {
			err := pkgerrors.New(pkgerrors.CodeDependency, "service not ready").WithDetails(checks)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}

func Ping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}
