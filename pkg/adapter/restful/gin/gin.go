// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine and its middlewares, so the
// local REST API of parkshare may be served and its requests logged
// with the structured logging of the log package.
package gin

import (
	"log/slog"
	"net/http"

	"github.com/FabienMht/ginslog/logger"
	"github.com/FabienMht/ginslog/recovery"
	"github.com/gin-gonic/gin"
	"github.com/momeni/parkshare/pkg/core/log"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// New creates an engine whose contexts fall back to their request
// context, so handlers may pass the *gin.Context to the use cases and
// the request cancellation and log attributes are kept.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.ContextWithFallback = true
	e.Use(middlewares...)
	return e
}

// RequestAttrs attaches the request method and path to the request
// context, so all records which are logged while handling it carry
// them.
func RequestAttrs() HandlerFunc {
	return func(c *gin.Context) {
		ctx := log.WithAttrs(c.Request.Context(),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Logger logs one record per handled request using the default slog
// logger, so it must be created after the default logger is set.
// Server errors are logged at the error level and client errors at the
// warn level. Private errors of the gin context are included.
func Logger() HandlerFunc {
	return logger.New(slog.Default(),
		logger.WithCustomFields(func(c *gin.Context) []slog.Attr {
			errs := c.Errors.ByType(gin.ErrorTypePrivate)
			if len(errs) == 0 {
				return nil
			}
			return []slog.Attr{slog.String("errors", errs.String())}
		}),
	)
}

// Recovery recovers from panics of the next handlers, logs them using
// the default slog logger, and responds with 500 status code.
func Recovery() HandlerFunc {
	return recovery.New(slog.Default(),
		recovery.WithCustomRecovery(func(c *gin.Context, _ any) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"detail": "internal server error",
			})
		}),
	)
}
