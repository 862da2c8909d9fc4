// Package server exposes the path counters over HTTP with gin.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Controller registers a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	ginMode     string
	controllers []Controller
	log         logrus.FieldLogger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	GinMode     string // gin.ReleaseMode, gin.DebugMode or gin.TestMode
	Controllers []Controller
	Logger      logrus.FieldLogger
}

// NewRouter creates a new Router instance with the given configuration.
// A nil Logger falls back to the logrus standard logger.
func NewRouter(config Config) *Router {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		ginMode:     config.GinMode,
		controllers: config.Controllers,
		log:         log,
	}
}

// Engine builds the gin engine with every controller mounted under
// {baseURL}/v1.
func (r *Router) Engine() *gin.Engine {
	if r.ginMode != "" {
		gin.SetMode(r.ginMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(r.log))

	v1 := engine.Group(r.baseURL).Group("/v1")
	{
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}

	return engine
}

// Run starts the HTTP server and blocks until it fails.
func (r *Router) Run() error {
	r.log.WithField("addr", r.addr).Info("HTTP API listening")
	return r.Engine().Run(r.addr)
}
