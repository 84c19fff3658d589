package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/glowdesk/salon-scheduler/internal/config"
	dbpkg "github.com/glowdesk/salon-scheduler/internal/db"
	"github.com/glowdesk/salon-scheduler/internal/routes"
)

func main() {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	log := logrus.WithField("component", "api")

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.WithField("addr", cfg.Addr()).Info("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
