// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/bookfinder/internal/engine"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search API over HTTP",
	Long: `Serve exposes the discovery pipeline as a JSON API:

  GET /api/search?q=<query>&sources=<csv>   run a ranked search
  GET /api/books?source=<platform>          browse the curated catalog
  GET /healthz                              liveness probe`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)
	e := engine.Build(cfg, os.Stderr)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestID())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version})
	})

	router.GET("/api/search", func(c *gin.Context) {
		sel, _, err := parseSources(c.Query("sources"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := e.Search(c.Request.Context(), c.Query("q"), sel)
		if err != nil {
			var ve *engine.ValidationError
			if errors.As(err, &ve) {
				c.JSON(http.StatusBadRequest, gin.H{"error": ve.Reason})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.GET("/api/books", func(c *gin.Context) {
		books := e.ListCandidates(strings.TrimSpace(c.Query("source")))
		c.JSON(http.StatusOK, gin.H{"books": books, "total": len(books)})
	})

	addr, _ := cmd.Flags().GetString("addr")
	fmt.Fprintf(os.Stderr, "Listening on %s\n", addr)
	return router.Run(addr)
}

// requestID tags every request with a UUID for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
