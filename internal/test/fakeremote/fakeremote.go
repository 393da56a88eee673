// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fakeremote provides an in-memory parking service for tests
// which need a real HTTP endpoint for the remote spots repository.
package fakeremote

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Server is an in-memory parking service. Its URL field may be used
// as the remote url setting.
type Server struct {
	*httptest.Server

	mu      sync.Mutex
	nextID  int
	spots   []gin.H
	failing bool
}

// New starts a new Server which must be closed by the caller.
func New() *Server {
	s := &Server{}
	s.Server = httptest.NewServer(s.engine())
	return s
}

// Add inserts a free spot which was reported age ago at the given
// coordinate and returns its id.
func (s *Server) Add(lat, lon float64, age time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := strconv.Itoa(s.nextID)
	s.spots = append(s.spots, gin.H{
		"id":         id,
		"latitude":   lat,
		"longitude":  lon,
		"message":    "Libre (GPS)",
		"status":     "libre",
		"created_at": time.Now().Add(-age).UTC().Format(time.RFC3339),
	})
	return id
}

// SetFailing makes all requests fail with a 502 status code, having
// "down" as their detail message.
func (s *Server) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

// Messages returns the message fields of the stored spots.
func (s *Server) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := make([]string, 0, len(s.spots))
	for _, spot := range s.spots {
		m, _ := spot["message"].(string)
		msgs = append(msgs, m)
	}
	return msgs
}

func (s *Server) engine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(func(c *gin.Context) {
		s.mu.Lock()
		failing := s.failing
		s.mu.Unlock()
		if failing {
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"detail": "down"})
		}
	})
	e.GET("/parkings", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, append([]gin.H{}, s.spots...))
	})
	e.POST("/report", func(c *gin.Context) {
		var req gin.H
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.nextID++
		req["id"] = strconv.Itoa(s.nextID)
		s.spots = append(s.spots, req)
		c.JSON(http.StatusOK, req)
	})
	e.DELETE("/parkings/:id", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, spot := range s.spots {
			if spot["id"] == c.Param("id") {
				s.spots = append(s.spots[:i], s.spots[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"ok": true})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	return e
}
