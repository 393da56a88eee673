// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsrp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/momeni/parkshare/pkg/adapter/remote/spotsrp"
	"github.com/momeni/parkshare/pkg/core/cerr"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

var _ repo.Spots = (*spotsrp.Repo)(nil)

// fakeRemote mimics the parking service with integer primary keys.
type fakeRemote struct {
	mu      sync.Mutex
	nextID  int
	spots   []gin.H
	devices []string
	failing int // status code for all requests if non-zero
}

func (f *fakeRemote) engine() *gin.Engine {
	e := gin.New()
	e.Use(func(c *gin.Context) {
		f.mu.Lock()
		failing := f.failing
		if d := c.GetHeader(spotsrp.DeviceHeader); d != "" {
			f.devices = append(f.devices, d)
		}
		f.mu.Unlock()
		if failing != 0 {
			c.AbortWithStatusJSON(failing, gin.H{"detail": "server says no"})
		}
	})
	e.GET("/parkings", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		c.JSON(http.StatusOK, append([]gin.H{}, f.spots...))
	})
	e.POST("/report", func(c *gin.Context) {
		var req struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Message   string  `json:"message"`
			Status    string  `json:"status"`
			CreatedAt string  `json:"created_at" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.nextID++
		s := gin.H{
			"id":         f.nextID,
			"latitude":   req.Latitude,
			"longitude":  req.Longitude,
			"message":    req.Message,
			"status":     req.Status,
			"created_at": req.CreatedAt,
		}
		f.spots = append(f.spots, s)
		c.JSON(http.StatusOK, s)
	})
	e.DELETE("/parkings/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "bad id"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, s := range f.spots {
			if s["id"] == id {
				f.spots = append(f.spots[:i], f.spots[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"ok": true})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	return e
}

type RemoteSuite struct {
	suite.Suite
	fake   *fakeRemote
	srv    *httptest.Server
	repo   *spotsrp.Repo
	device uuid.UUID
}

func TestRemoteSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RemoteSuite))
}

func (s *RemoteSuite) SetupTest() {
	s.fake = &fakeRemote{}
	s.srv = httptest.NewServer(s.fake.engine())
	s.device = uuid.New()
	r, err := spotsrp.New(s.srv.URL,
		spotsrp.WithTimeout(time.Second),
		spotsrp.WithDeviceID(s.device),
	)
	s.Require().NoError(err)
	s.repo = r
}

func (s *RemoteSuite) TearDownTest() {
	s.srv.Close()
}

func (s *RemoteSuite) TestReportListDelete() {
	ctx := context.Background()
	spots, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.NotNil(spots)
	s.Empty(spots)

	in := model.Spot{
		ID:         "ignored",
		Coordinate: model.Coordinate{Lat: 48.85, Lon: 2.35},
		Message:    model.ReportReasonSpotted.Message(),
		Status:     model.SpotStatusFree,
		CreatedAt:  "2024-05-01T12:00:00Z",
	}
	id, err := s.repo.Report(ctx, in)
	s.Require().NoError(err)
	s.Equal(model.SpotID("1"), id)

	spots, err = s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(spots, 1)
	in.ID = "1"
	s.Equal(in, spots[0])

	s.Require().NoError(s.repo.Delete(ctx, id))
	s.NoError(s.repo.Delete(ctx, id), "deleting a gone spot succeeds")
	spots, err = s.repo.List(ctx)
	s.Require().NoError(err)
	s.Empty(spots)

	s.fake.mu.Lock()
	defer s.fake.mu.Unlock()
	s.Len(s.fake.devices, 3, "only mutating requests carry the device")
	for _, d := range s.fake.devices {
		s.Equal(s.device.String(), d)
	}
}

func (s *RemoteSuite) TestListTolerance() {
	s.fake.spots = []gin.H{
		{"id": "abc", "latitude": 1, "longitude": 2, "status": "occupée", "created_at": "14:03:00"},
		{"id": 7, "latitude": 3, "longitude": 4, "status": "libre", "created_at": "2024-05-01T12:00:00Z"},
	}
	spots, err := s.repo.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(spots, 2)
	s.Equal(model.SpotID("abc"), spots[0].ID)
	s.Equal(model.SpotStatusInvalid, spots[0].Status)
	s.Equal("14:03:00", spots[0].CreatedAt)
	s.Equal(model.SpotID("7"), spots[1].ID)
	s.Equal(model.SpotStatusFree, spots[1].Status)
}

func (s *RemoteSuite) TestServerErrorIsRetryable() {
	s.fake.failing = http.StatusInternalServerError
	_, err := s.repo.List(context.Background())
	s.Require().Error(err)
	s.True(cerr.Retryable(err))
	s.Contains(err.Error(), "server says no")
}

func (s *RemoteSuite) TestRejectionIsNotRetryable() {
	_, err := s.repo.Report(context.Background(), model.Spot{
		Status: model.SpotStatusFree,
	})
	s.Require().Error(err, "missing created_at is rejected")
	s.False(cerr.Retryable(err))
	var ce *cerr.Error
	s.Require().ErrorAs(err, &ce)
	s.Equal(http.StatusBadRequest, ce.HTTPStatusCode)

	err = s.repo.Delete(context.Background(), "")
	s.ErrorIs(err, model.ErrEmptySpotID)
}

func (s *RemoteSuite) TestTransportErrorIsRetryable() {
	s.srv.Close()
	_, err := s.repo.List(context.Background())
	s.Require().Error(err)
	s.True(cerr.Retryable(err))
}

func (s *RemoteSuite) TestNewValidation() {
	_, err := spotsrp.New("ftp://example.com")
	s.Error(err)
	_, err = spotsrp.New("http://example.com", spotsrp.WithTimeout(0))
	s.Error(err)
	_, err = spotsrp.New("http://example.com", spotsrp.WithDeviceID(uuid.Nil))
	s.Error(err)
	_, err = spotsrp.New("http://example.com",
		spotsrp.WithHTTPClient(http.DefaultClient),
		spotsrp.WithHTTPClient(http.DefaultClient),
	)
	s.Error(err)
}
