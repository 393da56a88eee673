// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package spotsrs realizes the spots resource, allowing the spots
// listing, reporting, claiming, navigation, and fake marking REST APIs
// to be accepted and delegated to the spots use cases respectively.
package spotsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/parkshare/pkg/adapter/device"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/usecase/appuc"
)

type resource struct {
	app *appuc.UseCase
}

// Register instantiates a resource adapting the app use case instance
// with the relevant REST APIs including:
//  1. GET request to /api/parkshare/v1/spots
//     in order to fetch the rendered (visible and classified) spots,
//  2. POST request to /api/parkshare/v1/spots
//     in order to report a spotted free spot,
//  3. POST request to /api/parkshare/v1/spots/:sid/claim
//     in order to claim a displayed spot and become parked,
//  4. POST request to /api/parkshare/v1/spots/:sid/navigate
//     in order to get a navigation URL towards a displayed spot,
//  5. DELETE request to /api/parkshare/v1/spots/:sid
//     in order to remove a fake spot,
//  6. POST request to /api/parkshare/v1/refresh
//     in order to refresh the spots collection immediately.
func Register(r *gin.RouterGroup, app *appuc.UseCase) {
	rs := &resource{app: app}
	r.GET("spots", rs.ListSpots)
	r.POST("spots", rs.ReportSpot)
	r.POST("spots/:sid/claim", rs.ClaimSpot)
	r.POST("spots/:sid/navigate", rs.NavigateSpot)
	r.DELETE("spots/:sid", rs.MarkFake)
	r.POST("refresh", rs.Refresh)
}

func (rs *resource) ListSpots(c *gin.Context) {
	c.JSON(http.StatusOK, SerViews(rs.app.Store().View()))
}

func (rs *resource) ReportSpot(c *gin.Context) {
	at, ok := rs.DserReportReq(c)
	if !ok {
		return
	}
	err := rs.app.Gate().Report(c, model.ReportReasonSpotted, at)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, SerViews(rs.app.Store().View()))
}

func (rs *resource) ClaimSpot(c *gin.Context) {
	req := rs.DserClaimReq(c)
	if req == nil {
		return
	}
	g := rs.app.Gate()
	err := g.Claim(c, req.SpotID, device.Fixed(req.Decision))
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serdser.SerCar(g.State(), rs.app.Store().Car()))
}

func (rs *resource) NavigateSpot(c *gin.Context) {
	id, ok := rs.DserSpotID(c)
	if !ok {
		return
	}
	u, err := rs.app.Gate().Navigate(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": u})
}

func (rs *resource) MarkFake(c *gin.Context) {
	id, ok := rs.DserSpotID(c)
	if !ok {
		return
	}
	if err := rs.app.Gate().MarkFake(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerViews(rs.app.Store().View()))
}

func (rs *resource) Refresh(c *gin.Context) {
	if err := rs.app.Store().Refresh(c); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerViews(rs.app.Store().View()))
}
