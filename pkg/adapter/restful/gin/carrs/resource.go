// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carrs realizes the car resource, allowing the parked car of
// this device to be fetched and left using REST APIs.
package carrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/parkshare/pkg/adapter/device"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/parkshare/pkg/core/usecase/appuc"
)

type resource struct {
	app *appuc.UseCase
}

// Register instantiates a resource adapting the app use case instance
// with the relevant REST APIs including:
//  1. GET request to /api/parkshare/v1/car
//     in order to fetch the parking state and the parked car,
//  2. POST request to /api/parkshare/v1/car/leave
//     in order to leave the parked spot and publish it as free.
func Register(r *gin.RouterGroup, app *appuc.UseCase) {
	rs := &resource{app: app}
	r.GET("car", rs.FetchCar)
	r.POST("car/leave", rs.Leave)
}

type rawLeaveReq struct {
	Confirm bool `form:"confirm"`
}

func (rs *resource) FetchCar(c *gin.Context) {
	s := rs.app.Store()
	c.JSON(http.StatusOK, serdser.SerCar(s.State(), s.Car()))
}

func (rs *resource) Leave(c *gin.Context) {
	req := &rawLeaveReq{}
	if ok := serdser.Bind(c, req, binding.Form); !ok {
		return
	}
	d := device.Fixed(serdser.Decision(req.Confirm))
	if err := rs.app.Gate().Leave(c, d); err != nil {
		serdser.SerErr(c, err)
		return
	}
	s := rs.app.Store()
	c.JSON(http.StatusOK, serdser.SerCar(s.State(), s.Car()))
}
