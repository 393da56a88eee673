// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package apprs realizes the session level resources: the actions
// which are allowed in the current parking state, the community
// disclaimer, and the visible settings.
package apprs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/parkshare/pkg/core/usecase/appuc"
)

type resource struct {
	app *appuc.UseCase
}

// Register instantiates a resource adapting the app use case instance
// with the relevant REST APIs including:
//  1. GET request to /api/parkshare/v1/actions
//     in order to fetch the actions of the current parking state,
//  2. GET request to /api/parkshare/v1/disclaimer
//     in order to fetch the disclaimer and its acknowledgement,
//  3. PUT request to /api/parkshare/v1/disclaimer
//     in order to acknowledge the disclaimer,
//  4. GET request to /api/parkshare/v1/settings
//     in order to fetch the current visible settings.
func Register(r *gin.RouterGroup, app *appuc.UseCase) {
	rs := &resource{app: app}
	r.GET("actions", rs.FetchActions)
	r.GET("disclaimer", rs.FetchDisclaimer)
	r.PUT("disclaimer", rs.AckDisclaimer)
	r.GET("settings", rs.FetchSettings)
}

// ActionsResp lists the names of the allowed actions.
type ActionsResp struct {
	State   string   `json:"state"`
	Actions []string `json:"actions"`
}

// DisclaimerResp reports the disclaimer text and its state.
type DisclaimerResp struct {
	Text         string `json:"text"`
	Acknowledged bool   `json:"acknowledged"`
}

func (rs *resource) FetchActions(c *gin.Context) {
	g := rs.app.Gate()
	resp := ActionsResp{State: g.State().String(), Actions: []string{}}
	for _, a := range g.AllowedActions() {
		resp.Actions = append(resp.Actions, a.String())
	}
	c.JSON(http.StatusOK, resp)
}

func (rs *resource) FetchDisclaimer(c *gin.Context) {
	text, acked, err := rs.app.Disclaimer(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, DisclaimerResp{Text: text, Acknowledged: acked})
}

func (rs *resource) AckDisclaimer(c *gin.Context) {
	if err := rs.app.AckDisclaimer(c); err != nil {
		serdser.SerErr(c, err)
		return
	}
	rs.FetchDisclaimer(c)
}

func (rs *resource) FetchSettings(c *gin.Context) {
	c.JSON(http.StatusOK, rs.app.Settings())
}
