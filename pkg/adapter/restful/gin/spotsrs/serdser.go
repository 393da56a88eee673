// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/parkshare/pkg/core/model"
)

type rawSpotURI struct {
	SpotID string `uri:"sid" binding:"required"`
}

type rawClaimReq struct {
	Confirm bool `form:"confirm"`
}

type claimReq struct {
	SpotID   model.SpotID
	Decision model.Decision
}

// SpotResp is the JSON form of one rendered spot.
type SpotResp struct {
	ID string `json:"id"`
	serdser.Coordinate
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	Tier      string `json:"tier"`
	Color     string `json:"color"`
}

// SerViews converts the rendered set to its JSON form. An empty set is
// serialized as an empty array.
func SerViews(views []model.SpotView) []SpotResp {
	resp := make([]SpotResp, 0, len(views))
	for _, v := range views {
		resp = append(resp, SpotResp{
			ID:         string(v.ID),
			Coordinate: serdser.SerCoordinate(v.Coordinate),
			Message:    v.Message,
			Status:     v.Status.String(),
			CreatedAt:  v.CreatedAt,
			Tier:       v.Tier.String(),
			Color:      string(v.Color),
		})
	}
	return resp
}

func (rs *resource) DserSpotID(c *gin.Context) (model.SpotID, bool) {
	req := &rawSpotURI{}
	if ok := serdser.BindURI(c, req); !ok {
		return "", false
	}
	return model.SpotID(req.SpotID), true
}

func (rs *resource) DserClaimReq(c *gin.Context) *claimReq {
	id, ok := rs.DserSpotID(c)
	if !ok {
		return nil
	}
	req := &rawClaimReq{}
	if ok := serdser.Bind(c, req, binding.Form); !ok {
		return nil
	}
	return &claimReq{SpotID: id, Decision: serdser.Decision(req.Confirm)}
}

func (rs *resource) DserReportReq(c *gin.Context) (*model.Coordinate, bool) {
	req := &serdser.StrCoordinate{}
	if ok := serdser.Bind(c, req, binding.Form); !ok {
		return nil, false
	}
	at, err := req.ToModel()
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "lat/lon", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return nil, false
	}
	return at, true
}
