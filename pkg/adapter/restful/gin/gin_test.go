// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogin "github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/momeni/parkshare/internal/test/fakeremote"
	"github.com/momeni/parkshare/pkg/adapter/config"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/apprs"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/routes"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/spotsrs"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/usecase/appuc"
	"github.com/stretchr/testify/suite"
)

const deviceID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"

type GinTestSuite struct {
	suite.Suite

	Ctx    context.Context
	Remote *fakeremote.Server
	App    *appuc.UseCase
	Gin    *gin.Engine
}

func TestGinTestSuite(t *testing.T) {
	gogin.SetMode(gogin.TestMode)
	suite.Run(t, &GinTestSuite{Ctx: context.Background()})
}

func (gts *GinTestSuite) SetupTest() {
	gts.Remote = fakeremote.New()
	c := &config.Config{
		Remote:  config.Remote{URL: gts.Remote.URL},
		Storage: config.Storage{Path: filepath.Join(gts.T().TempDir(), "prefs.db")},
		Device: config.Device{
			ID:       deviceID,
			Position: &config.Position{Lat: 48.8566, Lon: 2.3522},
		},
	}
	gts.Require().NoError(c.ValidateAndNormalize())
	app, err := c.NewSession(gts.Ctx, nil)
	gts.Require().NoError(err, "cannot create the session")
	gts.Require().NoError(app.Open(gts.Ctx))
	gts.App = app

	gts.Gin = gin.New(gin.RequestAttrs(), gin.Logger(), gin.Recovery())
	gts.Require().NoError(routes.Register(gts.Gin, app))
}

func (gts *GinTestSuite) TearDownTest() {
	gts.NoError(gts.App.Close())
	gts.Remote.Close()
}

func urlEncoded(m map[string]string) io.Reader {
	u := url.Values{}
	for k, v := range m {
		u.Set(k, v)
	}
	return strings.NewReader(u.Encode())
}

// send serves a request and decodes its JSON response into res,
// returning the status code.
func (gts *GinTestSuite) send(
	method, path string, form map[string]string, res any,
) int {
	var body io.Reader
	if form != nil {
		body = urlEncoded(form)
	}
	req, err := http.NewRequest(method, routes.Prefix+path, body)
	gts.Require().NoError(err, "cannot create request")
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	gts.Gin.ServeHTTP(w, req)
	if res != nil {
		gts.Require().NoError(json.Unmarshal(w.Body.Bytes(), res), "body is not json")
	}
	return w.Code
}

func (gts *GinTestSuite) spots() []spotsrs.SpotResp {
	var views []spotsrs.SpotResp
	gts.Require().Equal(http.StatusOK, gts.send(http.MethodGet, "/spots", nil, &views))
	return views
}

type detail struct {
	Detail string
}

func (gts *GinTestSuite) TestListSpots() {
	gts.Empty(gts.spots())
	fresh := gts.Remote.Add(48.85, 2.35, time.Minute)
	gts.Remote.Add(48.86, 2.36, 20*time.Minute)
	stale := gts.Remote.Add(48.87, 2.37, 12*time.Minute)

	var views []spotsrs.SpotResp
	gts.Equal(http.StatusOK, gts.send(http.MethodPost, "/refresh", nil, &views))
	gts.Require().Len(views, 2, "expired spots are hidden")
	gts.Equal(fresh, views[0].ID)
	gts.Equal("fresh", views[0].Tier)
	gts.Equal("green", views[0].Color)
	gts.Equal(48.85, views[0].Lat)
	gts.Equal(stale, views[1].ID)
	gts.Equal("red", views[1].Color)
	gts.Equal(views, gts.spots())
}

func (gts *GinTestSuite) TestClaimAndLeave() {
	id := gts.Remote.Add(48.85, 2.35, time.Minute)
	gts.send(http.MethodPost, "/refresh", nil, nil)

	var d detail
	gts.Equal(http.StatusConflict, gts.send(
		http.MethodPost, "/spots/"+id+"/claim", map[string]string{}, &d,
	), "claims must be confirmed")
	gts.Contains(d.Detail, "canceled")

	var car serdser.CarResp
	gts.Require().Equal(http.StatusOK, gts.send(
		http.MethodPost, "/spots/"+id+"/claim",
		map[string]string{"confirm": "true"}, &car,
	))
	gts.Equal("parked", car.State)
	gts.Require().NotNil(car.Car)
	gts.Equal(48.8566, car.Car.Lat)
	gts.Empty(gts.spots(), "claimed spot is deleted remotely")

	var actions apprs.ActionsResp
	gts.send(http.MethodGet, "/actions", nil, &actions)
	gts.Equal("parked", actions.State)
	gts.NotContains(actions.Actions, "claim")
	gts.Contains(actions.Actions, "leave")

	id2 := gts.Remote.Add(48.86, 2.36, time.Minute)
	gts.send(http.MethodPost, "/refresh", nil, nil)
	gts.Equal(http.StatusConflict, gts.send(
		http.MethodPost, "/spots/"+id2+"/claim",
		map[string]string{"confirm": "true"}, nil,
	))
	gts.Equal(http.StatusConflict, gts.send(
		http.MethodPost, "/spots/"+id2+"/navigate", nil, nil,
	))

	car = serdser.CarResp{}
	gts.Require().Equal(http.StatusOK, gts.send(
		http.MethodPost, "/car/leave", map[string]string{"confirm": "1"}, &car,
	))
	gts.Equal("unparked", car.State)
	gts.Nil(car.Car)
	views := gts.spots()
	gts.Require().Len(views, 2)
	gts.Equal(model.ReportReasonLeft.Message(), views[1].Message)
	gts.Equal(48.8566, views[1].Lat)

	gts.Equal(http.StatusConflict, gts.send(
		http.MethodPost, "/car/leave", map[string]string{"confirm": "1"}, nil,
	))
	gts.send(http.MethodGet, "/car", nil, &car)
	gts.Equal("unparked", car.State)
}

func (gts *GinTestSuite) TestReport() {
	var views []spotsrs.SpotResp
	gts.Require().Equal(http.StatusCreated, gts.send(
		http.MethodPost, "/spots",
		map[string]string{"lat": "45.5", "lon": "-73.5"}, &views,
	))
	gts.Require().Len(views, 1)
	gts.Equal(45.5, views[0].Lat)
	gts.Equal(-73.5, views[0].Lon)
	gts.Equal(model.ReportReasonSpotted.Message(), views[0].Message)

	gts.Require().Equal(http.StatusCreated, gts.send(
		http.MethodPost, "/spots", map[string]string{}, &views,
	))
	gts.Require().Len(views, 2)
	gts.Equal(48.8566, views[1].Lat, "device position is the default")
}

func (gts *GinTestSuite) TestReportBadRequest() {
	var errs map[string][]string
	gts.Equal(http.StatusBadRequest, gts.send(
		http.MethodPost, "/spots", map[string]string{"lat": "45"}, &errs,
	))
	gts.Contains(errs, "lat/lon")

	errs = nil
	gts.Equal(http.StatusBadRequest, gts.send(
		http.MethodPost, "/spots",
		map[string]string{"lat": "95", "lon": "0"}, &errs,
	))
	gts.Require().Len(errs["Lat"], 1)
	gts.Contains(errs["Lat"][0], "'latitude' tag")

	var d detail
	gts.Equal(http.StatusBadRequest, gts.send(http.MethodPost, "/spots", nil, &d))
	gts.Equal("missing form body", d.Detail)
}

func (gts *GinTestSuite) TestNavigateAndFake() {
	var d detail
	gts.Equal(http.StatusNotFound, gts.send(
		http.MethodPost, "/spots/404/navigate", nil, &d,
	))
	id := gts.Remote.Add(48.85, 2.35, time.Minute)
	gts.send(http.MethodPost, "/refresh", nil, nil)

	var nav struct{ URL string }
	gts.Require().Equal(http.StatusOK, gts.send(
		http.MethodPost, "/spots/"+id+"/navigate", nil, &nav,
	))
	gts.True(strings.HasPrefix(nav.URL, "geo:48.850000,2.350000?"), nav.URL)

	var views []spotsrs.SpotResp
	gts.Equal(http.StatusOK, gts.send(http.MethodDelete, "/spots/"+id, nil, &views))
	gts.Empty(views)
}

func (gts *GinTestSuite) TestRemoteDown() {
	gts.Remote.SetFailing(true)
	var d detail
	gts.Equal(http.StatusServiceUnavailable, gts.send(
		http.MethodPost, "/refresh", nil, &d,
	))
	gts.Contains(d.Detail, "down")
	gts.Equal(http.StatusServiceUnavailable, gts.send(
		http.MethodPost, "/spots", map[string]string{}, nil,
	))
}

func (gts *GinTestSuite) TestDisclaimerAndSettings() {
	var dr apprs.DisclaimerResp
	gts.Equal(http.StatusOK, gts.send(http.MethodGet, "/disclaimer", nil, &dr))
	gts.Equal(appuc.DefaultDisclaimer, dr.Text)
	gts.False(dr.Acknowledged)
	gts.Equal(http.StatusOK, gts.send(http.MethodPut, "/disclaimer", nil, &dr))
	gts.True(dr.Acknowledged)

	var vs model.VisibleSettings
	gts.Equal(http.StatusOK, gts.send(http.MethodGet, "/settings", nil, &vs))
	gts.Equal(model.DefaultThresholds(), vs.Thresholds)
	gts.Equal(5*time.Second, vs.PollInterval)
}
