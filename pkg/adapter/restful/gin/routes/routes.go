// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// their registration on a gin-gonic engine.
package routes

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/apprs"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/carrs"
	"github.com/momeni/parkshare/pkg/adapter/restful/gin/spotsrs"
	"github.com/momeni/parkshare/pkg/core/usecase/appuc"
)

// Prefix is the common path of all REST APIs.
const Prefix = "/api/parkshare/v1"

// Register instantiates the resources, from packages which are named
// like spotsrs, in order to adapt the app use case with the REST APIs.
// These resources are registered as request handlers using the e
// gin-gonic engine instance. The app session must be opened already,
// so its spots use cases are created.
func Register(e *gin.Engine, app *appuc.UseCase) error {
	if app.SpotsUseCase() == nil {
		return errors.New("session is not opened")
	}
	r := e.Group(Prefix)
	apprs.Register(r, app)
	spotsrs.Register(r, app)
	carrs.Register(r, app)
	return nil
}
