// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the serialization and deserialization
// helpers which are shared by the resource packages.
package serdser

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/parkshare/pkg/core/cerr"
	"github.com/momeni/parkshare/pkg/core/model"
)

func Bind(c *gin.Context, req any, b binding.Binding) bool {
	switch err := c.ShouldBindWith(req, b).(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

// BindURI binds the path params of the request into req.
func BindURI(c *gin.Context, req any) bool {
	switch err := c.ShouldBindUri(req).(type) {
	case nil:
		return true
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// SerErr reports err as a {"detail": ...} JSON body. The status code
// is taken from a wrapped cerr.Error, defaulting to 500.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": err.Error(),
	})
}

// StrCoordinate is an optional pair of lat and lon form fields.
type StrCoordinate struct {
	Lat string `form:"lat" binding:"omitempty,latitude"`
	Lon string `form:"lon" binding:"omitempty,longitude"`
}

// ErrPartialCoordinate indicates that only one of lat and lon is given.
var ErrPartialCoordinate = errors.New("lat and lon must be given together")

// ToModel converts sc to a coordinate, returning nil if both fields
// are missing.
func (sc StrCoordinate) ToModel() (*model.Coordinate, error) {
	switch {
	case sc.Lat == "" && sc.Lon == "":
		return nil, nil
	case sc.Lat == "" || sc.Lon == "":
		return nil, ErrPartialCoordinate
	}
	lat, err := strconv.ParseFloat(sc.Lat, 64)
	if err != nil {
		return nil, err
	}
	lon, err := strconv.ParseFloat(sc.Lon, 64)
	if err != nil {
		return nil, err
	}
	return &model.Coordinate{Lat: lat, Lon: lon}, nil
}

// Decision converts the confirm form field of a request into the
// decision of its confirmation step.
func Decision(confirm bool) model.Decision {
	if confirm {
		return model.DecisionConfirm
	}
	return model.DecisionCancel
}

// Coordinate is the JSON form of a coordinate.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// SerCoordinate converts c to its JSON form.
func SerCoordinate(c model.Coordinate) Coordinate {
	return Coordinate{Lat: c.Lat, Lon: c.Lon}
}

// Car is the JSON form of the parked car record.
type Car struct {
	Coordinate
	ParkedAt time.Time `json:"parked_at"`
	Date     string    `json:"date"`
}

// CarResp reports the parking state and the parked car (if any).
type CarResp struct {
	State string `json:"state"`
	Car   *Car   `json:"car"`
}

// SerCar converts the car record of the state parking state to its
// JSON form.
func SerCar(state model.ParkingState, car *model.Car) CarResp {
	resp := CarResp{State: state.String()}
	if car != nil {
		resp.Car = &Car{
			Coordinate: SerCoordinate(car.Coordinate),
			ParkedAt:   car.ParkedAt,
			Date:       car.Date(),
		}
	}
	return resp
}
