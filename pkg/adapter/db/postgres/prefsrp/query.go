// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package prefsrp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/parkshare/pkg/adapter/db/postgres"
	"github.com/momeni/parkshare/pkg/core/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const createTable = `
CREATE TABLE IF NOT EXISTS device_prefs (
	device UUID PRIMARY KEY,
	lat DOUBLE PRECISION,
	lon DOUBLE PRECISION,
	parked_at TIMESTAMPTZ,
	disclaimer_acked BOOLEAN NOT NULL DEFAULT FALSE,
	CHECK ((lat IS NULL) = (lon IS NULL))
)`

type gPrefs struct {
	Device          uuid.UUID `gorm:"primaryKey;type:uuid;column:device"`
	Lat             *float64
	Lon             *float64
	ParkedAt        *time.Time
	DisclaimerAcked bool
}

func (gp *gPrefs) TableName() string {
	return "device_prefs"
}

// Car returns nil if the device has no row or no car columns.
func (gp *gPrefs) Car() *model.Car {
	if gp.Lat == nil || gp.Lon == nil {
		return nil
	}
	car := &model.Car{
		Coordinate: model.Coordinate{Lat: *gp.Lat, Lon: *gp.Lon},
	}
	if gp.ParkedAt != nil {
		car.ParkedAt = *gp.ParkedAt
	}
	return car
}

// Car reads the car record of the device row.
func Car[Q postgres.Queryer](
	ctx context.Context, q Q, device uuid.UUID,
) (*model.Car, error) {
	var gp gPrefs
	err := q.GORM(ctx).Take(&gp, "device = ?", device).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	}
	return gp.Car(), nil
}

// SaveCar upserts the car columns of the device row.
func SaveCar[Q postgres.Queryer](
	ctx context.Context, q Q, device uuid.UUID, car model.Car,
) error {
	parkedAt := car.ParkedAt.UTC()
	gp := gPrefs{
		Device:   device,
		Lat:      &car.Coordinate.Lat,
		Lon:      &car.Coordinate.Lon,
		ParkedAt: &parkedAt,
	}
	gdb := q.GORM(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device"}},
		DoUpdates: clause.AssignmentColumns([]string{"lat", "lon", "parked_at"}),
	}).Create(&gp)
	if err := gdb.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if n := gdb.RowsAffected; n != 1 {
		return fmt.Errorf("expected one row, but got %d", n)
	}
	return nil
}

// DeleteCar clears the car columns of the device row.
func DeleteCar[Q postgres.Queryer](
	ctx context.Context, q Q, device uuid.UUID,
) error {
	_, err := q.Exec(ctx, `UPDATE device_prefs
SET lat = NULL, lon = NULL, parked_at = NULL
WHERE device = $1`, device)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

// DisclaimerAcked reads the disclaimer flag of the device row.
func DisclaimerAcked[Q postgres.Queryer](
	ctx context.Context, q Q, device uuid.UUID,
) (bool, error) {
	rows, err := q.Query(ctx, `SELECT disclaimer_acked
FROM device_prefs
WHERE device = $1`, device)
	if err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	acked := false
	if rows.Next() {
		if err := rows.Scan(&acked); err != nil {
			return false, fmt.Errorf("scan: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("rows: %w", err)
	}
	return acked, nil
}

// AckDisclaimer sets the disclaimer flag of the device row.
func AckDisclaimer[Q postgres.Queryer](
	ctx context.Context, q Q, device uuid.UUID,
) error {
	_, err := q.Exec(ctx, `INSERT INTO device_prefs (device, disclaimer_acked)
VALUES ($1, TRUE)
ON CONFLICT (device) DO UPDATE SET disclaimer_acked = TRUE`, device)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}
