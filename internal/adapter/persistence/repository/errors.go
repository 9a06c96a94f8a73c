// Package repository contains the per-entity data access objects. Each one
// owns the SQL text for a single table and maps rows to domain entities.
// Sentinel errors defined here are shared by every repository so that the
// usecases and handlers can branch on them with errors.Is.
package repository

import "errors"

// ErrNotFound is returned when an UPDATE or DELETE affects zero rows: the id
// does not exist in the table.
var ErrNotFound = errors.New("record not found")

// ErrNotSaved is returned when an INSERT completes without a driver error but
// yields no generated id. It catches silent insert failures.
var ErrNotSaved = errors.New("record not saved")
