// Package models contains the GORM database models and their conversions to
// and from domain entities.
package models
