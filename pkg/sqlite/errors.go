package sqlite

import "errors"

var (
	ErrEmptyPath           = errors.New("empty sqlite database path")
	ErrFailedToOpenDB      = errors.New("failed to open sqlite database")
	ErrFailedToApplySchema = errors.New("failed to apply sqlite schema")
	ErrSnapshotRead        = errors.New("failed to read session snapshot from sqlite")
	ErrSnapshotWrite       = errors.New("failed to write session snapshot to sqlite")
)
