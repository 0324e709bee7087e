package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrSnapshotRead           = errors.New("failed to read session snapshot from mongo")
	ErrSnapshotWrite          = errors.New("failed to write session snapshot to mongo")
)
