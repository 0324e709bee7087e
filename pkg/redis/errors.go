package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
	ErrSnapshotRead                 = errors.New("failed to read session snapshot from redis")
	ErrSnapshotWrite                = errors.New("failed to write session snapshot to redis")
)
