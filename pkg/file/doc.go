// Package file stores session snapshots as files: on the local filesystem or
// as an object in Amazon S3 (and S3-compatible services such as MinIO).
//
// Both implementations satisfy session.Storage and keep the whole encoded
// session table in one file. The codec follows the file name: ".yaml" and
// ".yml" select YAML, everything else JSON. WithLocalCodec / WithS3Codec
// override it.
//
// # Local files
//
//	storage, err := file.NewLocalStorage("data/sessions.yaml")
//	if err != nil {
//		return err
//	}
//	registry, err := session.New(ctx, session.WithStorage(storage))
//
// Saves are atomic: the snapshot is written to a temp file in the same
// directory and renamed over the previous one. A missing file loads as
// "nothing saved yet"; Drop removes the file.
//
// # S3
//
//	storage, err := file.NewS3Storage(ctx, file.S3Config{
//		Bucket: "my-bucket",
//		Region: "us-east-1",
//		Key:    "sessions/app.json",
//	})
//
// A NoSuchKey response loads as "nothing saved yet". Other failures are
// classified into package errors (ErrAccessDenied, ErrBucketNotFound,
// ErrOperationTimeout, ...) that work with errors.Is.
package file
