// Package mongo stores session snapshots in MongoDB.
//
// Configuration comes from environment variables (see Config). New connects
// with retries and a ping, NewCollection additionally resolves the snapshot
// collection, and Healthcheck returns a ping probe.
//
// Storage keeps the encoded session table in a single document:
//
//	{ _id: "sessions", payload: <codec bytes>, updated_at: <time> }
//
// Save upserts the document with ReplaceOne, Load treats mongo.ErrNoDocuments
// as "nothing saved yet" and Drop deletes the document.
//
// # Usage
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	coll, err := mongo.NewCollection(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//
//	registry, err := session.New(ctx,
//	    session.WithStorage(mongo.NewStorageFromConfig(coll, cfg)),
//	)
package mongo
