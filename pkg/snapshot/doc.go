// Package snapshot encodes a whole session table as one opaque blob.
//
// Durable storage adapters (redis, pg, mongo, sqlite, file) persist the table
// this way: Save marshals the table with a Codec and writes the bytes, Load
// reads the bytes back and unmarshals them. Empty input decodes to a nil table,
// which adapters report as "nothing saved yet".
//
// Two codecs are provided:
//
//   - JSON: encoding/json, numbers decode as float64
//   - YAML: gopkg.in/yaml.v3, integers decode as int
//
// ForExtension chooses a codec from a file name and ByName from a config value.
package snapshot
