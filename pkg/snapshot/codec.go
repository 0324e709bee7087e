package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Codec turns a session table into a single blob and back.
type Codec interface {
	Marshal(table session.Table) ([]byte, error)
	Unmarshal(data []byte) (session.Table, error)
	ContentType() string
}

var (
	// JSON encodes snapshots as JSON. Numbers decode as float64.
	JSON Codec = jsonCodec{}

	// YAML encodes snapshots as YAML. Integers decode as int.
	YAML Codec = yamlCodec{}
)

// ForExtension picks a codec from the file extension of path.
// .yaml and .yml select YAML, anything else JSON.
func ForExtension(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// ByName resolves a codec name as used in configuration ("json" or "yaml").
func ByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return nil, ErrUnknownCodec
	}
}

type jsonCodec struct{}

func (jsonCodec) Marshal(table session.Table) ([]byte, error) {
	if table == nil {
		table = session.Table{}
	}
	data, err := json.Marshal(table)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte) (session.Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var table session.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return normalize(table), nil
}

func (jsonCodec) ContentType() string { return "application/json" }

type yamlCodec struct{}

func (yamlCodec) Marshal(table session.Table) ([]byte, error) {
	if table == nil {
		table = session.Table{}
	}
	data, err := yaml.Marshal(table)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return data, nil
}

func (yamlCodec) Unmarshal(data []byte) (session.Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var table session.Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return normalize(table), nil
}

func (yamlCodec) ContentType() string { return "application/yaml" }

// normalize replaces null records with empty ones so every live id has a record.
func normalize(table session.Table) session.Table {
	if table == nil {
		return session.Table{}
	}
	for id, rec := range table {
		if rec == nil {
			table[id] = session.Record{}
		}
	}
	return table
}
