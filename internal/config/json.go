package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// duration type that accepts human-readable strings ("30s", "1m").
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
