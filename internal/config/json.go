package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Crypto struct {
		KeySize int    `json:"key_size"`
		IVSize  int    `json:"iv_size"`
		Mode    string `json:"mode"`
	} `json:"crypto,omitempty"`

	UI struct {
		MessageBaseDuration   Duration `json:"message_base_duration"`
		MessageDurationFactor Duration `json:"message_duration_factor"`
		FadeInDelay           Duration `json:"fade_in_delay"`
		FadeOutDuration       Duration `json:"fade_out_duration"`
		TooltipShowDelay      Duration `json:"tooltip_show_delay"`
		TooltipHideDelay      Duration `json:"tooltip_hide_delay"`
	} `json:"ui,omitempty"`

	Logging struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"logging,omitempty"`
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
		Crypto: Crypto{
			KeySize: jsonCfg.Crypto.KeySize,
			IVSize:  jsonCfg.Crypto.IVSize,
			Mode:    jsonCfg.Crypto.Mode,
		},
		UI: UI{
			MessageBaseDuration:   time.Duration(jsonCfg.UI.MessageBaseDuration),
			MessageDurationFactor: time.Duration(jsonCfg.UI.MessageDurationFactor),
			FadeInDelay:           time.Duration(jsonCfg.UI.FadeInDelay),
			FadeOutDuration:       time.Duration(jsonCfg.UI.FadeOutDuration),
			TooltipShowDelay:      time.Duration(jsonCfg.UI.TooltipShowDelay),
			TooltipHideDelay:      time.Duration(jsonCfg.UI.TooltipHideDelay),
		},
		Logging: Logging{
			Level: jsonCfg.Logging.Level,
			File:  jsonCfg.Logging.File,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
