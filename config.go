package cache

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v2"
)

/*
optionsDoc is the configuration wire shape of Options. Millisecond integers
and the field names are shared by the JSON and YAML forms.

Pointers tell "absent" apart from zero values: absent keys keep the defaults.
ttl is the legacy after-write TTL, honoured only when ttlAfterWriteMs is absent.
*/
type optionsDoc struct {
	EnableMaximumSize    *bool   `json:"enableMaximumSize,omitempty" yaml:"enableMaximumSize,omitempty"`
	MaximumSize          *uint64 `json:"maximumSize,omitempty" yaml:"maximumSize,omitempty"`
	EnableTTLAfterWrite  *bool   `json:"enableTtlAfterWrite,omitempty" yaml:"enableTtlAfterWrite,omitempty"`
	TTLAfterWriteMs      *int64  `json:"ttlAfterWriteMs,omitempty" yaml:"ttlAfterWriteMs,omitempty"`
	TTL                  *int64  `json:"ttl,omitempty" yaml:"ttl,omitempty"`
	EnableTTLAfterAccess *bool   `json:"enableTtlAfterAccess,omitempty" yaml:"enableTtlAfterAccess,omitempty"`
	TTLAfterAccessMs     *int64  `json:"ttlAfterAccessMs,omitempty" yaml:"ttlAfterAccessMs,omitempty"`
}

func (o Options) doc() optionsDoc {
	write, access := o.TTLAfterWrite.Milliseconds(), o.TTLAfterAccess.Milliseconds()
	return optionsDoc{
		EnableMaximumSize:    &o.MaximumSizeEnabled,
		MaximumSize:          &o.MaximumSize,
		EnableTTLAfterWrite:  &o.TTLAfterWriteEnabled,
		TTLAfterWriteMs:      &write,
		EnableTTLAfterAccess: &o.TTLAfterAccessEnabled,
		TTLAfterAccessMs:     &access,
	}
}

// options overlays the present fields of d on DefaultOptions.
func (d optionsDoc) options() Options {
	o := DefaultOptions()
	if d.EnableMaximumSize != nil {
		o.MaximumSizeEnabled = *d.EnableMaximumSize
	}
	if d.MaximumSize != nil {
		o.MaximumSize = *d.MaximumSize
	}
	if d.EnableTTLAfterWrite != nil {
		o.TTLAfterWriteEnabled = *d.EnableTTLAfterWrite
	}
	switch {
	case d.TTLAfterWriteMs != nil:
		o.TTLAfterWrite = millis(*d.TTLAfterWriteMs)
	case d.TTL != nil:
		o.TTLAfterWrite = millis(*d.TTL)
	}
	if d.EnableTTLAfterAccess != nil {
		o.TTLAfterAccessEnabled = *d.EnableTTLAfterAccess
	}
	if d.TTLAfterAccessMs != nil {
		o.TTLAfterAccess = millis(*d.TTLAfterAccessMs)
	}
	return o
}

func millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// MarshalJSON writes every field. TTLs are whole milliseconds.
func (o Options) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.doc())
}

// UnmarshalJSON replaces o with DefaultOptions overlaid by the document's fields.
func (o *Options) UnmarshalJSON(data []byte) error {
	var d optionsDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*o = d.options()
	return nil
}

func (o Options) MarshalYAML() (interface{}, error) {
	return o.doc(), nil
}

func (o *Options) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var d optionsDoc
	if err := unmarshal(&d); err != nil {
		return err
	}
	*o = d.options()
	return nil
}

// ParseOptions decodes a JSON configuration document. Empty input yields DefaultOptions.
func ParseOptions(data []byte) (Options, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultOptions(), nil
	}
	o := DefaultOptions()
	if err := json.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("parse cache options: %w", err)
	}
	return o, nil
}

// ParseOptionsYAML decodes a YAML configuration document. Empty input yields DefaultOptions.
func ParseOptionsYAML(data []byte) (Options, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultOptions(), nil
	}
	o := DefaultOptions()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("parse cache options: %w", err)
	}
	return o, nil
}

// LoadOptions reads a configuration file. Files ending in .yaml or .yml are
// YAML, anything else is JSON.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("load cache options: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseOptionsYAML(data)
	default:
		return ParseOptions(data)
	}
}
