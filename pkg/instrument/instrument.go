// Package instrument provides metadata records for satellite instruments and
// helpers for generating synthetic instrument data. Instruments are described
// by immutable Descriptor records that are validated when they are registered
// with a Catalog, either programmatically or from a YAML catalog file.
package instrument

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spacesci/gosat/pkg/epoch"
)

// A Descriptor describes one instrument of a satellite platform: its
// identity, the supported data-product tags, the satellite ids the platform
// flies and the default sampling frequency of the data.
type Descriptor struct {
	// Platform is the mission or satellite series, e.g. "icon".
	Platform string `yaml:"platform" validate:"required,lowercase"`

	// Name is the instrument name within the platform, e.g. "ivm".
	Name string `yaml:"name" validate:"required,lowercase"`

	// Tags maps each supported data-product tag to its description. The
	// empty tag is allowed and marks the default product.
	Tags map[string]string `yaml:"tags"`

	// SatIDs maps each satellite id to the tags it supports. Platforms with
	// a single satellite may leave this empty. Every referenced tag must be
	// listed in Tags.
	SatIDs map[string][]string `yaml:"sat_ids"`

	// Freq is the default sampling of the instrument data as a frequency
	// code, e.g. "1S", see epoch.ParseFreq.
	Freq string `yaml:"freq" validate:"required"`

	// TestDate is a day for which synthetic data can be generated.
	TestDate time.Time `yaml:"test_date" validate:"required"`
}

// use a single instance of Validate, it caches struct info
var validate *validator.Validate

// ID returns the instrument identifier "platform_name", e.g. "icon_ivm".
func (d Descriptor) ID() string {
	return d.Platform + "_" + d.Name
}

// Validate checks the descriptor beyond the struct tags: the frequency code
// must parse and every tag referenced by a satellite id must be declared.
func (d *Descriptor) Validate() error {
	if _, err := epoch.ParseFreq(d.Freq); err != nil {
		return fmt.Errorf("instrument %s: %w", d.ID(), err)
	}
	for sid, tags := range d.SatIDs {
		for _, tag := range tags {
			if _, ok := d.Tags[tag]; !ok {
				return fmt.Errorf("instrument %s: sat id %q references undeclared tag %q", d.ID(), sid, tag)
			}
		}
	}

	validate = validator.New()
	return validate.Struct(d)
}

// clone deep-copies the descriptor, so that registered instruments do not
// share map storage with their callers.
func (d Descriptor) clone() Descriptor {
	c := d
	if d.Tags != nil {
		c.Tags = make(map[string]string, len(d.Tags))
		for k, v := range d.Tags {
			c.Tags[k] = v
		}
	}
	if d.SatIDs != nil {
		c.SatIDs = make(map[string][]string, len(d.SatIDs))
		for k, v := range d.SatIDs {
			c.SatIDs[k] = append([]string(nil), v...)
		}
	}
	return c
}
