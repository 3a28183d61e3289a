package instrument

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// A Catalog is a registry of instrument descriptors, keyed by their ID.
// Descriptors are copied in and out, so a registered instrument cannot be
// changed afterwards.
type Catalog struct {
	instruments map[string]Descriptor
}

// NewCatalog builds a catalog from the given descriptors. Every descriptor
// is validated; duplicate instrument IDs are rejected.
func NewCatalog(descs ...Descriptor) (*Catalog, error) {
	c := &Catalog{instruments: make(map[string]Descriptor, len(descs))}
	for i := range descs {
		d := descs[i]
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.instruments[d.ID()]; exists {
			return nil, fmt.Errorf("instrument %s: registered twice", d.ID())
		}
		c.instruments[d.ID()] = d.clone()
	}
	return c, nil
}

// LoadCatalog reads a YAML catalog document of the form
//
//	instruments:
//	  - platform: icon
//	    name: ivm
//	    ...
//
// and registers all listed instruments. Unknown fields are rejected.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc struct {
		Instruments []Descriptor `yaml:"instruments"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %v", err)
	}
	return NewCatalog(doc.Instruments...)
}

// LoadCatalogFile reads a YAML catalog from the file at path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCatalog(f)
}

// Get returns the descriptor registered for platform and instrument name.
func (c *Catalog) Get(platform, name string) (Descriptor, error) {
	d, ok := c.instruments[platform+"_"+name]
	if !ok {
		return Descriptor{}, fmt.Errorf("unknown instrument %s_%s", platform, name)
	}
	return d.clone(), nil
}

// GetID is like Get but takes the instrument ID "platform_name".
func (c *Catalog) GetID(id string) (Descriptor, error) {
	d, ok := c.instruments[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("unknown instrument %s", id)
	}
	return d.clone(), nil
}

// IDs returns the sorted IDs of all registered instruments.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.instruments))
	for id := range c.instruments {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
