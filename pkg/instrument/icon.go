package instrument

import "time"

// Built-in descriptors for the Ionospheric Connection Explorer (ICON)
// mission.
var (
	// IVM is the ICON Ion Velocity Meter, flown on the satellites "a" and
	// "b". Only the level-2 product is supported.
	IVM = Descriptor{
		Platform: "icon",
		Name:     "ivm",
		Tags:     map[string]string{"level_2": "Level 2 public geophysical data"},
		SatIDs: map[string][]string{
			"a": {"level_2"},
			"b": {"level_2"},
		},
		Freq:     "1S",
		TestDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	// MIGHTI is the ICON Michelson Interferometer for Global High-resolution
	// Thermospheric Imaging. The sat ids "a" and "b" carry the temperature
	// profiles, "green" and "red" the green and red line vector winds.
	MIGHTI = Descriptor{
		Platform: "icon",
		Name:     "mighti",
		Tags:     map[string]string{"level_2": "Level 2 public geophysical data"},
		SatIDs: map[string][]string{
			"a":     {"level_2"},
			"b":     {"level_2"},
			"green": {"level_2"},
			"red":   {"level_2"},
		},
		Freq:     "30S",
		TestDate: time.Date(2019, 12, 25, 0, 0, 0, 0, time.UTC),
	}
)

// DefaultCatalog returns a catalog holding the built-in instruments.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(IVM, MIGHTI)
	if err != nil {
		panic(err) // built-ins must validate
	}
	return c
}
