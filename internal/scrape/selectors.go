package scrape

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Selectors holds the CSS selectors used against the directory's markup.
type Selectors struct {
	RegionLinks     string `yaml:"region_links"`
	PageCount       string `yaml:"page_count"`
	RestaurantLinks string `yaml:"restaurant_links"`
	Name            string `yaml:"name"`
	Latitude        string `yaml:"latitude"`
	Longitude       string `yaml:"longitude"`
	Cuisine         string `yaml:"cuisine"`
	Phone           string `yaml:"phone"`
}

// DefaultSelectors returns the selectors matching the directory's current markup.
func DefaultSelectors() Selectors {
	return Selectors{
		RegionLinks:     "h2.ui.header + div.ui.segment.row a",
		PageCount:       "div.col-l-4.mtop.pagination-number div",
		RestaurantLinks: "div.card.search-snippet-card.search-card div.search_left_featured.clearfix a",
		Name:            "h1.res-name.left.mb0 a",
		Latitude:        `meta[property="place:location:latitude"]`,
		Longitude:       `meta[property="place:location:longitude"]`,
		Cuisine:         "div.res-info-cuisines.clearfix a",
		Phone:           "div#phoneNoString span span span",
	}
}

// LoadSelectors reads selector overrides from a YAML file. Keys left out of
// the file keep their default selector.
func LoadSelectors(path string) (Selectors, error) {
	sel := DefaultSelectors()

	data, err := os.ReadFile(path)
	if err != nil {
		return sel, eris.Wrapf(err, "selectors: read %s", path)
	}

	// The YAML has a top-level "selectors" key
	var wrapper struct {
		Selectors Selectors `yaml:"selectors"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return sel, eris.Wrap(err, "selectors: parse")
	}

	sel.merge(wrapper.Selectors)
	return sel, nil
}

func (s *Selectors) merge(o Selectors) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&s.RegionLinks, o.RegionLinks)
	set(&s.PageCount, o.PageCount)
	set(&s.RestaurantLinks, o.RestaurantLinks)
	set(&s.Name, o.Name)
	set(&s.Latitude, o.Latitude)
	set(&s.Longitude, o.Longitude)
	set(&s.Cuisine, o.Cuisine)
	set(&s.Phone, o.Phone)
}
