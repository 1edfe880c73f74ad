package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Feed describes one RSS/Atom source the worker ingests from.
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// FeedsConfig is the YAML document listing the configured feeds.
type FeedsConfig struct {
	Feeds []Feed `yaml:"feeds"`
}

// DefaultFeeds returns the built-in feed list used when no config file
// is present.
func DefaultFeeds() []Feed {
	return []Feed{
		{Name: "IGN", URL: "https://feeds.ign.com/ign/games-all"},
		{Name: "GameSpot", URL: "https://www.gamespot.com/feeds/game-news"},
	}
}

// LoadFeeds reads the feed list from the YAML file at path. A missing
// file is not an error; the built-in defaults are returned instead.
func LoadFeeds(path string) ([]Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultFeeds(), nil
		}
		return nil, fmt.Errorf("read feeds config: %w", err)
	}

	var cfg FeedsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse feeds config: %w", err)
	}

	feeds := make([]Feed, 0, len(cfg.Feeds))
	for i, f := range cfg.Feeds {
		if f.URL == "" {
			return nil, fmt.Errorf("feeds config: entry %d has no url", i)
		}
		if f.Name == "" {
			f.Name = f.URL
		}
		feeds = append(feeds, f)
	}

	if len(feeds) == 0 {
		return DefaultFeeds(), nil
	}

	return feeds, nil
}
