package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	Theme   string `json:"theme"`    // light/dark
	Image   string `json:"image"`    // path to the map picture
	Cols    int    `json:"cols"`     // puzzle grid columns
	Rows    int    `json:"rows"`     // puzzle grid rows
	WindowH int    `json:"window_h"` //
	WindowW int    `json:"window_w"` //
	Debug   bool   `json:"debug"`    // true/false
}

func defaultConfig() Config {
	return Config{
		Theme:   "light",
		Image:   "community_map.jpg",
		Cols:    3,
		Rows:    3,
		WindowH: 640,
		WindowW: 960,
		Debug:   false,
	}
}

func NewGUIConfig() (*Config, error) {
	file := "townpuzzle.json"

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	CorrectableConfig(&c)

	return &c, nil
}

func (c *Config) Save() error {
	file := "townpuzzle.json"
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	err = os.WriteFile(file, jsonData, 0644)
	if err != nil {
		return err
	}
	return nil
}

func CorrectableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Image == "" {
		c.Image = def.Image
	}
	if c.Cols < 2 || c.Cols > 6 {
		c.Cols = def.Cols
	}
	if c.Rows < 2 || c.Rows > 6 {
		c.Rows = def.Rows
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
