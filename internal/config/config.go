/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type DisplayConfig struct {
	// ScreenWidth and ScreenHeight bound the window; larger images are shown downscaled.
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
}

type BrushConfig struct {
	Radius       int `yaml:"radius"`
	Strength     int `yaml:"strength"`
	RadiusStep   int `yaml:"radius_step"`
	StrengthStep int `yaml:"strength_step"`
	MinRadius    int `yaml:"min_radius"`
	MinStrength  int `yaml:"min_strength"`
}

type PreviewConfig struct {
	OutlineWidth float64 `yaml:"outline_width"`
	ShowHUD      bool    `yaml:"show_hud"`
}

type OutputConfig struct {
	JPEGQuality int `yaml:"jpeg_quality"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Display       DisplayConfig `yaml:"display"`
	Brush         BrushConfig   `yaml:"brush"`
	Preview       PreviewConfig `yaml:"preview"`
	Output        OutputConfig  `yaml:"output"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Display:       DisplayConfig{ScreenWidth: 1920, ScreenHeight: 1080},
		Brush:         BrushConfig{Radius: 30, Strength: 15, RadiusStep: 5, StrengthStep: 5, MinRadius: 1, MinStrength: 1},
		Preview:       PreviewConfig{OutlineWidth: 2, ShowHUD: true},
		Output:        OutputConfig{JPEGQuality: 95},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvScreenWidth  = "CLB_SCREEN_WIDTH"
	EnvScreenHeight = "CLB_SCREEN_HEIGHT"
	EnvRadius       = "CLB_BRUSH_RADIUS"
	EnvStrength     = "CLB_BRUSH_STRENGTH"
	EnvShowHUD      = "CLB_SHOW_HUD"
	EnvJPEGQuality  = "CLB_JPEG_QUALITY"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "CLB_LOG_LEVEL"
	EnvLogFormat = "CLB_LOG_FORMAT"
	EnvLogSource = "CLB_LOG_SOURCE"
	EnvLogFile   = "CLB_LOG_FILE"
	// EnvConfigPath points at an alternative config file.
	EnvConfigPath = "CLB_CONFIG"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "ClickBlur")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "ClickBlur")
	default:
		home := os.Getenv("HOME")
		if home == "" {
			return "", errors.New("cannot resolve config directory")
		}
		base = filepath.Join(home, ".config", "clickblur")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults and merges environment overrides.
// A missing file is not an error; an unparsable one is.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		applyEnvOverrides(&cfg)
		cfg.Normalize()
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Start from defaults so keys missing in the file keep their default values.
		fileCfg := Defaults()
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return Defaults(), &ParseError{Path: path, Err: err}
		}
		mergeInto(&cfg, &fileCfg)
	case !errors.Is(err, os.ErrNotExist):
		return Defaults(), &ParseError{Path: path, Err: err}
	}
	applyEnvOverrides(&cfg)
	cfg.Normalize()
	return cfg, nil
}

// ParseError reports a config file that exists but could not be read or decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string { return "config " + e.Path + ": " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// Normalize clamps values to what the editor can work with.
// Brush strength is a kernel size and is forced odd.
func (c *AppConfig) Normalize() {
	d := Defaults()
	if c.Display.ScreenWidth < 1 {
		c.Display.ScreenWidth = d.Display.ScreenWidth
	}
	if c.Display.ScreenHeight < 1 {
		c.Display.ScreenHeight = d.Display.ScreenHeight
	}
	b := &c.Brush
	b.MinRadius = max(b.MinRadius, 1)
	b.MinStrength = max(b.MinStrength, 1)
	b.RadiusStep = max(b.RadiusStep, 1)
	b.StrengthStep = max(b.StrengthStep, 1)
	b.Radius = max(b.Radius, b.MinRadius)
	b.Strength = max(b.Strength, b.MinStrength)
	if b.Strength%2 == 0 {
		b.Strength++
	}
	if c.Preview.OutlineWidth <= 0 {
		c.Preview.OutlineWidth = d.Preview.OutlineWidth
	}
	if c.Output.JPEGQuality < 1 || c.Output.JPEGQuality > 100 {
		c.Output.JPEGQuality = d.Output.JPEGQuality
	}
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Display.ScreenWidth != 0 {
		dst.Display.ScreenWidth = src.Display.ScreenWidth
	}
	if src.Display.ScreenHeight != 0 {
		dst.Display.ScreenHeight = src.Display.ScreenHeight
	}
	mergeInt(&dst.Brush.Radius, src.Brush.Radius)
	mergeInt(&dst.Brush.Strength, src.Brush.Strength)
	mergeInt(&dst.Brush.RadiusStep, src.Brush.RadiusStep)
	mergeInt(&dst.Brush.StrengthStep, src.Brush.StrengthStep)
	mergeInt(&dst.Brush.MinRadius, src.Brush.MinRadius)
	mergeInt(&dst.Brush.MinStrength, src.Brush.MinStrength)
	if src.Preview.OutlineWidth != 0 {
		dst.Preview.OutlineWidth = src.Preview.OutlineWidth
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.Preview.ShowHUD = src.Preview.ShowHUD
	mergeInt(&dst.Output.JPEGQuality, src.Output.JPEGQuality)
	// logging
	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Format); v != "" {
		dst.Logging.Format = strings.ToLower(v)
	}
	dst.Logging.Source = src.Logging.Source
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}
}

func mergeInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	envInt(EnvScreenWidth, &cfg.Display.ScreenWidth)
	envInt(EnvScreenHeight, &cfg.Display.ScreenHeight)
	envInt(EnvRadius, &cfg.Brush.Radius)
	envInt(EnvStrength, &cfg.Brush.Strength)
	envInt(EnvJPEGQuality, &cfg.Output.JPEGQuality)
	if v := strings.TrimSpace(os.Getenv(EnvShowHUD)); v != "" {
		cfg.Preview.ShowHUD = parseBool(v)
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func envInt(key string, dst *int) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func parseBool(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

// OverridableKeys lists the config keys that have a CLB_* environment override.
var OverridableKeys = []string{
	"display.screen_width",
	"display.screen_height",
	"brush.radius",
	"brush.strength",
	"preview.show_hud",
	"output.jpeg_quality",
	"logging.level",
	"logging.format",
	"logging.source",
	"logging.file",
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	name := ""
	switch key {
	case "display.screen_width":
		name = EnvScreenWidth
	case "display.screen_height":
		name = EnvScreenHeight
	case "brush.radius":
		name = EnvRadius
	case "brush.strength":
		name = EnvStrength
	case "preview.show_hud":
		name = EnvShowHUD
	case "output.jpeg_quality":
		name = EnvJPEGQuality
	case "logging.level":
		name = EnvLogLevel
	case "logging.format":
		name = EnvLogFormat
	case "logging.source":
		name = EnvLogSource
	case "logging.file":
		name = EnvLogFile
	}
	if name != "" && os.Getenv(name) != "" {
		return name, true
	}
	return "", false
}
