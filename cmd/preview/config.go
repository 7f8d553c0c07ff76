package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"render-engine/scene"
)

func loadPreviewConfig(path string) (scene.RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scene.RenderConfig{}, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg scene.RenderConfig
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return scene.RenderConfig{}, fmt.Errorf("parse config %q: %w", path, err)
		}
		return cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return scene.RenderConfig{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

func loadPreviewData(path string) (scene.RenderData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scene.RenderData{}, fmt.Errorf("read scene %q: %w", path, err)
	}
	var rd scene.RenderData
	if err := json.Unmarshal(data, &rd); err != nil {
		return scene.RenderData{}, fmt.Errorf("parse scene %q: %w", path, err)
	}
	return rd, nil
}
