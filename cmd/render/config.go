package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"render-engine/scene"
)

// loadConfig reads a RenderConfig from path, dispatching on extension:
// .yaml/.yml decode with gopkg.in/yaml.v3, anything else decodes as JSON.
// Every I/O failure is wrapped with fmt.Errorf("...: %w", err).
func loadConfig(path string) (scene.RenderConfig, error) {
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

// loadRenderData reads one frame's RenderData from a JSON file, the sole
// contract the ray tracer's core accepts from the scene-graph collaborator.
func loadRenderData(path string) (scene.RenderData, error) {
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
