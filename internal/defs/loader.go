// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// TowerLibrary holds all tower definitions, keyed by their ID.
var TowerLibrary map[string]TowerDefinition

// EnemyLibrary holds all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// PrefabLibrary holds all prefab definitions, keyed by their ID.
var PrefabLibrary map[string]PrefabDefinition

// LoadTowerDefinitions reads the tower configuration file and populates the
// TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and populates the
// EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}

// LoadPrefabDefinitions reads the prefab configuration file and populates
// the PrefabLibrary.
func LoadPrefabDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read prefab definitions file: %w", err)
	}

	var prefabDefs []PrefabDefinition
	if err := json.Unmarshal(file, &prefabDefs); err != nil {
		return fmt.Errorf("failed to unmarshal prefab definitions: %w", err)
	}

	PrefabLibrary = make(map[string]PrefabDefinition)
	for _, def := range prefabDefs {
		PrefabLibrary[def.ID] = def
	}
	return nil
}

// LoadAll loads towers.json, enemies.json and prefabs.json from dir.
func LoadAll(dir string) error {
	var g errgroup.Group
	g.Go(func() error { return LoadTowerDefinitions(filepath.Join(dir, "towers.json")) })
	g.Go(func() error { return LoadEnemyDefinitions(filepath.Join(dir, "enemies.json")) })
	g.Go(func() error { return LoadPrefabDefinitions(filepath.Join(dir, "prefabs.json")) })
	return g.Wait()
}
