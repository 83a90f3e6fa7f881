package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"imujkanovic/expense-tracker/internal/models"
)

// CategoryStore loads user-defined categories that extend the default set.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a store for the categories file.
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{CategoriesFile: categoriesFile}
}

// FindConfigFile looks for the categories file in standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".expense-tracker", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads extra categories from the YAML file. A missing file
// is not an error and yields an empty slice.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Categories file not found: %s", filename)
			return []models.CategoryConfig{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// Preferred structure: "categories: [...]"
	var categoriesConfig models.CategoriesConfig
	err = yaml.Unmarshal(data, &categoriesConfig)
	if err == nil && len(categoriesConfig.Categories) > 0 {
		log.Debugf("Loaded %d categories from %s", len(categoriesConfig.Categories), filePath)
		return categoriesConfig.Categories, nil
	}

	// Fallback: a bare array of category entries.
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	log.Debugf("Loaded %d categories from %s using direct array", len(categories), filePath)
	return categories, nil
}

// CategoryNames resolves the full category list: the defaults extended by
// any user-defined categories from the categories file.
func (s *CategoryStore) CategoryNames() []string {
	names := append([]string{}, models.DefaultCategories...)
	extra, err := s.LoadCategories()
	if err != nil {
		log.WithError(err).Warn("Ignoring unreadable categories file")
		return names
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		seen[name] = struct{}{}
	}
	for _, cat := range extra {
		if _, ok := seen[cat.Name]; !ok && cat.Name != "" {
			names = append(names, cat.Name)
			seen[cat.Name] = struct{}{}
		}
	}
	return names
}
