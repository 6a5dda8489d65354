package config

import (
	"fmt"
	"os"

	"lotofacil/domain/entities"

	"github.com/pelletier/go-toml/v2"
)

// DefaultGroups returns the built-in group table: the primary/secondary partition of 1..25 and
// the twelve auxiliary groups used by the weighting heuristics
func DefaultGroups() entities.GroupConfig {
	group := func(name string, numbers ...int) entities.NumberGroup {
		return entities.NumberGroup{Name: name, Numbers: entities.NewNumberSet(numbers...)}
	}

	return entities.GroupConfig{
		Primary:   group("A", 2, 3, 5, 6, 8, 9, 12, 13, 15, 16, 18, 19, 22, 23, 25),
		Secondary: group("B", 1, 4, 7, 10, 11, 14, 17, 20, 21, 24),
		Auxiliary: []entities.NumberGroup{
			group("C", 1, 3, 6, 8, 11, 13, 16, 18, 21, 23),
			group("D", 1, 4, 6, 9, 11, 14, 16, 19, 21, 24),
			group("E", 2, 4, 7, 9, 12, 14, 17, 19, 22, 24),
			group("F", 2, 5, 7, 10, 12, 15, 17, 20, 22, 25),
			group("G", 3, 5, 8, 10, 13, 15, 18, 20, 23, 25),
			group("A1", 1, 2, 4, 6, 8, 9, 11, 13, 15, 16, 18, 20, 22, 23, 25),
			group("B2", 1, 3, 4, 6, 8, 10, 11, 13, 15, 17, 18, 20, 22, 24, 25),
			group("C3", 1, 3, 5, 6, 8, 10, 12, 13, 15, 17, 19, 20, 22, 24),
			group("D4", 1, 3, 5, 7, 8, 10, 12, 14, 15, 17, 19, 21, 22, 24),
			group("E5", 2, 3, 5, 7, 9, 10, 12, 14, 16, 17, 19, 21, 23, 24),
			group("F6", 2, 4, 5, 7, 9, 11, 12, 14, 16, 18, 19, 21, 23, 25),
			group("G7", 2, 4, 6, 7, 9, 11, 13, 14, 16, 18, 20, 21, 23, 25),
		},
	}
}

// groupFile is the on-disk TOML layout
type groupFile struct {
	Groups entities.GroupConfig `toml:"groups"`
}

// ParseGroups decodes and validates a TOML group table
func ParseGroups(data []byte) (entities.GroupConfig, error) {
	var file groupFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return entities.GroupConfig{}, fmt.Errorf("failed to parse groups: %w", err)
	}

	// numbers may be listed in any order but not repeated
	groups := file.Groups
	for _, group := range append([]*entities.NumberGroup{&groups.Primary, &groups.Secondary}, auxiliaryRefs(groups.Auxiliary)...) {
		canonical := entities.NewNumberSet(group.Numbers...)
		if len(canonical) != len(group.Numbers) {
			return entities.GroupConfig{}, fmt.Errorf("%w: group %s repeats a number", entities.ErrInvalidGroups, group.Name)
		}
		group.Numbers = canonical
	}

	if err := groups.Validate(); err != nil {
		return entities.GroupConfig{}, err
	}
	return groups, nil
}

func auxiliaryRefs(groups []entities.NumberGroup) []*entities.NumberGroup {
	refs := make([]*entities.NumberGroup, len(groups))
	for i := range groups {
		refs[i] = &groups[i]
	}
	return refs
}

// LoadGroups reads the group table from path, or returns DefaultGroups when path is empty
func LoadGroups(path string) (entities.GroupConfig, error) {
	if path == "" {
		return DefaultGroups(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return entities.GroupConfig{}, fmt.Errorf("failed to read groups file %s: %w", path, err)
	}
	return ParseGroups(data)
}

// EncodeGroups renders a group table in the layout ParseGroups reads
func EncodeGroups(groups entities.GroupConfig) ([]byte, error) {
	data, err := toml.Marshal(groupFile{Groups: groups})
	if err != nil {
		return nil, fmt.Errorf("failed to encode groups: %w", err)
	}
	return data, nil
}
