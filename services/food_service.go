package services

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/marcelosanto/telegram-food-boot/models"
)

// MaxFoodSearchResults caps how many matches a search returns.
const MaxFoodSearchResults = 10

var ErrFoodNotFound = errors.New("food not found")

// FoodTable is the static food composition table, loaded once at startup
// and read-only afterwards.
type FoodTable struct {
	records []models.FoodRecord
	byID    map[int]models.FoodRecord
}

// LoadFoodTable reads the JSON food table from disk.
func LoadFoodTable(path string) (*FoodTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFoodTable(data)
}

// ParseFoodTable builds a table from raw JSON.
func ParseFoodTable(data []byte) (*FoodTable, error) {
	var records []models.FoodRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	byID := make(map[int]models.FoodRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}
	return &FoodTable{records: records, byID: byID}, nil
}

// Get resolves a food id.
func (t *FoodTable) Get(id int) (models.FoodRecord, error) {
	r, ok := t.byID[id]
	if !ok {
		return models.FoodRecord{}, ErrFoodNotFound
	}
	return r, nil
}

// Search filters by case-insensitive substring on the description,
// returning at most MaxFoodSearchResults matches.
func (t *FoodTable) Search(query string) []models.FoodRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	var matches []models.FoodRecord
	for _, r := range t.records {
		if strings.Contains(strings.ToLower(r.Description), query) {
			matches = append(matches, r)
			if len(matches) == MaxFoodSearchResults {
				break
			}
		}
	}
	return matches
}

// All returns the table in source order.
func (t *FoodTable) All() []models.FoodRecord {
	return t.records
}

func (t *FoodTable) Len() int {
	return len(t.records)
}
