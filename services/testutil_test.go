package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marcelosanto/telegram-food-boot/config"
	"github.com/marcelosanto/telegram-food-boot/models"
)

var testDBSeq atomic.Int64

// setupTestDB points the package globals at a fresh in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()

	cfg := &config.Env{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLMinutes = 30
	config.Cfg = cfg

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserToken{},
		&models.MealEntry{},
		&models.Goal{},
		&models.WaterEntry{},
		&models.Calculation{},
		&models.Reminder{},
	))
	config.DB = db
}

const testFoodJSON = `[
  {"id": 7, "description": "Leite, vaca, integral", "energy_kcal": "61",
   "protein_g": "2.9", "lipid_g": "3.2", "carbohydrate_g": "4.5", "fiber_g": "NA"},
  {"id": 12, "description": "Arroz, branco, cozido", "energy_kcal": "130",
   "protein_g": "2.5", "lipid_g": "0.2", "carbohydrate_g": "28.1", "fiber_g": "1.6"},
  {"id": 17, "description": "Frango, peito, sem pele, grelhado", "energy_kcal": "159",
   "protein_g": "32.0", "lipid_g": "2.5", "carbohydrate_g": "NA", "fiber_g": "NA"}
]`

func testFoodTable(t *testing.T) *FoodTable {
	t.Helper()
	table, err := ParseFoodTable([]byte(testFoodJSON))
	require.NoError(t, err)
	return table
}
