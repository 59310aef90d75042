package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestPersistentModels_AutoMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(PersistentModels()...))

	for _, table := range []string{"users", "gigs", "bids"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestMigrations_RegisteredAndOrdered(t *testing.T) {
	ms := Migrations()
	require.NotEmpty(t, ms)

	last := 0
	for _, m := range ms {
		assert.Greater(t, m.Version, last, "versions must be strictly increasing")
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.UpScript)
		assert.NotEmpty(t, m.DownScript)
		last = m.Version
	}

	assert.Equal(t, 1, ms[0].Version)
	assert.Contains(t, ms[0].UpScript, "uq_bids_one_hired_per_gig")
}
