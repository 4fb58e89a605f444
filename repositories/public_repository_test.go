package repositories

import (
	"regexp"
	"testing"

	"boardinghouse-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchComposesPriceWindow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPublicRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `properties` WHERE status = ? AND price >= ? AND price <= ?")).
		WithArgs(models.StatusAvailable, 1500.0, 2500.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price", "status"}).
			AddRow(2, 2000.0, models.StatusAvailable))

	minPrice, maxPrice := 1500.0, 2500.0
	properties, err := repo.Search(SearchFilters{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, 2000.0, properties[0].Price)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchWithoutFiltersOnlyGatesOnStatus(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPublicRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `properties` WHERE status = ? ORDER BY created_at DESC")).
		WithArgs(models.StatusAvailable).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(1, models.StatusAvailable).
			AddRow(2, models.StatusAvailable))

	properties, err := repo.Search(SearchFilters{})
	require.NoError(t, err)
	assert.Len(t, properties, 2)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAvailableFiltersStatus(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPublicRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `properties` WHERE id = ? AND status = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))

	_, err := repo.FindAvailable(3)
	require.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRulesByPropertyGroupsRows(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPublicRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `property_rules` WHERE property_id IN (?,?)")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "property_id", "rule_name"}).
			AddRow(1, 1, "No smoking").
			AddRow(2, 1, "No pets").
			AddRow(3, 2, "Quiet hours"))

	grouped, err := repo.RulesByProperty([]uint{1, 2})
	require.NoError(t, err)
	assert.Len(t, grouped[1], 2)
	assert.Len(t, grouped[2], 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRulesByPropertyEmptyInputSkipsQuery(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPublicRepository(db)

	grouped, err := repo.RulesByProperty(nil)
	require.NoError(t, err)
	assert.Empty(t, grouped)

	require.NoError(t, mock.ExpectationsWereMet())
}
