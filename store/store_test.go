package store

import (
	"testing"

	"partyinbangalore-backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKindHasATable(t *testing.T) {
	for _, kind := range model.Kinds() {
		tbl, err := lookup(kind)
		require.NoError(t, err, "kind %s", kind)
		assert.NotEmpty(t, tbl.name, "kind %s", kind)
		assert.NotEmpty(t, tbl.cols, "kind %s", kind)

		// jsonb markers only make sense for writable columns.
		for col := range tbl.jsonCols {
			assert.True(t, tbl.cols[col], "kind %s: jsonb column %q not in whitelist", kind, col)
		}
	}
}

func TestUserReadsNeverExposeCredentials(t *testing.T) {
	tbl, err := lookup(model.KindOrganizer)
	require.NoError(t, err)

	assert.True(t, tbl.hidden["password"], "password must stay out of generic reads")
	assert.True(t, tbl.hidden["phone"], "phone must stay out of generic reads")
	assert.True(t, tbl.cols["password"], "password stays writable from the organizer form")
}

func TestBindRejectsUnlistedColumns(t *testing.T) {
	tbl, err := lookup(model.KindCategory)
	require.NoError(t, err)

	rec := &model.Record{Kind: model.KindCategory}
	rec.Set("name", "Techno")
	rec.Set("is_admin", true)

	_, _, err = bind(tbl, rec)
	assert.Error(t, err)
}
