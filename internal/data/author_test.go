package data_test

import (
	"testing"

	"github.com/mylibhq/mylib/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorInsertAssignsID(t *testing.T) {
	models := newTestModels(t)

	author := createAuthor(t, models, "Asimov")
	assert.Equal(t, int64(1), author.ID)
}

func TestAuthorInsertDuplicateName(t *testing.T) {
	models := newTestModels(t)

	createAuthor(t, models, "Asimov")

	second := &data.Author{Name: "Asimov"}
	err := models.Authors.Insert(second)
	require.ErrorIs(t, err, data.ErrDuplicateName)

	// The table keeps exactly one row with the contested name.
	authors, err := models.Authors.GetAll()
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "Asimov", authors[0].Name)
}

func TestAuthorGetAllEmpty(t *testing.T) {
	models := newTestModels(t)

	authors, err := models.Authors.GetAll()
	require.NoError(t, err)
	assert.Empty(t, authors)
	assert.NotNil(t, authors)
}
