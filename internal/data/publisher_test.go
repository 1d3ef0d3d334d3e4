package data_test

import (
	"testing"

	"github.com/mylibhq/mylib/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherInsertDuplicateName(t *testing.T) {
	models := newTestModels(t)

	createPublisher(t, models, "Gnome Press")

	second := &data.Publisher{Name: "Gnome Press"}
	err := models.Publishers.Insert(second)
	require.ErrorIs(t, err, data.ErrDuplicateName)
}

func TestPublisherGetAll(t *testing.T) {
	models := newTestModels(t)

	createPublisher(t, models, "Gnome Press")
	createPublisher(t, models, "Doubleday")

	publishers, err := models.Publishers.GetAll()
	require.NoError(t, err)
	require.Len(t, publishers, 2)

	var names []string
	for _, p := range publishers {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Gnome Press", "Doubleday"}, names)
}
