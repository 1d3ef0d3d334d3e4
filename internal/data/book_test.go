package data_test

import (
	"testing"

	"github.com/mylibhq/mylib/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authorNames(authors []data.Author) []string {
	names := []string{}
	for _, a := range authors {
		names = append(names, a.Name)
	}
	return names
}

func TestBookInsertDropsUnknownAuthorIDs(t *testing.T) {
	models := newTestModels(t)

	asimov := createAuthor(t, models, "Asimov")
	clarke := createAuthor(t, models, "Clarke")

	book := &data.Book{Title: "Foundation"}
	err := models.Books.Insert(book, []int64{asimov.ID, clarke.ID, 999})
	require.NoError(t, err)
	require.NotZero(t, book.ID)

	// Only the ids that matched existing author rows survive, in no
	// guaranteed order.
	got, err := models.Books.Get(book.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Asimov", "Clarke"}, authorNames(got.Authors))
}

func TestBookInsertWithNoAuthorsOrPublisher(t *testing.T) {
	models := newTestModels(t)

	book := &data.Book{Title: "Foundation"}
	require.NoError(t, models.Books.Insert(book, nil))

	got, err := models.Books.Get(book.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PublisherID)
	assert.Empty(t, got.Authors)
	assert.NotNil(t, got.Authors)
}

func TestBookGetNotFound(t *testing.T) {
	models := newTestModels(t)

	_, err := models.Books.Get(42)
	require.ErrorIs(t, err, data.ErrRecordNotFound)
}

func TestBookGetAllResolvesAuthorSets(t *testing.T) {
	models := newTestModels(t)

	asimov := createAuthor(t, models, "Asimov")

	first := &data.Book{Title: "Foundation"}
	require.NoError(t, models.Books.Insert(first, []int64{asimov.ID}))

	second := &data.Book{Title: "Nightfall"}
	require.NoError(t, models.Books.Insert(second, nil))

	books, err := models.Books.GetAll()
	require.NoError(t, err)
	require.Len(t, books, 2)

	byTitle := map[string][]data.Author{}
	for _, b := range books {
		byTitle[b.Title] = b.Authors
	}
	assert.ElementsMatch(t, []string{"Asimov"}, authorNames(byTitle["Foundation"]))
	assert.Empty(t, byTitle["Nightfall"])
}

func TestBookUpdateTitleOnlyKeepsAuthorsAndPublisher(t *testing.T) {
	models := newTestModels(t)

	asimov := createAuthor(t, models, "Asimov")
	gnome := createPublisher(t, models, "Gnome Press")

	book := &data.Book{Title: "Foundation", PublisherID: &gnome.ID}
	require.NoError(t, models.Books.Insert(book, []int64{asimov.ID}))

	book.Title = "Second Foundation"
	require.NoError(t, models.Books.Update(book, nil))

	got, err := models.Books.Get(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second Foundation", got.Title)
	require.NotNil(t, got.PublisherID)
	assert.Equal(t, gnome.ID, *got.PublisherID)
	assert.ElementsMatch(t, []string{"Asimov"}, authorNames(got.Authors))
}

func TestBookUpdateEmptyAuthorListClearsSet(t *testing.T) {
	models := newTestModels(t)

	asimov := createAuthor(t, models, "Asimov")

	book := &data.Book{Title: "Foundation"}
	require.NoError(t, models.Books.Insert(book, []int64{asimov.ID}))

	empty := []int64{}
	require.NoError(t, models.Books.Update(book, &empty))
	assert.Empty(t, book.Authors)

	got, err := models.Books.Get(book.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Authors)
}

func TestBookUpdateReplacesAuthorSet(t *testing.T) {
	models := newTestModels(t)

	asimov := createAuthor(t, models, "Asimov")
	clarke := createAuthor(t, models, "Clarke")

	book := &data.Book{Title: "Foundation"}
	require.NoError(t, models.Books.Insert(book, []int64{asimov.ID}))

	// Replace with a list that mixes a valid and an unknown id.
	replacement := []int64{clarke.ID, 999}
	require.NoError(t, models.Books.Update(book, &replacement))

	got, err := models.Books.Get(book.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Clarke"}, authorNames(got.Authors))
}

func TestBookUpdateNotFound(t *testing.T) {
	models := newTestModels(t)

	missing := &data.Book{ID: 99, Title: "Ghost"}
	err := models.Books.Update(missing, nil)
	require.ErrorIs(t, err, data.ErrRecordNotFound)
}

func TestBookDeleteRemovesBookAndJoinRows(t *testing.T) {
	models := newTestModels(t)

	asimov := createAuthor(t, models, "Asimov")

	book := &data.Book{Title: "Foundation"}
	require.NoError(t, models.Books.Insert(book, []int64{asimov.ID}))

	require.NoError(t, models.Books.Delete(book.ID))

	_, err := models.Books.Get(book.ID)
	require.ErrorIs(t, err, data.ErrRecordNotFound)

	// Deleting again reports the row as gone.
	require.ErrorIs(t, models.Books.Delete(book.ID), data.ErrRecordNotFound)

	// The author itself is untouched and can be linked to new books.
	next := &data.Book{Title: "Nightfall"}
	require.NoError(t, models.Books.Insert(next, []int64{asimov.ID}))

	got, err := models.Books.Get(next.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Asimov"}, authorNames(got.Authors))
}

func TestBookDeleteNotFound(t *testing.T) {
	models := newTestModels(t)

	require.ErrorIs(t, models.Books.Delete(42), data.ErrRecordNotFound)
	require.ErrorIs(t, models.Books.Delete(0), data.ErrRecordNotFound)
}
