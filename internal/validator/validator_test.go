package validator_test

import (
	"testing"

	"github.com/mylibhq/mylib/internal/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidatorStartsValid(t *testing.T) {
	v := validator.New()
	assert.True(t, v.Valid())
}

func TestCheckRecordsFailures(t *testing.T) {
	v := validator.New()

	v.Check(true, "title", "must be provided")
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	assert.False(t, v.Valid())
	assert.Equal(t, "must be provided", v.Errors["title"])
}

func TestAddErrorKeepsFirstMessage(t *testing.T) {
	v := validator.New()

	v.AddError("name", "must be provided")
	v.AddError("name", "must be unique")

	assert.Equal(t, "must be provided", v.Errors["name"])
}
