package validator

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSlug(t *testing.T) {
	valid := []string{"hello", "hello-world", "post-2", "a1-b2-c3"}
	invalid := []string{"", "Hello", "hello world", "-hello", "hello-", "hello--world", "héllo", "hello_world", strings.Repeat("a", 121)}

	for _, s := range valid {
		assert.True(t, IsSlug(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsSlug(s), s)
	}
}

func TestRegisteredTags(t *testing.T) {
	v := validator.New()
	require.NoError(t, register(v))

	type input struct {
		Slug  string `validate:"required,slug"`
		Title string `validate:"notblank"`
	}

	assert.NoError(t, v.Struct(input{Slug: "my-post", Title: "My post"}))
	assert.Error(t, v.Struct(input{Slug: "My Post", Title: "My post"}))
	assert.Error(t, v.Struct(input{Slug: "my-post", Title: "   "}))
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	v := validator.New()
	require.NoError(t, register(v))

	type input struct {
		Slug  string `json:"slug,omitempty" validate:"slug"`
		Title string `validate:"notblank"`
	}

	err := v.Struct(input{Slug: "Bad Slug"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := []string{}
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"slug", "Title"}, fields)
}

func TestRegisterCustomValidators(t *testing.T) {
	assert.NoError(t, RegisterCustomValidators())
}
