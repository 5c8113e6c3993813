package dto

import (
	"strings"
	"testing"

	"github.com/GoArmGo/BlogApp/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCreateUserValid(t *testing.T) {
	var d CreateUser
	err := Decode(strings.NewReader(`{"email":"test@example.com","name":"John Doe","age":25}`), &d)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", d.Email)
	assert.Equal(t, "John Doe", d.Name)
	require.NotNil(t, d.Age)
	assert.Equal(t, 25, *d.Age)
}

func TestDecodeCreateUserOptionalAge(t *testing.T) {
	var d CreateUser
	err := Decode(strings.NewReader(`{"email":"test@example.com","name":"John Doe"}`), &d)

	require.NoError(t, err)
	assert.Nil(t, d.Age)
}

func TestDecodeCreateUserInvalidEmail(t *testing.T) {
	var d CreateUser
	err := Decode(strings.NewReader(`{"email":"invalid-email","name":"John Doe"}`), &d)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Equal(t, "email", singleField(t, ae.Fields))
	assert.Equal(t, "email", ae.Fields["email"])
}

func TestDecodeCreateUserShortName(t *testing.T) {
	var d CreateUser
	err := Decode(strings.NewReader(`{"email":"test@example.com","name":"A"}`), &d)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "min", ae.Fields["name"])
}

func TestDecodeCreateUserUnderage(t *testing.T) {
	var d CreateUser
	err := Decode(strings.NewReader(`{"email":"test@example.com","name":"John Doe","age":17}`), &d)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "gte", ae.Fields["age"])
}

func TestDecodeCreateUserMissingRequired(t *testing.T) {
	var d CreateUser
	err := Decode(strings.NewReader(`{}`), &d)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "required", ae.Fields["email"])
	assert.Equal(t, "required", ae.Fields["name"])
}

// Лишние поля — ошибка валидации, а не молчаливое отбрасывание.
func TestDecodeRejectsUnknownFields(t *testing.T) {
	var d CreateUser
	err := Decode(strings.NewReader(`{"email":"test@example.com","name":"John Doe","role":"admin"}`), &d)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Equal(t, "unknown", ae.Fields["role"])
}

func TestDecodeMalformedJSON(t *testing.T) {
	var d CreateUser
	err := Decode(strings.NewReader(`{not json`), &d)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
}

func TestUpdateUserFieldsPartial(t *testing.T) {
	name := "Updated Name"
	d := UpdateUser{Name: &name}

	fields := d.Fields()

	assert.Equal(t, map[string]any{"name": "Updated Name"}, fields)
}

func TestUpdateUserValidatesPresentFields(t *testing.T) {
	var d UpdateUser
	err := Decode(strings.NewReader(`{"email":"not-an-email"}`), &d)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "email", ae.Fields["email"])
}

func TestUpdateUserEmptyBodyIsValid(t *testing.T) {
	var d UpdateUser
	err := Decode(strings.NewReader(`{}`), &d)

	require.NoError(t, err)
	assert.Empty(t, d.Fields())
}

func TestDecodeCreatePostValid(t *testing.T) {
	var d CreatePost
	err := Decode(strings.NewReader(`{"title":"Test Post","content":"Test content","authorId":1,"tagIds":[1,2]}`), &d)

	require.NoError(t, err)
	assert.Equal(t, int64(1), d.AuthorID)
	assert.Equal(t, []int64{1, 2}, d.TagIDs)
}

func TestDecodeCreatePostMissingAuthor(t *testing.T) {
	var d CreatePost
	err := Decode(strings.NewReader(`{"title":"Test Post","content":"Test content"}`), &d)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "required", ae.Fields["authorId"])
}

// Отсутствующий tagIds и пустой tagIds различимы:
// nil — теги не трогать, пустой список — снять все теги.
func TestUpdatePostTagIDsPresence(t *testing.T) {
	var omitted UpdatePost
	require.NoError(t, Decode(strings.NewReader(`{"title":"x"}`), &omitted))
	assert.Nil(t, omitted.TagIDs)

	var cleared UpdatePost
	require.NoError(t, Decode(strings.NewReader(`{"tagIds":[]}`), &cleared))
	assert.NotNil(t, cleared.TagIDs)
	assert.Len(t, cleared.TagIDs, 0)
}

func TestUpdatePostFields(t *testing.T) {
	title := "Updated Post"
	published := true
	d := UpdatePost{Title: &title, Published: &published, TagIDs: []int64{1, 2}}

	fields := d.Fields()

	assert.Equal(t, map[string]any{"title": "Updated Post", "published": true}, fields)
}

func singleField(t *testing.T, fields map[string]string) string {
	t.Helper()
	require.Len(t, fields, 1)
	for field := range fields {
		return field
	}
	return ""
}
