package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTone(t *testing.T) {
	for _, s := range []string{"serious", "humorous", "soul"} {
		tone, err := ParseTone(s)
		require.NoError(t, err)
		assert.Equal(t, Tone(s), tone)
	}

	_, err := ParseTone("sarcastic")
	require.ErrorIs(t, err, ErrUnknownTone)

	_, err = ParseTone("")
	require.ErrorIs(t, err, ErrUnknownTone)
}

func TestProfileUpdate_OnlyChangedFieldsMarshalled(t *testing.T) {
	birthDate := "2000-02-02"
	u := ProfileUpdate{BirthDate: &birthDate}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"birth_date":"2000-02-02"}`, string(b))
}

func TestProfileUpdate_IsEmpty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.IsEmpty())

	name := "A"
	assert.False(t, ProfileUpdate{Name: &name}.IsEmpty())
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		Name:       "Ann",
		Email:      "ann@example.com",
		Password:   "secret",
		BirthDate:  "1990-05-04",
		BirthTime:  "12:30",
		BirthPlace: "Riga, Latvia",
	}
	require.NoError(t, valid.Validate())

	missing := valid
	missing.BirthPlace = "  "
	err := missing.Validate()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "birth_place", ve.Field)

	badMail := valid
	badMail.Email = "not-an-address"
	err = badMail.Validate()
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
}

func TestCompatibilityInput_Validate(t *testing.T) {
	valid := CompatibilityInput{
		PartnerBirthDate:  "1991-01-01",
		PartnerBirthTime:  "08:00",
		PartnerBirthPlace: "Oslo, Norway",
	}
	require.NoError(t, valid.Validate())

	var ve *ValidationError
	err := CompatibilityInput{PartnerBirthDate: "1991-01-01"}.Validate()
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "partner_birth_time", ve.Field)
}

func TestParseFriendNames(t *testing.T) {
	assert.Equal(t, []string{"Ann", "Bob"}, ParseFriendNames(" Ann , Bob "))
	assert.Equal(t, []string{"Ann"}, ParseFriendNames("Ann,,  ,"))
	assert.Empty(t, ParseFriendNames("  ,  "))
}

func TestFriendAdviceInput_Validate(t *testing.T) {
	require.NoError(t, FriendAdviceInput{FriendNames: []string{"Ann"}}.Validate())

	var ve *ValidationError
	err := FriendAdviceInput{}.Validate()
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "friend_names", ve.Field)
}
