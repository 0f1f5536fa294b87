package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_IsOnline(t *testing.T) {
	link := "https://meet.example.com/zazen"
	empty := ""

	assert.True(t, (&Event{MeetingLink: &link}).IsOnline())
	assert.False(t, (&Event{MeetingLink: &empty}).IsOnline())
	assert.False(t, (&Event{Address: &Address{City: "Rio de Janeiro"}}).IsOnline())
}

// The city filter queries the serialized document by its "city" key, so the
// JSON field names must stay lowercase.
func TestAddress_JSONKeys(t *testing.T) {
	raw, err := json.Marshal(Address{
		CEP:          "22240-001",
		Street:       "Rua das Laranjeiras",
		Number:       "231",
		Neighborhood: "Laranjeiras",
		City:         "Rio de Janeiro",
		State:        "RJ",
	})
	require.NoError(t, err)

	var keys map[string]string
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.Equal(t, "Rio de Janeiro", keys["city"])
	assert.Equal(t, "22240-001", keys["cep"])
	assert.Equal(t, "RJ", keys["state"])
	assert.NotContains(t, keys, "complement", "empty fields are omitted")
}

func TestAdminUser_PasswordHashNeverSerialized(t *testing.T) {
	raw, err := json.Marshal(AdminUser{ID: 1, Username: "mestre", PasswordHash: "segredo"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "segredo")
}
