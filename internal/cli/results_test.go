package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chores/internal/models"
)

func TestChanged(t *testing.T) {
	c := Changed[models.Person]{Verb: "Added person", Item: models.Person{ID: 2, Name: "bob"}}

	assert.Contains(t, c.String(), "Added person bob (id:0002)")
	assert.Equal(t, int64(2), c.GetID())

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"name":"bob"}`, string(data))
}

func TestRemoved(t *testing.T) {
	r := Removed{Kind: "chore", ID: 300}
	assert.Contains(t, r.String(), "Removed chore 300")
	assert.Equal(t, int64(300), r.GetID())
}
