package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCommentBeforeCreate_AssignsIdentity(t *testing.T) {
	c := &Comment{MovieID: 1, Text: "hello"}

	err := c.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	_, parseErr := uuid.Parse(c.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, AnonymousAuthor, c.Author)
}

func TestCommentBeforeCreate_KeepsExistingValues(t *testing.T) {
	c := &Comment{ID: "preset", MovieID: 1, Author: "alice", Text: "hello"}

	err := c.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, "preset", c.ID)
	assert.Equal(t, "alice", c.Author)
}
