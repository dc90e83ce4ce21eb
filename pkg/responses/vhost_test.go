package responses

import (
	"testing"

	"github.com/andrelcunha/rmqadmin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVirtualHostList(t *testing.T) {
	vhosts, err := ParseVirtualHostList(testutil.Fixture("vhosts.json"))
	require.NoError(t, err)
	require.Len(t, vhosts, 2)

	def := vhosts[0]
	assert.Equal(t, "/", def.Name)
	require.NotNil(t, def.Description)
	assert.Equal(t, "Default virtual host", *def.Description)
	require.NotNil(t, def.Tags)
	assert.Empty(t, *def.Tags)
	require.NotNil(t, def.DefaultQueueType)
	assert.Equal(t, "classic", *def.DefaultQueueType)
	require.NotNil(t, def.Metadata.Description)
	assert.Nil(t, def.Metadata.DefaultQueueType)

	staging := vhosts[1]
	assert.Equal(t, "staging", staging.Name)
	assert.Nil(t, staging.Tags)
	assert.Nil(t, staging.Description)
	assert.Nil(t, staging.Metadata.Tags)
}

func TestParseVirtualHost_MissingMetadata(t *testing.T) {
	_, err := ParseVirtualHost([]byte(`{"name":"v"}`))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "virtual host", perr.Resource)
	assert.Equal(t, "metadata", perr.Field)
}

func TestParseUserList_TagForms(t *testing.T) {
	users, err := ParseUserList(testutil.Fixture("users.json"))
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, []string{"administrator"}, users[0].Tags)
	assert.Equal(t, []string{"monitoring", "policymaker"}, users[1].Tags)
	assert.Equal(t, "", users[1].PasswordHash)
}

func TestParseUser_EmptyTagString(t *testing.T) {
	u, err := ParseUser([]byte(`{"name":"u","password_hash":"h","tags":""}`))
	require.NoError(t, err)
	require.NotNil(t, u.Tags)
	assert.Empty(t, u.Tags)
}
