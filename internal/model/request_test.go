package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Username: "alice_01", Password: "s3cret1"}
	require.NoError(t, valid.Validate())

	cases := map[string]RegisterRequest{
		"empty username":      {Username: "", Password: "s3cret1"},
		"empty password":      {Username: "alice", Password: ""},
		"short password":      {Username: "alice", Password: "abc"},
		"overlong username":   {Username: strings.Repeat("a", 33), Password: "s3cret1"},
		"overlong password":   {Username: "alice", Password: strings.Repeat("p", 65)},
		"username with space": {Username: "bad name", Password: "s3cret1"},
		"password with space": {Username: "alice", Password: "has space"},
	}

	for name, req := range cases {
		require.Error(t, req.Validate(), name)
	}
}

func TestLoginRequestValidate(t *testing.T) {
	require.NoError(t, LoginRequest{Username: "alice", Password: "whatever"}.Validate())
	require.Error(t, LoginRequest{Username: "", Password: "whatever"}.Validate())
	require.Error(t, LoginRequest{Username: "alice", Password: ""}.Validate())
}
