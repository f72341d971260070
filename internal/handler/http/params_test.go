package http

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreateUserParams(t *testing.T) {
	got, err := parseCreateUserParams(url.Values{"name": {"alice"}})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)

	_, err = parseCreateUserParams(url.Values{})
	assert.ErrorIs(t, err, ErrMalformedRequest)

	// presence is the decoder's concern; an empty value passes through so the
	// registry can reject it
	got, err = parseCreateUserParams(url.Values{"name": {""}})
	require.NoError(t, err)
	assert.Empty(t, got.Name)
}

func TestParseRenameUserParams(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		wantErr bool
	}{
		{
			name:   "all fields",
			values: url.Values{"id": {"1"}, "password": {"secret"}, "name": {"bob"}},
		},
		{
			name:    "missing id",
			values:  url.Values{"password": {"secret"}, "name": {"bob"}},
			wantErr: true,
		},
		{
			name:    "non-integer id",
			values:  url.Values{"id": {"x"}, "password": {"secret"}, "name": {"bob"}},
			wantErr: true,
		},
		{
			name:    "missing password",
			values:  url.Values{"id": {"1"}, "name": {"bob"}},
			wantErr: true,
		},
		{
			name:    "missing name",
			values:  url.Values{"id": {"1"}, "password": {"secret"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRenameUserParams(tt.values)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.UserID)
			assert.Equal(t, "secret", got.Password)
			assert.Equal(t, "bob", got.Name)
		})
	}
}

func TestParseCreateCommentParams_ParentVariants(t *testing.T) {
	base := url.Values{
		"userId": {"7"}, "userPassword": {"secret"},
		"itemId": {"100"}, "message": {"hello"},
	}

	withParent := func(v string) url.Values {
		values := url.Values{}
		for k, vs := range base {
			values[k] = vs
		}
		values.Set("parentId", v)
		return values
	}

	t.Run("numeric parent", func(t *testing.T) {
		got, err := parseCreateCommentParams(withParent("9"))
		require.NoError(t, err)
		require.NotNil(t, got.ParentID)
		assert.Equal(t, int64(9), *got.ParentID)
	})

	t.Run("empty parent means top level", func(t *testing.T) {
		got, err := parseCreateCommentParams(withParent(""))
		require.NoError(t, err)
		assert.Nil(t, got.ParentID)
	})

	t.Run("non-numeric parent means top level", func(t *testing.T) {
		got, err := parseCreateCommentParams(withParent("null"))
		require.NoError(t, err)
		assert.Nil(t, got.ParentID)
	})

	t.Run("absent parent field is a protocol error", func(t *testing.T) {
		_, err := parseCreateCommentParams(base)
		assert.ErrorIs(t, err, ErrMalformedRequest)
	})
}

func TestParseListCommentsParams(t *testing.T) {
	got, err := parseListCommentsParams(url.Values{"itemId": {"100"}, "lastId": {"5"}})
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.ItemID)
	assert.Equal(t, int64(5), got.LastCommentID)

	_, err = parseListCommentsParams(url.Values{"itemId": {"100"}})
	assert.ErrorIs(t, err, ErrMalformedRequest)

	_, err = parseListCommentsParams(url.Values{"itemId": {"nope"}, "lastId": {"0"}})
	assert.ErrorIs(t, err, ErrMalformedRequest)
}
