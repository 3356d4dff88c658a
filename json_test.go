package urlkit_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/urlkit"
)

func TestMarshalJSON(t *testing.T) {
	u := urlkit.MustNew("https://me@example.com:8443/p?q=1")
	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"href": "https://me@example.com:8443/p?q=1",
		"scheme": "https",
		"username": "me",
		"host": "example.com",
		"port": 8443,
		"path": "/p",
		"query": "q=1"
	}`, string(b))

	m := urlkit.MustNew("mailto:x@example.com#top")
	b, err = json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"href":"mailto:x@example.com#top","scheme":"mailto","path":"x@example.com","fragment":"top"}`, string(b))

	var nilURL *urlkit.URL
	b, err = nilURL.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestUnmarshalJSON(t *testing.T) {
	var doc struct {
		Link *urlkit.URL `json:"link"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"link":{"href":"HTTP://Example.com:80/a"}}`), &doc))
	require.NotNil(t, doc.Link)
	assert.Equal(t, "http://example.com/a", doc.Link.Spec())

	var bad urlkit.URL
	assert.ErrorIs(t, bad.UnmarshalJSON([]byte(`{"href":"http://"}`)), urlkit.ErrEmptyHost)
	assert.ErrorIs(t, bad.UnmarshalJSON([]byte(`[`)), urlkit.ErrInvalidArg)
}
