package schema_test

import (
	"testing"

	"github.com/privacyui/pupdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesValueScan(t *testing.T) {
	t.Run("nil sources marshal to empty array", func(t *testing.T) {
		var s schema.Sources
		val, err := s.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", string(val.([]byte)))
	})

	t.Run("round trip", func(t *testing.T) {
		s := schema.Sources{
			{Title: "GDPR Article 7", URL: "https://gdpr-info.eu/art-7-gdpr/"},
		}
		val, err := s.Value()
		require.NoError(t, err)

		var got schema.Sources
		require.NoError(t, got.Scan(val))
		assert.Equal(t, s, got)
	})

	t.Run("scans string payloads", func(t *testing.T) {
		var got schema.Sources
		require.NoError(t,
			got.Scan(`[{"title":"PbD","url":"https://example.org"}]`))
		require.Len(t, got, 1)
		assert.Equal(t, "PbD", got[0].Title)
	})

	t.Run("nil database value", func(t *testing.T) {
		var got schema.Sources
		require.NoError(t, got.Scan(nil))
		assert.Empty(t, got)
	})
}

func TestAlignmentValueScan(t *testing.T) {
	t.Run("nil alignment marshals to empty object", func(t *testing.T) {
		var a schema.Alignment
		val, err := a.Value()
		require.NoError(t, err)
		assert.Equal(t, "{}", string(val.([]byte)))
	})

	t.Run("round trip", func(t *testing.T) {
		a := schema.Alignment{"proactive": true, "visibility": false}
		val, err := a.Value()
		require.NoError(t, err)

		var got schema.Alignment
		require.NoError(t, got.Scan(val))
		assert.Equal(t, a, got)
	})
}

func TestMetadataValueScan(t *testing.T) {
	m := schema.Metadata{
		"pbd_alignment": []any{"Proactive", "Privacy by Default"},
		"platform":      "web",
	}
	val, err := m.Value()
	require.NoError(t, err)

	var got schema.Metadata
	require.NoError(t, got.Scan(val))
	assert.Equal(t, m, got)
}
