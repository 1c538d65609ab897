package images

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/legacykeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestStore_Import(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	s := NewStore(dir, logging.Nop())
	src := writeSource(t, "Card.JPG", "jpeg")

	uri, err := s.Import(context.Background(), src)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "file://"), uri)
	assert.True(t, strings.HasSuffix(uri, ".jpg"), uri)

	p, err := Path(uri)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(p))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(b))

	// the source is left in place
	_, err = os.Stat(src)
	require.NoError(t, err)
}

func TestStore_ImportFromURIGetsFreshNames(t *testing.T) {
	s := NewStore(t.TempDir(), logging.Nop())
	src := URI(writeSource(t, "a.png", "png"))

	first, err := s.Import(context.Background(), src)
	require.NoError(t, err)
	second, err := s.Import(context.Background(), src)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestStore_ImportMissingSource(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	s := NewStore(dir, logging.Nop())

	_, err := s.Import(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	require.Error(t, err)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "no directory for a failed import")
}

func TestStore_ImportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore(t.TempDir(), logging.Nop()).Import(ctx, writeSource(t, "a.jpg", "x"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestPath(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{"plain path", "/tmp/a.jpg", "/tmp/a.jpg", false},
		{"file uri", "file:///tmp/a.jpg", filepath.FromSlash("/tmp/a.jpg"), false},
		{"escaped uri", "file:///tmp/my%20card.jpg", filepath.FromSlash("/tmp/my card.jpg"), false},
		{"empty", "", "", true},
		{"uri without path", "file://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Path(tt.ref)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
