package words

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FirstColumnOnly(t *testing.T) {
	l, err := Parse(strings.NewReader("fiets,bike\n\nregen\n  molen , mill\nfiets,again\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"fiets", "regen", "molen"}, l.words)
	assert.Equal(t, 3, l.Len())
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	assert.Equal(t, Fallback().Len(), l.Len())
	assert.GreaterOrEqual(t, l.Len(), 3)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte("een\ntwee\ndrie\nvier\n"), 0644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Len())
}

func TestSample_DistinctWords(t *testing.T) {
	l := Fallback()
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 100; i++ {
		got := l.Sample(r, 3)
		require.Len(t, got, 3)
		assert.NotEqual(t, got[0], got[1])
		assert.NotEqual(t, got[1], got[2])
		assert.NotEqual(t, got[0], got[2])
	}
}

func TestSample_ShortList(t *testing.T) {
	l, err := Parse(strings.NewReader("een\ntwee\n"))
	require.NoError(t, err)

	assert.Nil(t, l.Sample(rand.New(rand.NewPCG(1, 2)), 3))
	assert.Len(t, l.Sample(rand.New(rand.NewPCG(1, 2)), 2), 2)
}

func TestWriteFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, WriteFallback(path))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Fallback().Len(), l.Len())

	require.NoError(t, os.WriteFile(path, []byte("eigen\n"), 0644))
	require.NoError(t, WriteFallback(path))
	l, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Len())
}
