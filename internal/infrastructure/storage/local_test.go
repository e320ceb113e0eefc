package storage_test

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/infrastructure/storage"
)

// fileHeader arma un *multipart.FileHeader real a partir de un nombre y contenido.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSave_GuardaConNombreUUIDYDevuelveURLPublica(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalImageStore(dir, "/uploads/")
	require.NoError(t, err)

	url, err := store.Save(fileHeader(t, "foto.PNG", []byte("png-bytes")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"), "url pública: %s", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "la extensión se conserva en minúsculas: %s", url)
	assert.NotContains(t, url, "foto", "el nombre original no se reutiliza")

	// el archivo físico existe y tiene el contenido subido
	name := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSave_ExtensionNoPermitida_RetornaErrInvalidInput(t *testing.T) {
	store, err := storage.NewLocalImageStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	for _, filename := range []string{"script.exe", "nota.txt", "sin-extension"} {
		_, err := store.Save(fileHeader(t, filename, []byte("x")))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "archivo %s", filename)
	}
}

func TestNewLocalImageStore_CreaDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "uploads")
	store, err := storage.NewLocalImageStore(dir, "/uploads")
	require.NoError(t, err)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
