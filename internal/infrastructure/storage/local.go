// Package storage implementa el almacenamiento de imágenes de producto en el
// disco local. Los archivos se sirven como estáticos bajo la ruta pública
// configurada (ej. /uploads).
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// Extensiones de imagen aceptadas.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// LocalImageStore guarda imágenes en un directorio local con nombre UUID.
type LocalImageStore struct {
	dir        string // directorio físico
	publicPath string // prefijo de URL pública
}

// NewLocalImageStore crea el directorio si no existe y devuelve el store.
func NewLocalImageStore(dir, publicPath string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &LocalImageStore{dir: dir, publicPath: strings.TrimRight(publicPath, "/")}, nil
}

// Save guarda el archivo subido y devuelve su URL pública (/uploads/<uuid>.ext).
// ErrInvalidInput si la extensión no está en la allow-list.
func (s *LocalImageStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", domain.ErrInvalidInput
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(s.dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("storage: abrir upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("storage: crear %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("storage: escribir %s: %w", dst, err)
	}
	return path.Join(s.publicPath, name), nil
}

// Dir devuelve el directorio físico (para montar el static handler).
func (s *LocalImageStore) Dir() string {
	return s.dir
}
