package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/invorax/invorax-go/internal/application/session"
)

// FileStore guarda la sesión como un único documento JSON en disco. Las tres
// claves (access_token, refresh_token, user) viven en el mismo archivo, así que
// se escriben y borran de forma atómica: primero a un temporal y luego rename.
// El filesystem va detrás de afero para poder probar con uno en memoria.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore construye el store sobre el filesystem dado.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Load devuelve la sesión persistida, o nil si el archivo no existe.
func (s *FileStore) Load() (*session.StoredSession, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión persistida: %w", err)
	}
	var st session.StoredSession
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("sesión persistida ilegible: %w", err)
	}
	return &st, nil
}

// Save escribe la sesión completa. El permiso 0600 evita que otros usuarios del
// sistema lean las credenciales.
func (s *FileStore) Save(st session.StoredSession) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("crear directorio de sesión: %w", err)
		}
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("escribir sesión: %w", err)
	}
	return s.fs.Rename(tmp, s.path)
}

// Clear elimina la sesión persistida. Borrar algo que no existe no es error.
func (s *FileStore) Clear() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar sesión persistida: %w", err)
	}
	return nil
}
