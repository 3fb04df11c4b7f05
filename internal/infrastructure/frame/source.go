package frame

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bottle-gate/internal/domain/port"
)

// FileSource перечитывает один и тот же файл на каждом цикле —
// снимок подменяется снаружи между циклами.
type FileSource struct {
	Path string
}

// NewFileSource создаёт источник кадров из одного файла
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// NextFrame возвращает кадр текущего цикла
func (s *FileSource) NextFrame(ctx context.Context) ([]byte, error) {
	_ = ctx

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read frame %s: %w", s.Path, err)
	}
	return data, nil
}

// FolderSource циклически перебирает снимки из папки.
type FolderSource struct {
	files []string
	next  int
}

// NewFolderSource собирает отсортированный список снимков из папки.
func NewFolderSource(dir string) (*FolderSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read frame dir %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg", ".bmp":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no image files in %s", dir)
	}

	return &FolderSource{files: files}, nil
}

// NextFrame возвращает очередной снимок, после последнего — снова первый
func (s *FolderSource) NextFrame(ctx context.Context) ([]byte, error) {
	_ = ctx

	path := s.files[s.next]
	s.next = (s.next + 1) % len(s.files)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read frame %s: %w", path, err)
	}
	return data, nil
}

// Проверка реализации интерфейса
var (
	_ port.FrameSource = (*FileSource)(nil)
	_ port.FrameSource = (*FolderSource)(nil)
)
