// Package media cuida do upload e registro de arquivos de imagem
package media

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/internal/config"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/pkg/log"
	"github.com/sociallearn/index-api/pkg/utils"
)

// Extensões de imagem aceitas no upload
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

type Uploader interface {
	SaveImage(originalName, mimeType string, size int64, content io.Reader, uploadedBy int) (*domain.MediaFile, error)
}

type uploaderService struct {
	mediaRepository repository.MediaRepository
	cfg             config.Upload
}

func NewUploaderService(mediaRepository repository.MediaRepository, cfg config.Upload) Uploader {
	return &uploaderService{
		mediaRepository: mediaRepository,
		cfg:             cfg,
	}
}

// SaveImage valida, grava o arquivo em disco com um nome gerado e registra
// os metadados. O nome original nunca vira caminho no disco.
func (s *uploaderService) SaveImage(originalName, mimeType string, size int64, content io.Reader, uploadedBy int) (*domain.MediaFile, error) {
	extension := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[extension] {
		return nil, ErrUnsupportedFileType
	}

	if size > s.cfg.MaxSizeBytes {
		return nil, ErrFileTooLarge
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	filename := id + extension
	storagePath := filepath.Join(s.cfg.Dir, filename)

	destination, err := os.Create(storagePath)
	if err != nil {
		return nil, err
	}
	defer destination.Close()

	written, err := io.Copy(destination, io.LimitReader(content, s.cfg.MaxSizeBytes+1))
	if err != nil {
		_ = os.Remove(storagePath)
		return nil, err
	}

	if written > s.cfg.MaxSizeBytes {
		_ = os.Remove(storagePath)
		return nil, ErrFileTooLarge
	}

	file := &domain.MediaFile{
		Filename:     filename,
		OriginalName: originalName,
		FileType:     strings.TrimPrefix(extension, "."),
		FileSize:     written,
		MimeType:     mimeType,
		StoragePath:  storagePath,
		UploadedBy:   uploadedBy,
	}

	created, err := s.mediaRepository.Create(file)
	if err != nil {
		_ = os.Remove(storagePath)
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"filename": filename,
		"size":     written,
	}).Info("Arquivo de imagem salvo")

	return created, nil
}
