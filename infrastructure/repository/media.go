package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sociallearn/index-api/infrastructure/database/postgres"
	"github.com/sociallearn/index-api/internal/domain"
)

const (
	mediaFilesTable = "media_files"
)

type MediaRepository interface {
	Create(file *domain.MediaFile) (*domain.MediaFile, error)
}

type mediaRepository struct {
	conn *postgres.Connection
}

func NewMediaRepository(conn *postgres.Connection) MediaRepository {
	return &mediaRepository{
		conn: conn,
	}
}

func (r *mediaRepository) Create(file *domain.MediaFile) (*domain.MediaFile, error) {
	sqlQuery, args, err := squirrel.
		Insert(mediaFilesTable).
		Columns("filename", "original_name", "file_type", "file_size", "mime_type", "storage_path", "uploaded_by").
		Values(file.Filename, file.OriginalName, file.FileType, file.FileSize, file.MimeType, file.StoragePath, file.UploadedBy).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&file.ID, &file.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao registrar arquivo: %w", err)
	}

	return file, nil
}
