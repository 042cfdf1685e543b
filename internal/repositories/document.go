package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumeai/reviewer/internal/models"
)

type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id uuid.UUID) (*models.Document, error)
	FindUnindexed(limit int) ([]models.Document, error)
	MarkIndexed(id uuid.UUID) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create implements DocumentRepository.
func (d *documentRepository) Create(document *models.Document) error {
	if err := d.db.Create(&document).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

// FindByID implements DocumentRepository.
func (d *documentRepository) FindByID(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	if err := d.db.Where("id = ?", id).First(&doc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("document not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find document: %w", err)
	}

	return &doc, nil
}

// FindUnindexed implements DocumentRepository.
func (d *documentRepository) FindUnindexed(limit int) ([]models.Document, error) {
	var docs []models.Document
	err := d.db.
		Where("indexed = ?", false).
		Order("created_at ASC").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find unindexed documents: %w", err)
	}

	return docs, nil
}

// MarkIndexed implements DocumentRepository.
func (d *documentRepository) MarkIndexed(id uuid.UUID) error {
	result := d.db.Model(&models.Document{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"indexed":    true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark document indexed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("document not found")
	}

	return nil
}
