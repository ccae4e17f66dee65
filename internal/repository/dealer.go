package repository

import (
	"context"
	"errors"
	"time"

	"finder-service/internal/model"
	"finder-service/prometheus"

	"gorm.io/gorm"
)

type DealerRepository interface {
	Get(ctx context.Context, id uint) (*model.Dealer, error)
}

type dealerRepository struct {
	db *gorm.DB
}

func NewDealerRepository(db *gorm.DB) DealerRepository {
	return &dealerRepository{db: db}
}

func (r *dealerRepository) Get(ctx context.Context, id uint) (*model.Dealer, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var dealer model.Dealer
	result := r.db.WithContext(ctx).Preload("Meta").First(&dealer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDealerNotFound
		}
		return nil, result.Error
	}
	return &dealer, nil
}
