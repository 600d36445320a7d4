// Package courierrepo persists courier aggregates.
package courierrepo

import (
	"time"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the couriers row. Email is stored lowercased and is unique.
type CourierDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name           string     `gorm:"type:varchar(255);not null;index"`
	Email          string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone          string     `gorm:"type:varchar(11);not null"`
	PasswordHash   string     `gorm:"type:varchar(255);not null"`
	Status         string     `gorm:"type:varchar(16);not null;index"`
	CurrentOrderID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt      time.Time  `gorm:"not null"`
	Version        int        `gorm:"not null"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	var currentOrderID *uuid.UUID
	if id := c.CurrentOrder(); id != nil {
		raw := id.Google()
		currentOrderID = &raw
	}

	return CourierDTO{
		ID:             c.ID().Google(),
		Name:           c.Name(),
		Email:          c.Email(),
		Phone:          c.Phone(),
		PasswordHash:   c.PasswordHash(),
		Status:         c.Status().String(),
		CurrentOrderID: currentOrderID,
		CreatedAt:      c.CreatedAt(),
		Version:        c.Version(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.FromGoogleUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		oID, orderErr := kernel.FromGoogleUUID(*dto.CurrentOrderID)
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &oID
	}

	status, err := courier.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id, dto.Name, dto.Email, dto.Phone, dto.PasswordHash,
		status, currentOrderID, dto.CreatedAt, dto.Version,
	)
}
