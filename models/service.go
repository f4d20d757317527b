package models

type ServiceType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Services    []Service `gorm:"foreignKey:ServiceTypeID" json:"services,omitempty"`
}

type Service struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Name          string      `gorm:"size:100;not null" json:"name"`
	ServiceTypeID uint        `gorm:"not null" json:"serviceTypeId"`
	ServiceType   ServiceType `gorm:"foreignKey:ServiceTypeID" json:"serviceType"`
	// IsActive=false is a soft delete: existing reservation line items stay
	// valid but new attachments are rejected.
	IsActive bool `gorm:"default:true" json:"isActive"`
}
