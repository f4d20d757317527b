package dto

type ServiceTypeResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type CreateServiceTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type UpdateServiceTypeRequest struct {
	ID          uint     `json:"id" binding:"required"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

type ServiceResponse struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	IsActive    bool                `json:"isActive"`
	ServiceType ServiceTypeResponse `json:"serviceType"`
}

type CreateServiceRequest struct {
	Name          string `json:"name" binding:"required"`
	ServiceTypeID uint   `json:"serviceTypeId" binding:"required"`
}

type UpdateServiceRequest struct {
	ID            uint    `json:"id" binding:"required"`
	Name          *string `json:"name"`
	ServiceTypeID *uint   `json:"serviceTypeId"`
}

type ChangeServiceStatusRequest struct {
	ID       uint `json:"id" binding:"required"`
	IsActive bool `json:"isActive"`
}
