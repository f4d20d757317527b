package controllers

import (
	"strconv"

	"stayhub/config"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

// GetServiceTypes lists the service catalog categories.
func GetServiceTypes(c *gin.Context) {
	page, limit := parsePagination(c)

	var serviceTypes []models.ServiceType
	if err := config.DB.Order("id").Find(&serviceTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	total := len(serviceTypes)
	serviceTypes = paginate(serviceTypes, page, limit)

	responses := make([]dto.ServiceTypeResponse, 0, len(serviceTypes))
	for _, st := range serviceTypes {
		responses = append(responses, convertToServiceTypeResponse(st))
	}

	response.SuccessWithPagination(c, responses, page, limit, total)
}

// GetServiceTypeByID returns one service type.
func GetServiceTypeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid service type id")
		return
	}

	var serviceType models.ServiceType
	if err := config.DB.First(&serviceType, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToServiceTypeResponse(serviceType))
}

// CreateServiceType adds a service type. Staff only.
func CreateServiceType(c *gin.Context) {
	var req dto.CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid service type payload")
		return
	}

	if err := validator.ValidateServiceType(req.Name, req.Price); err != nil {
		response.FromError(c, err)
		return
	}

	serviceType := models.ServiceType{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := config.DB.Create(&serviceType).Error; err != nil {
		response.Conflict(c, "Service type name already exists")
		return
	}

	response.Created(c, convertToServiceTypeResponse(serviceType))
}

// UpdateServiceType modifies a service type. Staff only.
func UpdateServiceType(c *gin.Context) {
	var req dto.UpdateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid service type payload")
		return
	}

	var serviceType models.ServiceType
	if err := config.DB.First(&serviceType, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != nil {
		serviceType.Name = *req.Name
	}
	if req.Description != nil {
		serviceType.Description = *req.Description
	}
	if req.Price != nil {
		serviceType.Price = *req.Price
	}

	if err := validator.ValidateServiceType(serviceType.Name, serviceType.Price); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Save(&serviceType).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToServiceTypeResponse(serviceType))
}

// GetServices lists concrete services, optionally only active ones.
func GetServices(c *gin.Context) {
	page, limit := parsePagination(c)

	query := config.DB.Preload("ServiceType").Order("id")
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if typeIDStr := c.Query("serviceTypeId"); typeIDStr != "" {
		if typeID, err := strconv.ParseUint(typeIDStr, 10, 64); err == nil {
			query = query.Where("service_type_id = ?", uint(typeID))
		}
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		response.ServerError(c)
		return
	}

	total := len(services)
	services = paginate(services, page, limit)

	responses := make([]dto.ServiceResponse, 0, len(services))
	for _, service := range services {
		responses = append(responses, convertToServiceResponse(service))
	}

	response.SuccessWithPagination(c, responses, page, limit, total)
}

// GetServiceByID returns one service with its type.
func GetServiceByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid service id")
		return
	}

	var service models.Service
	if err := config.DB.Preload("ServiceType").First(&service, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToServiceResponse(service))
}

// CreateService adds a bookable service under a service type. Staff only.
func CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid service payload")
		return
	}

	var serviceType models.ServiceType
	if err := config.DB.First(&serviceType, req.ServiceTypeID).Error; err != nil {
		response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Service type not found", err))
		return
	}

	service := models.Service{
		Name:          req.Name,
		ServiceTypeID: req.ServiceTypeID,
		IsActive:      true,
	}
	if err := config.DB.Create(&service).Error; err != nil {
		response.ServerError(c)
		return
	}
	service.ServiceType = serviceType

	response.Created(c, convertToServiceResponse(service))
}

// UpdateService modifies a service's name or type. Staff only.
func UpdateService(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid service payload")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.ServiceTypeID != nil {
		var serviceType models.ServiceType
		if err := config.DB.First(&serviceType, *req.ServiceTypeID).Error; err != nil {
			response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Service type not found", err))
			return
		}
		service.ServiceTypeID = *req.ServiceTypeID
	}

	if err := config.DB.Save(&service).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Preload("ServiceType").First(&service, service.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToServiceResponse(service))
}

// ChangeServiceStatus flips a service's active flag. Deactivation is the soft
// delete: line items already attached stay intact. Staff only.
func ChangeServiceStatus(c *gin.Context) {
	var req dto.ChangeServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid service status payload")
		return
	}

	var service models.Service
	if err := config.DB.Preload("ServiceType").First(&service, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&service).Update("is_active", req.IsActive).Error; err != nil {
		response.ServerError(c)
		return
	}
	service.IsActive = req.IsActive

	response.Success(c, convertToServiceResponse(service))
}
