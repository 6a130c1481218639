package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/http/middleware"
	"github.com/Bhavuk-Devex/AVO/internal/http/responses"
)

// BusinessHandlers serves business registration and employee management
type BusinessHandlers struct {
	businessSvc domain.BusinessService
	writer      *responses.Writer
}

// NewBusinessHandlers creates new business handlers
func NewBusinessHandlers(businessSvc domain.BusinessService, writer *responses.Writer) *BusinessHandlers {
	return &BusinessHandlers{businessSvc: businessSvc, writer: writer}
}

// RegisterBusinessRequest registers a business, or updates it when BusinessID is set
type RegisterBusinessRequest struct {
	BusinessID      flexID  `json:"business_id"`
	BusinessName    string  `json:"business_name"`
	BusinessAddress *string `json:"business_address"`
	Logo            *string `json:"logo"`
}

// UpdateEmployeeRequest represents a partial employee update
type UpdateEmployeeRequest struct {
	EmployeeID   flexID  `json:"employee_id"`
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Number       *string `json:"number"`
	Address      *string `json:"address"`
	ProfilePhoto *string `json:"profile_photo"`
	Password     *string `json:"password"`
}

// BusinessView is the business record returned to its admin
type BusinessView struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	OwnerID uint    `json:"owner_id"`
	Address *string `json:"address"`
	Logo    *string `json:"logo"`
}

// RegisterOrUpdateBusiness handles POST /register-business
func (h *BusinessHandlers) RegisterOrUpdateBusiness(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req RegisterBusinessRequest
	if !bindJSON(c, h.writer, &req) {
		return
	}

	result, err := h.businessSvc.RegisterOrUpdateBusiness(c.Request.Context(), actor, domain.BusinessInput{
		BusinessID: req.BusinessID.ptr(),
		Name:       req.BusinessName,
		Address:    req.BusinessAddress,
		Logo:       req.Logo,
	})
	if err != nil {
		h.writer.Error(c, err)
		return
	}

	if !result.Created {
		h.writer.Message(c, "Business updated successfully.")
		return
	}
	h.writer.Success(c, gin.H{
		"message":     "Business registered successfully.",
		"business_id": result.BusinessID,
		"auth_token":  result.AuthToken,
	})
}

// GetBusiness handles GET /business
func (h *BusinessHandlers) GetBusiness(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	business, err := h.businessSvc.GetBusiness(c.Request.Context(), actor)
	if err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Success(c, gin.H{"business": BusinessView{
		ID:      business.ID,
		Name:    business.Name,
		OwnerID: business.OwnerID,
		Address: business.Address,
		Logo:    business.Logo,
	}})
}

// AddEmployee handles POST /add-employee
func (h *BusinessHandlers) AddEmployee(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req domain.EmployeeInput
	if !bindJSON(c, h.writer, &req) {
		return
	}

	id, err := h.businessSvc.AddEmployee(c.Request.Context(), actor, req)
	if err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Success(c, gin.H{"message": "Employee added successfully", "employee_id": id})
}

// UpdateEmployee handles PUT /update-employee
func (h *BusinessHandlers) UpdateEmployee(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req UpdateEmployeeRequest
	if !bindJSON(c, h.writer, &req) {
		return
	}

	err := h.businessSvc.UpdateEmployee(c.Request.Context(), actor, domain.EmployeeUpdate{
		EmployeeID:   uint(req.EmployeeID),
		Name:         req.Name,
		Email:        req.Email,
		Number:       req.Number,
		Address:      req.Address,
		ProfilePhoto: req.ProfilePhoto,
		Password:     req.Password,
	})
	if err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Message(c, "Employee updated successfully.")
}

// DeleteEmployee handles DELETE /delete-employees?employee_id=
func (h *BusinessHandlers) DeleteEmployee(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.businessSvc.DeleteEmployee(c.Request.Context(), actor, queryID(c.Query("employee_id"))); err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Message(c, "Employee deleted successfully.")
}

// ListEmployees handles GET /employee-list?business_id=
func (h *BusinessHandlers) ListEmployees(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	employees, err := h.businessSvc.ListEmployeesByBusiness(c.Request.Context(), actor, queryID(c.Query("business_id")))
	if err != nil {
		h.writer.Error(c, err)
		return
	}

	h.writer.Success(c, gin.H{"employees": employees})
}

func (h *BusinessHandlers) actor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		h.writer.Error(c, domain.ErrTokenMissing)
	}
	return actor, ok
}
