package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kontor/internal/application/customer/usecases"
	"kontor/internal/shared/logger"
	"kontor/internal/shared/utils"
)

type CustomerHandler struct {
	createUC *usecases.CreateCustomerUseCase
	updateUC *usecases.UpdateCustomerUseCase
	getUC    *usecases.GetCustomerUseCase
	listUC   *usecases.ListCustomersUseCase
	deleteUC *usecases.DeleteCustomerUseCase
	logger   logger.Interface
}

func NewCustomerHandler(
	createUC *usecases.CreateCustomerUseCase,
	updateUC *usecases.UpdateCustomerUseCase,
	getUC *usecases.GetCustomerUseCase,
	listUC *usecases.ListCustomersUseCase,
	deleteUC *usecases.DeleteCustomerUseCase,
	log logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		createUC: createUC,
		updateUC: updateUC,
		getUC:    getUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

type addressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Label      string `json:"label"`
}

type contactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type createCustomerRequest struct {
	LegalName string           `json:"legal_name" binding:"required,max=200"`
	TradeName string           `json:"trade_name" binding:"max=200"`
	VatID     string           `json:"vat_id" binding:"max=50"`
	Industry  string           `json:"industry" binding:"max=100"`
	Size      string           `json:"size" binding:"max=50"`
	Addresses []addressRequest `json:"addresses"`
	Contacts  []contactRequest `json:"contacts"`
}

type updateCustomerRequest struct {
	LegalName string           `json:"legal_name" binding:"required,max=200"`
	TradeName string           `json:"trade_name" binding:"max=200"`
	VatID     string           `json:"vat_id" binding:"max=50"`
	Industry  string           `json:"industry" binding:"max=100"`
	Size      string           `json:"size" binding:"max=50"`
	Status    string           `json:"status"`
	Addresses []addressRequest `json:"addresses"`
	Contacts  []contactRequest `json:"contacts"`
}

func toAddressInputs(addresses []addressRequest) []usecases.AddressInput {
	inputs := make([]usecases.AddressInput, 0, len(addresses))
	for _, a := range addresses {
		inputs = append(inputs, usecases.AddressInput{
			Street:     a.Street,
			City:       a.City,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			Label:      a.Label,
		})
	}
	return inputs
}

func toContactInputs(contacts []contactRequest) []usecases.ContactInput {
	inputs := make([]usecases.ContactInput, 0, len(contacts))
	for _, ct := range contacts {
		inputs = append(inputs, usecases.ContactInput{
			Name:  ct.Name,
			Email: ct.Email,
			Phone: ct.Phone,
			Role:  ct.Role,
		})
	}
	return inputs
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCustomerCommand{
		Principal: principal,
		ActorIP:   utils.ClientIP(c),
		LegalName: req.LegalName,
		TradeName: req.TradeName,
		VatID:     req.VatID,
		Industry:  req.Industry,
		Size:      req.Size,
		Addresses: toAddressInputs(req.Addresses),
		Contacts:  toContactInputs(req.Contacts),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Customer created successfully")
}

// UpdateCustomer handles PUT /customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	customerID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update customer", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCustomerCommand{
		Principal:  principal,
		ActorIP:    utils.ClientIP(c),
		CustomerID: customerID,
		LegalName:  req.LegalName,
		TradeName:  req.TradeName,
		VatID:      req.VatID,
		Industry:   req.Industry,
		Size:       req.Size,
		Status:     req.Status,
		Addresses:  toAddressInputs(req.Addresses),
		Contacts:   toContactInputs(req.Contacts),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	customerID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCustomerQuery{
		Principal:  principal,
		CustomerID: customerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListCustomersQuery{
		Principal: principal,
		Status:    c.Query("status"),
		Industry:  c.Query("industry"),
		Search:    c.Query("search"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Customers, result.Total, result.Page, result.PageSize)
}

// DeleteCustomer handles DELETE /customers/:id
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	customerID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCustomerCommand{
		Principal:  principal,
		ActorIP:    utils.ClientIP(c),
		CustomerID: customerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer deleted successfully", result)
}
