package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/brightops/peoplehub-backend-go/internal/handler/http/response"
	leaveService "github.com/brightops/peoplehub-backend-go/internal/service/leave"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateType(w http.ResponseWriter, r *http.Request)
	GetType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DisableType(w http.ResponseWriter, r *http.Request)

	Apply(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	GetMyApplications(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)

	InitializeYear(w http.ResponseWriter, r *http.Request)
	GetMyBalances(w http.ResponseWriter, r *http.Request)
	AdjustBalance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	typeService        *leaveService.TypeService
	applicationService *leaveService.ApplicationService
	balanceService     *leaveService.BalanceService
}

func NewLeaveHandler(
	typeService *leaveService.TypeService,
	applicationService *leaveService.ApplicationService,
	balanceService *leaveService.BalanceService,
) LeaveHandler {
	return &LeaveHandlerImpl{
		typeService:        typeService,
		applicationService: applicationService,
		balanceService:     balanceService,
	}
}

func (h *LeaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	lt, err := h.typeService.CreateLeaveType(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", lt)
}

func (h *LeaveHandlerImpl) GetType(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	lt, err := h.typeService.GetLeaveType(r.Context(), tenantID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, lt)
}

func (h *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	enabledOnly := r.URL.Query().Get("enabled") == "true"

	types, err := h.typeService.ListLeaveTypes(r.Context(), tenantID, enabledOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

func (h *LeaveHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.UpdateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	lt, err := h.typeService.UpdateLeaveType(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated successfully", lt)
}

// DisableType soft-disables instead of deleting: historical applications and
// balances keep their foreign keys.
func (h *LeaveHandlerImpl) DisableType(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	if err := h.typeService.SetLeaveTypeEnabled(r.Context(), tenantID, id, false); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type disabled successfully", nil)
}

func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.applicationService.Apply(r.Context(), tenantID, employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application submitted successfully", result)
}

func (h *LeaveHandlerImpl) GetApplication(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Application ID is required", nil)
		return
	}

	app, err := h.applicationService.GetApplication(r.Context(), tenantID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, app)
}

func (h *LeaveHandlerImpl) GetMyApplications(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var status *leave.LeaveStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := leave.LeaveStatus(s)
		status = &st
	}

	apps, err := h.applicationService.ListMyApplications(r.Context(), employeeID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, apps)
}

func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	apps, err := h.applicationService.ListPendingApplications(r.Context(), tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, apps)
}

func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	approverID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Application ID is required", nil)
		return
	}

	app, err := h.applicationService.Approve(r.Context(), tenantID, approverID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application approved successfully", app)
}

func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	approverID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Application ID is required", nil)
		return
	}

	app, err := h.applicationService.Reject(r.Context(), tenantID, approverID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application rejected successfully", app)
}

func (h *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Application ID is required", nil)
		return
	}

	app, err := h.applicationService.Cancel(r.Context(), tenantID, employeeID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application cancelled successfully", app)
}

func (h *LeaveHandlerImpl) InitializeYear(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.InitializeYearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("InitializeYear decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.balanceService.InitializeYear(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balances initialized successfully", result)
}

func (h *LeaveHandlerImpl) GetMyBalances(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	year := time.Now().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	balances, err := h.balanceService.GetEmployeeBalances(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

func (h *LeaveHandlerImpl) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.AdjustBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AdjustBalance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	bal, err := h.balanceService.Adjust(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance adjusted successfully", bal)
}
