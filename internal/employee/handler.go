package employee

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/frahmantamala/employee-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(dto *EmployeeFormDTO, picturePath *string) (*Employee, error)
	GetAll() ([]*Employee, error)
	Search(query SearchQuery) ([]*Employee, error)
	GetByID(id int64) (*Employee, error)
	Update(id int64, dto *EmployeeFormDTO, newPicturePath *string) (*Employee, error)
	Delete(id int64) error
}

// Uploader persists at most one image file per request and returns its
// stored path, nil when the request carried no file.
type Uploader interface {
	SaveFromRequest(r *http.Request, field string) (*string, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Uploads Uploader
}

func NewHandler(service ServiceAPI, uploads Uploader) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
		Uploads:     uploads,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	// upload first, as the original did: a bad file rejects the request
	// before any validation of the other fields
	picturePath, err := h.Uploads.SaveFromRequest(r, "profilePicture")
	if err != nil {
		h.Logger.Error("Create: upload failed", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	dto, err := ParseEmployeeForm(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	emp, err := h.Service.Create(dto, picturePath)
	if err != nil {
		h.Logger.Error("Create: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("List: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if employees == nil {
		employees = []*Employee{}
	}
	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := SearchQuery{
		Department: r.URL.Query().Get("department"),
		Position:   r.URL.Query().Get("position"),
	}

	employees, err := h.Service.Search(query)
	if err != nil {
		h.Logger.Error("Search: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if employees == nil {
		employees = []*Employee{}
	}
	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	emp, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	picturePath, err := h.Uploads.SaveFromRequest(r, "profilePicture")
	if err != nil {
		h.Logger.Error("Update: upload failed", "error", err, "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	dto, err := ParseEmployeeForm(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	emp, err := h.Service.Update(id, dto, picturePath)
	if err != nil {
		h.Logger.Error("Update: service error", "error", err, "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteResponse{Message: "Employee deleted"})
}

// employeeID parses the path id. A malformed id resolves to nothing, so
// it reads as 404, never a server error.
func (h *Handler) employeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Warn("malformed employee id", "id", idStr)
		h.WriteError(w, http.StatusNotFound, internal.ErrEmployeeNotFound.Message)
		return 0, false
	}
	return id, true
}
