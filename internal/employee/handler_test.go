package employee

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// fakeUploader stands in for the upload store so handler tests never
// touch the filesystem
type fakeUploader struct {
	path *string
	err  error
}

func (f *fakeUploader) SaveFromRequest(r *http.Request, field string) (*string, error) {
	return f.path, f.err
}

var _ = ginkgo.Describe("Employee Handler", func() {
	var (
		router   *chi.Mux
		mockRepo *mockRepository
		uploader *fakeUploader
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		uploader = &fakeUploader{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := NewService(mockRepo, logger)
		handler := NewHandler(service, uploader)

		router = chi.NewRouter()
		router.Route("/api/employees", func(r chi.Router) {
			r.Post("/", handler.Create)
			r.Get("/", handler.List)
			r.Get("/search", handler.Search)
			r.Get("/{id}", handler.Get)
			r.Put("/{id}", handler.Update)
			r.Delete("/{id}", handler.Delete)
		})
	})

	formRequest := func(method, path string, fields map[string]string) *http.Request {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		for key, value := range fields {
			gomega.Expect(writer.WriteField(key, value)).To(gomega.Succeed())
		}
		gomega.Expect(writer.Close()).To(gomega.Succeed())

		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return req
	}

	validFields := func() map[string]string {
		return map[string]string{
			"firstName":  "A",
			"lastName":   "B",
			"email":      "a@x.com",
			"department": "IT",
			"position":   "Dev",
			"salary":     "50000",
		}
	}

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	createEmployee := func() Employee {
		w := serve(formRequest(http.MethodPost, "/api/employees", validFields()))
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))

		var emp Employee
		gomega.Expect(json.NewDecoder(w.Body).Decode(&emp)).To(gomega.Succeed())
		return emp
	}

	ginkgo.Describe("POST /api/employees", func() {
		ginkgo.It("should create an employee from form fields", func() {
			emp := createEmployee()

			gomega.Expect(emp.ID).To(gomega.BeNumerically(">", 0))
			gomega.Expect(emp.Email).To(gomega.Equal("a@x.com"))
			gomega.Expect(*emp.Salary).To(gomega.Equal(50000.0))
			gomega.Expect(emp.ProfilePicture).To(gomega.BeNil())
		})

		ginkgo.It("should attach the uploaded picture path", func() {
			path := "uploads/1700000000000-photo.png"
			uploader.path = &path

			emp := createEmployee()
			gomega.Expect(emp.ProfilePicture).ToNot(gomega.BeNil())
			gomega.Expect(*emp.ProfilePicture).To(gomega.Equal(path))
		})

		ginkgo.It("should respond 400 when a required field is missing", func() {
			fields := validFields()
			delete(fields, "email")

			w := serve(formRequest(http.MethodPost, "/api/employees", fields))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("Missing required fields"))
		})

		ginkgo.It("should respond 400 on a non-numeric salary", func() {
			fields := validFields()
			fields["salary"] = "lots"

			w := serve(formRequest(http.MethodPost, "/api/employees", fields))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should respond 400 when the upload is rejected", func() {
			uploader.err = internal.NewValidationError(
				"Invalid file type. Only JPG and PNG files are allowed",
				internal.ErrCodeInvalidFile,
			)

			w := serve(formRequest(http.MethodPost, "/api/employees", validFields()))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("Invalid file type"))
		})

		ginkgo.It("should respond 400 on a duplicate email", func() {
			createEmployee()

			w := serve(formRequest(http.MethodPost, "/api/employees", validFields()))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("GET /api/employees", func() {
		ginkgo.It("should return an empty JSON array when there are no employees", func() {
			w := serve(httptest.NewRequest(http.MethodGet, "/api/employees", nil))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(w.Body.String()).To(gomega.MatchJSON("[]"))
		})

		ginkgo.It("should return the stored employees", func() {
			createEmployee()

			w := serve(httptest.NewRequest(http.MethodGet, "/api/employees", nil))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var list []Employee
			gomega.Expect(json.NewDecoder(w.Body).Decode(&list)).To(gomega.Succeed())
			gomega.Expect(list).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Describe("GET /api/employees/search", func() {
		ginkgo.It("should filter by query parameters", func() {
			createEmployee()

			w := serve(httptest.NewRequest(http.MethodGet, "/api/employees/search?department=IT&position=Dev", nil))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var list []Employee
			gomega.Expect(json.NewDecoder(w.Body).Decode(&list)).To(gomega.Succeed())
			gomega.Expect(list).To(gomega.HaveLen(1))
		})

		ginkgo.It("should return an empty array for no matches", func() {
			createEmployee()

			w := serve(httptest.NewRequest(http.MethodGet, "/api/employees/search?department=Finance", nil))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(w.Body.String()).To(gomega.MatchJSON("[]"))
		})
	})

	ginkgo.Describe("GET /api/employees/{id}", func() {
		ginkgo.It("should return the employee", func() {
			created := createEmployee()

			w := serve(httptest.NewRequest(http.MethodGet, "/api/employees/1", nil))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var emp Employee
			gomega.Expect(json.NewDecoder(w.Body).Decode(&emp)).To(gomega.Succeed())
			gomega.Expect(emp.ID).To(gomega.Equal(created.ID))
		})

		ginkgo.It("should respond 404 for an unknown id", func() {
			w := serve(httptest.NewRequest(http.MethodGet, "/api/employees/999", nil))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("Employee not found"))
		})

		ginkgo.It("should respond 404 for a malformed id", func() {
			w := serve(httptest.NewRequest(http.MethodGet, "/api/employees/abc", nil))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("Employee not found"))
		})
	})

	ginkgo.Describe("PUT /api/employees/{id}", func() {
		ginkgo.It("should replace the submitted fields", func() {
			createEmployee()

			fields := validFields()
			fields["department"] = "HR"
			w := serve(formRequest(http.MethodPut, "/api/employees/1", fields))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var emp Employee
			gomega.Expect(json.NewDecoder(w.Body).Decode(&emp)).To(gomega.Succeed())
			gomega.Expect(emp.Department).To(gomega.Equal("HR"))
		})

		ginkgo.It("should respond 404 for an unknown id", func() {
			w := serve(formRequest(http.MethodPut, "/api/employees/999", validFields()))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))
		})
	})

	ginkgo.Describe("DELETE /api/employees/{id}", func() {
		ginkgo.It("should delete and confirm", func() {
			createEmployee()

			w := serve(httptest.NewRequest(http.MethodDelete, "/api/employees/1", nil))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("Employee deleted"))

			w = serve(httptest.NewRequest(http.MethodGet, "/api/employees/1", nil))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))
		})

		ginkgo.It("should respond 404 for an unknown id", func() {
			w := serve(httptest.NewRequest(http.MethodDelete, "/api/employees/999", nil))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))
		})
	})
})
