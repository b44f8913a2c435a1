package auth

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = ginkgo.Describe("Auth Handler", func() {
	var (
		handler  *Handler
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator("handler-test-secret", 7*24*time.Hour)
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost, logger)
		handler = NewHandler(service)
	})

	postJSON := func(path string, body any) *httptest.ResponseRecorder {
		payload, err := json.Marshal(body)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		switch path {
		case "/api/auth/signup":
			handler.Signup(w, req)
		case "/api/auth/login":
			handler.Login(w, req)
		}
		return w
	}

	ginkgo.Describe("Signup endpoint", func() {
		ginkgo.It("should respond 201 with token and email", func() {
			w := postJSON("/api/auth/signup", SignupDTO{Email: "a@x.com", Password: "pw1"})

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))

			var resp AuthResponse
			gomega.Expect(json.NewDecoder(w.Body).Decode(&resp)).To(gomega.Succeed())
			gomega.Expect(resp.Email).To(gomega.Equal("a@x.com"))
			gomega.Expect(resp.Token).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should respond 400 on a duplicate email", func() {
			gomega.Expect(postJSON("/api/auth/signup", SignupDTO{Email: "a@x.com", Password: "pw1"}).Code).
				To(gomega.Equal(http.StatusCreated))

			w := postJSON("/api/auth/signup", SignupDTO{Email: "a@x.com", Password: "pw2"})
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("User already exists"))
		})

		ginkgo.It("should respond 400 on missing fields", func() {
			w := postJSON("/api/auth/signup", map[string]string{"email": "a@x.com"})
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should respond 400 on a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBufferString("{not json"))
			w := httptest.NewRecorder()
			handler.Signup(w, req)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("Login endpoint", func() {
		ginkgo.BeforeEach(func() {
			gomega.Expect(postJSON("/api/auth/signup", SignupDTO{Email: "a@x.com", Password: "pw1"}).Code).
				To(gomega.Equal(http.StatusCreated))
		})

		ginkgo.It("should respond 200 with a fresh token", func() {
			w := postJSON("/api/auth/login", LoginDTO{Email: "a@x.com", Password: "pw1"})
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var resp AuthResponse
			gomega.Expect(json.NewDecoder(w.Body).Decode(&resp)).To(gomega.Succeed())
			claims, err := tokenGen.ValidateToken(resp.Token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("should respond 401 with the generic message for bad credentials", func() {
			w := postJSON("/api/auth/login", LoginDTO{Email: "a@x.com", Password: "wrong"})
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("Invalid email or password"))

			w = postJSON("/api/auth/login", LoginDTO{Email: "nobody@x.com", Password: "pw1"})
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("Invalid email or password"))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		var (
			protected  http.Handler
			seenUserID int64
		)

		ginkgo.BeforeEach(func() {
			seenUserID = 0
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenUserID = internal.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})
			protected = handler.AuthMiddleware(next)
		})

		ginkgo.It("should reject a request without an Authorization header", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(seenUserID).To(gomega.BeZero())
		})

		ginkgo.It("should reject a header without the Bearer prefix", func() {
			token, err := tokenGen.GenerateToken(7)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			req.Header.Set("Authorization", token)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should reject an invalid token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			req.Header.Set("Authorization", "Bearer garbage")
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should pass a valid token through and attach the user id", func() {
			token, err := tokenGen.GenerateToken(7)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(seenUserID).To(gomega.Equal(int64(7)))
		})
	})
})
