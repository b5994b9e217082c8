package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/models/response_models"
	"eventmanager/internal/services"
	"eventmanager/pkg/middleware"
	"eventmanager/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidators(8); err != nil {
		panic(err)
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return w, env
}

type stubAuthService struct {
	lastLogin request_models.LoginRequest
	token     *response_models.TokenResponse
	err       error
	account   db_models.Account
}

func (s *stubAuthService) Authenticate(_ context.Context, req request_models.LoginRequest) (*response_models.TokenResponse, error) {
	s.lastLogin = req
	return s.token, s.err
}

func (s *stubAuthService) SendResetPasswordEmail(context.Context, string) error { return s.err }

func (s *stubAuthService) VerifyResetToken(context.Context, string) (db_models.Account, error) {
	return s.account, s.err
}

func (s *stubAuthService) ResetPassword(context.Context, request_models.ResetPasswordWithTokenRequest) error {
	return s.err
}

func (s *stubAuthService) AccountHasPermission(context.Context, string, string, string) (bool, error) {
	return false, s.err
}

func authRouter(svc services.AuthServiceInterface) *gin.Engine {
	ctrl := NewAuthController(svc)
	r := gin.New()
	r.POST("/v1/auth/login", ctrl.Login)
	r.POST("/v1/auth/forgot-password", ctrl.ForgotPassword)
	r.GET("/v1/auth/reset-password", ctrl.ResetPasswordStatus)
	r.POST("/v1/auth/reset-password", ctrl.ResetPassword)
	return r
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *stubAuthService
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"username":"boss","password":"admin-password"}`,
			svc:        &stubAuthService{token: &response_models.TokenResponse{Token: "jwt", UserType: "ADMIN"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing password",
			body:       `{"username":"boss"}`,
			svc:        &stubAuthService{},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "wrong password",
			body:       `{"username":"boss","password":"nope"}`,
			svc:        &stubAuthService{err: utils.ErrIncorrectPassword},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "database down",
			body:       `{"username":"boss","password":"nope"}`,
			svc:        &stubAuthService{err: utils.ErrDatabaseError},
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w, env := do(t, authRouter(test.svc), http.MethodPost, "/v1/auth/login", test.body)
			if w.Code != test.wantStatus || env.Code != test.wantStatus {
				t.Fatalf("status = %d (body code %d), want %d", w.Code, env.Code, test.wantStatus)
			}
			if test.wantStatus != http.StatusOK {
				return
			}
			var token response_models.TokenResponse
			if err := json.Unmarshal(env.Data, &token); err != nil {
				t.Fatalf("decode token: %v", err)
			}
			if token.Token != "jwt" || token.UserType != "ADMIN" {
				t.Errorf("token = %+v", token)
			}
			if test.svc.lastLogin.Username != "boss" {
				t.Errorf("service saw %+v", test.svc.lastLogin)
			}
		})
	}
}

func TestAuthController_ResetPassword(t *testing.T) {
	user := &db_models.User{}
	user.Email = "solo@x.com"

	w, env := do(t, authRouter(&stubAuthService{account: user}), http.MethodGet, "/v1/auth/reset-password?token=abc", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var status response_models.ResetTokenStatusResponse
	if err := json.Unmarshal(env.Data, &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !status.Valid || status.Email != "solo@x.com" {
		t.Errorf("status = %+v", status)
	}

	w, _ = do(t, authRouter(&stubAuthService{err: utils.ErrTokenExpired}), http.MethodGet, "/v1/auth/reset-password?token=abc", "")
	if w.Code != http.StatusForbidden {
		t.Errorf("expired token status = %d, want 403", w.Code)
	}

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "success", body: `{"token":"abc","password":"long-enough","password_confirmation":"long-enough"}`, wantStatus: http.StatusOK},
		{name: "mismatch", body: `{"token":"abc","password":"long-enough","password_confirmation":"different!"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "too short", body: `{"token":"abc","password":"short","password_confirmation":"short"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown token", body: `{"token":"abc","password":"long-enough","password_confirmation":"long-enough"}`, err: utils.ErrResetTokenNotFound, wantStatus: http.StatusNotFound},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w, _ := do(t, authRouter(&stubAuthService{err: test.err}), http.MethodPost, "/v1/auth/reset-password", test.body)
			if w.Code != test.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, test.wantStatus)
			}
		})
	}
}

type stubRoleService struct {
	services.RoleServiceInterface
	roles    []db_models.Role
	total    int64
	lastPage request_models.PaginationRequest
	added    []string
}

func (s *stubRoleService) FindAll(_ context.Context, p request_models.PaginationRequest) ([]db_models.Role, int64, error) {
	s.lastPage = p
	if err := p.Validate(); err != nil {
		return nil, 0, err
	}
	return s.roles, s.total, nil
}

func (s *stubRoleService) AddAdmins(_ context.Context, id string, ids []string) (*db_models.Role, error) {
	if id != s.roles[0].ID.String() {
		return nil, utils.ErrRoleNotFound
	}
	s.added = append(s.added, ids...)
	role := s.roles[0]
	role.AdminIDs = append(role.AdminIDs, ids...)
	return &role, nil
}

func roleRouter(svc services.RoleServiceInterface) *gin.Engine {
	ctrl := NewRoleController(svc, Paging{ItemsPerPage: 12})
	r := gin.New()
	r.GET("/v1/roles", ctrl.ListRoles)
	r.POST("/v1/roles/:id/admins", ctrl.AddAdmins)
	return r
}

func TestRoleController_ListRoles(t *testing.T) {
	role := db_models.Role{Name: "staff"}
	role.ID = uuid.New()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantPage   request_models.PaginationRequest
	}{
		{name: "defaults", query: "", wantStatus: http.StatusOK, wantPage: request_models.PaginationRequest{Page: 1, Size: 12, Sort: "DESC"}},
		{name: "all items ascending", query: "?size=-1&sort=asc", wantStatus: http.StatusOK, wantPage: request_models.PaginationRequest{Page: 1, Size: -1, Sort: "ASC"}},
		{name: "bad sort", query: "?sort=sideways", wantStatus: http.StatusUnprocessableEntity},
		{name: "page zero", query: "?page=0&size=5", wantStatus: http.StatusOK, wantPage: request_models.PaginationRequest{Page: 1, Size: 5, Sort: "DESC"}},
		{name: "negative page", query: "?page=-1", wantStatus: http.StatusUnprocessableEntity},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := &stubRoleService{roles: []db_models.Role{role}, total: 7}
			w, env := do(t, roleRouter(svc), http.MethodGet, "/v1/roles"+test.query, "")
			if w.Code != test.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, test.wantStatus, env.Message)
			}
			if test.wantStatus != http.StatusOK {
				return
			}
			if svc.lastPage != test.wantPage {
				t.Errorf("service page = %+v, want %+v", svc.lastPage, test.wantPage)
			}

			var page response_models.PageResponse[response_models.RoleResponse]
			if err := json.Unmarshal(env.Data, &page); err != nil {
				t.Fatalf("decode page: %v", err)
			}
			if page.TotalElements != 7 || len(page.Items) != 1 || page.Items[0].Name != "staff" {
				t.Errorf("page = %+v", page)
			}
			if page.Items[0].AdminIDs == nil {
				t.Error("admin_ids should encode as an empty list")
			}
		})
	}
}

func TestRoleController_AddAdmins(t *testing.T) {
	role := db_models.Role{Name: "staff"}
	role.ID = uuid.New()
	member := uuid.NewString()

	tests := []struct {
		name       string
		roleID     string
		body       string
		wantStatus int
	}{
		{name: "success", roleID: role.ID.String(), body: `{"ids":["` + member + `"]}`, wantStatus: http.StatusOK},
		{name: "empty list", roleID: role.ID.String(), body: `{"ids":[]}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "not a uuid", roleID: role.ID.String(), body: `{"ids":["nope"]}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown role", roleID: uuid.NewString(), body: `{"ids":["` + member + `"]}`, wantStatus: http.StatusNotFound},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := &stubRoleService{roles: []db_models.Role{role}}
			w, env := do(t, roleRouter(svc), http.MethodPost, "/v1/roles/"+test.roleID+"/admins", test.body)
			if w.Code != test.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, test.wantStatus, env.Message)
			}
			if test.wantStatus == http.StatusOK && (len(svc.added) != 1 || svc.added[0] != member) {
				t.Errorf("added = %v", svc.added)
			}
		})
	}
}

type stubAdminService struct {
	services.AdminServiceInterface
	admin       *db_models.Admin
	seenID      string
	passwordReq request_models.UpdatePasswordRequest
	err         error
}

func (s *stubAdminService) FindOne(_ context.Context, id string) (*db_models.Admin, error) {
	s.seenID = id
	return s.admin, s.err
}

func (s *stubAdminService) UpdatePassword(_ context.Context, req request_models.UpdatePasswordRequest) (*db_models.Admin, error) {
	s.passwordReq = req
	return s.admin, s.err
}

func TestAdminController_Me(t *testing.T) {
	admin := &db_models.Admin{Username: "boss"}
	admin.ID = uuid.New()
	svc := &stubAdminService{admin: admin}
	ctrl := NewAdminController(svc, Paging{ItemsPerPage: 12})

	r := gin.New()
	me := r.Group("/v1/admins/me", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, admin.ID.String())
	})
	me.GET("", ctrl.Me)
	me.PUT("/password", ctrl.UpdateMyPassword)

	w, env := do(t, r, http.MethodGet, "/v1/admins/me", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.seenID != admin.ID.String() {
		t.Errorf("service looked up %q, want the token holder", svc.seenID)
	}
	if strings.Contains(string(env.Data), "password") {
		t.Error("profile leaks password fields")
	}

	w, _ = do(t, r, http.MethodPut, "/v1/admins/me/password", `{"old_password":"old-password","password":"new-password","password_confirmation":"new-password"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("password status = %d", w.Code)
	}
	if svc.passwordReq.ID != admin.ID.String() || svc.passwordReq.Password != "new-password" {
		t.Errorf("password request = %+v", svc.passwordReq)
	}

	svc.err = utils.ErrIncorrectOldPassword
	w, _ = do(t, r, http.MethodPut, "/v1/admins/me/password", `{"old_password":"x","password":"new-password","password_confirmation":"new-password"}`)
	if w.Code != http.StatusForbidden {
		t.Errorf("wrong old password status = %d, want 403", w.Code)
	}
}
