package services

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/repositories"
)

var testLogger = zap.NewNop()

// fakeAccountRepo stores copies so that callers never share rows with it.
type fakeAccountRepo[T any, PT accountPointer[T]] struct {
	mu      sync.Mutex
	rows    map[string]T
	creates int
	updates int

	findErr   error
	createErr error
	updateErr error
}

func newFakeAccountRepo[T any, PT accountPointer[T]]() *fakeAccountRepo[T, PT] {
	return &fakeAccountRepo[T, PT]{rows: make(map[string]T)}
}

func accountField(a db_models.Account, field string) (string, bool) {
	b := a.Base()
	switch field {
	case repositories.FieldEmail:
		return b.Email, true
	case repositories.FieldResetToken:
		if b.ResetToken == nil {
			return "", false
		}
		return *b.ResetToken, true
	case repositories.FieldResetPasswordRequestID:
		if b.ResetPasswordRequestID == nil {
			return "", false
		}
		return *b.ResetPasswordRequestID, true
	case repositories.FieldUsername:
		if admin, ok := a.(*db_models.Admin); ok {
			return admin.Username, true
		}
	case repositories.FieldCompanyNumberValue:
		if organizer, ok := a.(*db_models.Organizer); ok {
			return organizer.CompanyNumber.Value, true
		}
	}
	return "", false
}

func (r *fakeAccountRepo[T, PT]) FindByID(_ context.Context, id string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *fakeAccountRepo[T, PT]) FindByField(_ context.Context, field string, value any, withPassword bool) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, row := range r.rows {
		row := row
		got, ok := accountField(PT(&row), field)
		if !ok || got != value {
			continue
		}
		if !withPassword {
			PT(&row).Base().PasswordHash = ""
		}
		return &row, nil
	}
	return nil, nil
}

func (r *fakeAccountRepo[T, PT]) FindPage(_ context.Context, p request_models.PaginationRequest) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]T, 0, len(r.rows))
	for _, row := range r.rows {
		all = append(all, row)
	}
	sort.Slice(all, func(i, j int) bool {
		return PT(&all[i]).Base().CreatedAt < PT(&all[j]).Base().CreatedAt
	})
	return pageOf(all, p), nil
}

func (r *fakeAccountRepo[T, PT]) CountAll(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *fakeAccountRepo[T, PT]) Create(_ context.Context, account *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	base := PT(account).Base()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	base.CreatedAt = int64(len(r.rows) + 1)
	r.rows[base.ID.String()] = *account
	r.creates++
	return nil
}

func (r *fakeAccountRepo[T, PT]) Update(_ context.Context, account *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	r.rows[PT(account).Base().ID.String()] = *account
	r.updates++
	return nil
}

func (r *fakeAccountRepo[T, PT]) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	delete(r.rows, id)
	return ok, nil
}

// stored returns the current row, including the password hash.
func (r *fakeAccountRepo[T, PT]) stored(id uuid.UUID) *T {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id.String()]
	if !ok {
		return nil
	}
	return &row
}

func pageOf[T any](all []T, p request_models.PaginationRequest) []T {
	if p.Descending() {
		slices.Reverse(all)
	}
	if p.Unbounded() {
		return all
	}
	start := min(p.Offset(), len(all))
	end := min(start+p.Size, len(all))
	return all[start:end]
}

func cloneRole(r db_models.Role) db_models.Role {
	r.AdminIDs = slices.Clone(r.AdminIDs)
	r.OrganizerIDs = slices.Clone(r.OrganizerIDs)
	r.UserIDs = slices.Clone(r.UserIDs)
	r.Permissions = slices.Clone(r.Permissions)
	return r
}

type fakeRoleRepo struct {
	mu          sync.Mutex
	rows        map[string]db_models.Role
	permissions map[string][]db_models.Permission
	updates     int
	updateErr   error
	afterFind   func(id string)
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		rows:        make(map[string]db_models.Role),
		permissions: make(map[string][]db_models.Permission),
	}
}

func (r *fakeRoleRepo) seed(name string, admins ...string) db_models.Role {
	role := db_models.Role{Name: name, AdminIDs: pq.StringArray(admins)}
	role.ID = uuid.New()
	r.mu.Lock()
	r.rows[role.ID.String()] = cloneRole(role)
	r.mu.Unlock()
	return role
}

func (r *fakeRoleRepo) get(id string) db_models.Role {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneRole(r.rows[id])
}

func (r *fakeRoleRepo) hasMember(roleID string, kind db_models.AccountKind, accountID string) bool {
	role := r.get(roleID)
	return role.HasMember(kind, accountID)
}

func (r *fakeRoleRepo) FindByID(_ context.Context, id string, populatePermissions bool) (*db_models.Role, error) {
	r.mu.Lock()
	row, ok := r.rows[id]
	role := cloneRole(row)
	if populatePermissions {
		role.Permissions = slices.Clone(r.permissions[id])
	}
	afterFind := r.afterFind
	r.mu.Unlock()

	if !ok {
		return nil, nil
	}
	// Runs after the copy was taken, like a writer racing the caller.
	if afterFind != nil {
		afterFind(id)
	}
	return &role, nil
}

func (r *fakeRoleRepo) FindByIDForUpdate(ctx context.Context, id string) (*db_models.Role, error) {
	return r.FindByID(ctx, id, false)
}

func (r *fakeRoleRepo) FindByName(_ context.Context, name string) (*db_models.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Name == name {
			role := cloneRole(row)
			return &role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) FindPage(_ context.Context, p request_models.PaginationRequest) ([]db_models.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]db_models.Role, 0, len(r.rows))
	for _, row := range r.rows {
		all = append(all, cloneRole(row))
	}
	return pageOf(all, p), nil
}

func (r *fakeRoleRepo) CountAll(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *fakeRoleRepo) Create(_ context.Context, role *db_models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	r.rows[role.ID.String()] = cloneRole(*role)
	return nil
}

func (r *fakeRoleRepo) Update(_ context.Context, role *db_models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	r.rows[role.ID.String()] = cloneRole(*role)
	r.updates++
	return nil
}

func (r *fakeRoleRepo) UpdateName(_ context.Context, id string, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return false, r.updateErr
	}
	row, ok := r.rows[id]
	if !ok {
		return false, nil
	}
	row.Name = name
	r.rows[id] = row
	r.updates++
	return true, nil
}

func (r *fakeRoleRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	delete(r.rows, id)
	return ok, nil
}

func (r *fakeRoleRepo) AppendPermissions(_ context.Context, role *db_models.Role, permissions []db_models.Permission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := role.ID.String()
	for _, p := range permissions {
		if !slices.ContainsFunc(r.permissions[id], func(q db_models.Permission) bool { return q.ID == p.ID }) {
			r.permissions[id] = append(r.permissions[id], p)
		}
	}
	return nil
}

func (r *fakeRoleRepo) RemovePermissions(_ context.Context, role *db_models.Role, permissions []db_models.Permission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := role.ID.String()
	r.permissions[id] = slices.DeleteFunc(r.permissions[id], func(q db_models.Permission) bool {
		return slices.ContainsFunc(permissions, func(p db_models.Permission) bool { return p.ID == q.ID })
	})
	return nil
}

func (r *fakeRoleRepo) ClearPermissions(_ context.Context, role *db_models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.permissions, role.ID.String())
	return nil
}

func (r *fakeRoleRepo) HasPermission(_ context.Context, roleID string, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[roleID]; !ok {
		return false, nil
	}
	return slices.ContainsFunc(r.permissions[roleID], func(p db_models.Permission) bool { return p.Name == name }), nil
}

type fakePermissionRepo struct {
	mu   sync.Mutex
	rows map[string]db_models.Permission
}

func newFakePermissionRepo() *fakePermissionRepo {
	return &fakePermissionRepo{rows: make(map[string]db_models.Permission)}
}

func (r *fakePermissionRepo) seed(name string) db_models.Permission {
	p := db_models.Permission{Name: name}
	p.ID = uuid.New()
	r.mu.Lock()
	r.rows[p.ID.String()] = p
	r.mu.Unlock()
	return p
}

func (r *fakePermissionRepo) FindByID(_ context.Context, id string) (*db_models.Permission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakePermissionRepo) FindByIDs(_ context.Context, ids []string) ([]db_models.Permission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Permission
	for _, id := range uniqueStrings(ids) {
		if p, ok := r.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePermissionRepo) FindByName(_ context.Context, name string) (*db_models.Permission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePermissionRepo) FindPage(_ context.Context, p request_models.PaginationRequest) ([]db_models.Permission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]db_models.Permission, 0, len(r.rows))
	for _, row := range r.rows {
		all = append(all, row)
	}
	return pageOf(all, p), nil
}

func (r *fakePermissionRepo) CountAll(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *fakePermissionRepo) Create(_ context.Context, p *db_models.Permission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.rows[p.ID.String()] = *p
	return nil
}

func (r *fakePermissionRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	delete(r.rows, id)
	return ok, nil
}

// fakeEntityRepo backs the event, event type and coupon services.
type fakeEntityRepo[T any] struct {
	mu     sync.Mutex
	rows   map[string]T
	idOf   func(*T) *uuid.UUID
	nameOf func(*T) string
}

func newFakeEntityRepo[T any](idOf func(*T) *uuid.UUID, nameOf func(*T) string) *fakeEntityRepo[T] {
	return &fakeEntityRepo[T]{rows: make(map[string]T), idOf: idOf, nameOf: nameOf}
}

func (r *fakeEntityRepo[T]) FindByID(_ context.Context, id string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *fakeEntityRepo[T]) FindByName(_ context.Context, name string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		row := row
		if r.nameOf != nil && r.nameOf(&row) == name {
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeEntityRepo[T]) FindPage(_ context.Context, p request_models.PaginationRequest) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]T, 0, len(r.rows))
	for _, row := range r.rows {
		all = append(all, row)
	}
	return pageOf(all, p), nil
}

func (r *fakeEntityRepo[T]) CountAll(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *fakeEntityRepo[T]) Create(_ context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.idOf(entity)
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	r.rows[id.String()] = *entity
	return nil
}

func (r *fakeEntityRepo[T]) Update(_ context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[r.idOf(entity).String()] = *entity
	return nil
}

func (r *fakeEntityRepo[T]) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	delete(r.rows, id)
	return ok, nil
}

type fakeTx struct {
	calls int
}

func (f *fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type sentMail struct {
	to, token string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendMailToResetPassword(_ context.Context, to, token string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, token: token})
	return nil
}

// fixture wires every service over in-memory repositories.
type fixture struct {
	roleRepo       *fakeRoleRepo
	permissionRepo *fakePermissionRepo
	adminRepo      *fakeAccountRepo[db_models.Admin, *db_models.Admin]
	organizerRepo  *fakeAccountRepo[db_models.Organizer, *db_models.Organizer]
	userRepo       *fakeAccountRepo[db_models.User, *db_models.User]
	tx             *fakeTx
	mailer         *fakeMailer

	roles      RoleServiceInterface
	admins     *AdminService
	organizers *OrganizerService
	users      *UserService

	defaultRole db_models.Role
}

func newFixture() *fixture {
	f := &fixture{
		roleRepo:       newFakeRoleRepo(),
		permissionRepo: newFakePermissionRepo(),
		adminRepo:      newFakeAccountRepo[db_models.Admin](),
		organizerRepo:  newFakeAccountRepo[db_models.Organizer](),
		userRepo:       newFakeAccountRepo[db_models.User](),
		tx:             &fakeTx{},
		mailer:         &fakeMailer{},
	}
	f.defaultRole = f.roleRepo.seed("default")

	cfg := AccountConfig{
		DefaultRoleID:   f.defaultRole.ID.String(),
		ResetTokenTTL:   time.Hour,
		ResetTokenBytes: 32,
	}
	f.roles = NewRoleService(f.roleRepo, f.permissionRepo, f.tx, testLogger)
	f.admins = NewAdminService(f.adminRepo, f.roles, f.tx, cfg, testLogger).(*AdminService)
	f.organizers = NewOrganizerService(f.organizerRepo, f.roles, f.tx, cfg, testLogger).(*OrganizerService)
	f.users = NewUserService(f.userRepo, f.roles, f.tx, cfg, testLogger).(*UserService)
	return f
}

func (f *fixture) setClock(now func() time.Time) {
	f.admins.now = now
	f.organizers.now = now
	f.users.now = now
}
