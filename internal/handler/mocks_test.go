package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/service"
	"github.com/irahulsinghrajput/BrandMark/pkg/auth"
)

// ---------------------------------------------------------------------------
// Service mocks
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc       func(ctx context.Context, in service.ContactInput) (*model.Contact, error)
	listFunc         func(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int64, error)
	updateStatusFunc func(ctx context.Context, id, status string) (*model.Contact, error)
}

func (m *mockContactService) Submit(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return &model.Contact{ID: "c1"}, nil
}

func (m *mockContactService) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockContactService) UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return &model.Contact{ID: id, Status: status}, nil
}

type mockCareerService struct {
	applyFunc        func(ctx context.Context, in service.CareerInput) (*model.CareerApplication, error)
	listFunc         func(ctx context.Context, opts model.CareerListOptions) ([]*model.CareerApplication, int64, error)
	updateStatusFunc func(ctx context.Context, id, status string) (*model.CareerApplication, error)
}

func (m *mockCareerService) Apply(ctx context.Context, in service.CareerInput) (*model.CareerApplication, error) {
	if m.applyFunc != nil {
		return m.applyFunc(ctx, in)
	}
	return &model.CareerApplication{ID: "a1"}, nil
}

func (m *mockCareerService) List(ctx context.Context, opts model.CareerListOptions) ([]*model.CareerApplication, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockCareerService) UpdateStatus(ctx context.Context, id, status string) (*model.CareerApplication, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return &model.CareerApplication{ID: id, Status: status}, nil
}

type mockQuoteService struct {
	requestFunc      func(ctx context.Context, in service.QuoteInput) (*service.QuoteResult, error)
	listFunc         func(ctx context.Context, opts model.QuoteListOptions) ([]*model.Quote, int64, error)
	updateStatusFunc func(ctx context.Context, id, status string) (*model.Quote, error)
}

func (m *mockQuoteService) Request(ctx context.Context, in service.QuoteInput) (*service.QuoteResult, error) {
	return m.requestFunc(ctx, in)
}

func (m *mockQuoteService) List(ctx context.Context, opts model.QuoteListOptions) ([]*model.Quote, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockQuoteService) UpdateStatus(ctx context.Context, id, status string) (*model.Quote, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return &model.Quote{ID: id, Status: status}, nil
}

type mockNewsletterService struct {
	subscribeFunc   func(ctx context.Context, email string) (*model.Subscriber, error)
	unsubscribeFunc func(ctx context.Context, email string) (*model.Subscriber, error)
	listFunc        func(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error)
}

func (m *mockNewsletterService) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	return m.subscribeFunc(ctx, email)
}

func (m *mockNewsletterService) Unsubscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	return m.unsubscribeFunc(ctx, email)
}

func (m *mockNewsletterService) List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, 0, nil
}

type mockBlogService struct {
	listPublishedFunc func(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error)
	viewFunc          func(ctx context.Context, slug string) (*model.BlogPost, error)
	listAllFunc       func(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error)
	createFunc        func(ctx context.Context, in service.BlogInput) (*model.BlogPost, error)
	updateFunc        func(ctx context.Context, id string, in service.BlogUpdateInput) (*model.BlogPost, error)
	deleteFunc        func(ctx context.Context, id string) error
}

func (m *mockBlogService) ListPublished(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error) {
	if m.listPublishedFunc != nil {
		return m.listPublishedFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockBlogService) View(ctx context.Context, slug string) (*model.BlogPost, error) {
	return m.viewFunc(ctx, slug)
}

func (m *mockBlogService) ListAll(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockBlogService) Create(ctx context.Context, in service.BlogInput) (*model.BlogPost, error) {
	return m.createFunc(ctx, in)
}

func (m *mockBlogService) Update(ctx context.Context, id string, in service.BlogUpdateInput) (*model.BlogPost, error) {
	return m.updateFunc(ctx, id, in)
}

func (m *mockBlogService) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

type mockAdminService struct {
	registerFunc       func(ctx context.Context, in service.RegisterInput, caller *auth.Principal) (*model.Admin, error)
	loginFunc          func(ctx context.Context, email, password string) (string, *model.Admin, error)
	changePasswordFunc func(ctx context.Context, id, current, next string) error
	dashboardFunc      func(ctx context.Context) (*model.Dashboard, error)
	listFunc           func(ctx context.Context) ([]*model.Admin, error)
	setActiveFunc      func(ctx context.Context, caller *auth.Principal, id string, active bool) (*model.Admin, error)
	loadPrincipalFunc  func(ctx context.Context, id string) (*auth.Principal, error)
}

func (m *mockAdminService) Register(ctx context.Context, in service.RegisterInput, caller *auth.Principal) (*model.Admin, error) {
	return m.registerFunc(ctx, in, caller)
}

func (m *mockAdminService) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	return m.loginFunc(ctx, email, password)
}

func (m *mockAdminService) ChangePassword(ctx context.Context, id, current, next string) error {
	return m.changePasswordFunc(ctx, id, current, next)
}

func (m *mockAdminService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if m.dashboardFunc != nil {
		return m.dashboardFunc(ctx)
	}
	return &model.Dashboard{}, nil
}

func (m *mockAdminService) List(ctx context.Context) ([]*model.Admin, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminService) SetActive(ctx context.Context, caller *auth.Principal, id string, active bool) (*model.Admin, error) {
	return m.setActiveFunc(ctx, caller, id, active)
}

func (m *mockAdminService) LoadPrincipal(ctx context.Context, id string) (*auth.Principal, error) {
	if m.loadPrincipalFunc != nil {
		return m.loadPrincipalFunc(ctx, id)
	}
	return nil, auth.ErrPrincipalNotFound
}

type mockChatService struct {
	replyFunc func(ctx context.Context, message string) (string, error)
}

func (m *mockChatService) Reply(ctx context.Context, message string) (string, error) {
	return m.replyFunc(ctx, message)
}

type mockDB struct {
	pingErr error
}

func (m *mockDB) Ping(ctx context.Context) error { return m.pingErr }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const testSecret = "handler-test-secret-handler-test-secret"

var testTokens = auth.NewTokenService(testSecret, time.Hour)

// withPrincipal returns a request context carrying p.
func withPrincipal(ctx context.Context, p *auth.Principal) context.Context {
	return auth.WithPrincipal(ctx, p)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return body
}
