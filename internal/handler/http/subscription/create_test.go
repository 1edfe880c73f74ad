package subscription_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/handler/http/subscription"
	subUC "gamepulse/internal/usecase/subscription"
)

type stubRepo struct {
	byEmail map[string]*entity.Subscription
	nextID  int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{byEmail: make(map[string]*entity.Subscription), nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, sub *entity.Subscription) error {
	if existing, ok := s.byEmail[sub.Email]; ok {
		*sub = *existing
		return nil
	}
	sub.ID = s.nextID
	s.nextID++
	sub.SubscribedAt = time.Now()
	stored := *sub
	s.byEmail[sub.Email] = &stored
	return nil
}

func (s *stubRepo) GetByEmail(_ context.Context, email string) (*entity.Subscription, error) {
	if sub, ok := s.byEmail[email]; ok {
		copied := *sub
		return &copied, nil
	}
	return nil, nil
}

func newMux(repo *stubRepo) *http.ServeMux {
	mux := http.NewServeMux()
	subscription.Register(mux, subUC.Service{Repo: repo})
	return mux
}

func post(mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateHandler_NewSignupIs201(t *testing.T) {
	mux := newMux(newStubRepo())

	rec := post(mux, `{"email":"fan@example.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var got subscription.DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Email != "fan@example.com" || got.ID == 0 {
		t.Fatalf("unexpected body: %+v", got)
	}
	if !got.AcceptedPolicy {
		t.Fatal("acceptedPolicy should default to true")
	}
}

func TestCreateHandler_DuplicateIs201WithSameID(t *testing.T) {
	mux := newMux(newStubRepo())

	first := post(mux, `{"email":"fan@example.com"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first status = %d, want 201", first.Code)
	}
	var firstDTO subscription.DTO
	if err := json.Unmarshal(first.Body.Bytes(), &firstDTO); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	second := post(mux, `{"email":"fan@example.com","acceptedPolicy":true}`)
	if second.Code != http.StatusCreated {
		t.Fatalf("second status = %d, want 201", second.Code)
	}
	var secondDTO subscription.DTO
	if err := json.Unmarshal(second.Body.Bytes(), &secondDTO); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if secondDTO.ID != firstDTO.ID {
		t.Fatalf("duplicate sign-up got id %d, want %d", secondDTO.ID, firstDTO.ID)
	}
}

func TestCreateHandler_DeclinedPolicyIs400(t *testing.T) {
	repo := newStubRepo()
	mux := newMux(repo)

	rec := post(mux, `{"email":"a@x.com","acceptedPolicy":false}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if repo.byEmail["a@x.com"] != nil {
		t.Fatal("declined sign-up reached the store")
	}
}

func TestCreateHandler_InvalidEmailIs400(t *testing.T) {
	mux := newMux(newStubRepo())

	for _, body := range []string{
		`{"email":""}`,
		`{"email":"not-an-email"}`,
		`{`,
	} {
		rec := post(mux, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}

		var errBody map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
			t.Errorf("body %q: error response is not JSON: %v", body, err)
		}
	}
}
