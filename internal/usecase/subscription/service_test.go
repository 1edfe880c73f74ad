package subscription_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamepulse/internal/domain/entity"
	subUC "gamepulse/internal/usecase/subscription"
)

// Minimal in-memory SubscriptionRepository stub.
type stubRepo struct {
	byEmail map[string]*entity.Subscription
	nextID  int64
	err     error
}

func newStub() *stubRepo {
	return &stubRepo{byEmail: map[string]*entity.Subscription{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, sub *entity.Subscription) error {
	if s.err != nil {
		return s.err
	}
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
	if s.err != nil {
		return nil, s.err
	}
	return s.byEmail[email], nil
}

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) SendWelcome(_ context.Context, email string) error {
	m.sent = append(m.sent, email)
	return m.err
}

func TestService_Subscribe(t *testing.T) {
	mailer := &recordingMailer{}
	svc := &subUC.Service{Repo: newStub(), Mailer: mailer}

	sub, err := svc.Subscribe(context.Background(), subUC.SubscribeInput{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Subscribe err=%v", err)
	}
	if sub.ID == 0 || sub.SubscribedAt.IsZero() {
		t.Fatalf("Subscribe left record unfilled: %+v", sub)
	}
	if !sub.AcceptedPolicy {
		t.Fatal("acceptedPolicy did not default to true")
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "a@x.com" {
		t.Fatalf("welcome mail = %v, want one to a@x.com", mailer.sent)
	}
}

func TestService_SubscribeDuplicateEmail(t *testing.T) {
	mailer := &recordingMailer{}
	svc := &subUC.Service{Repo: newStub(), Mailer: mailer}

	first, _ := svc.Subscribe(context.Background(), subUC.SubscribeInput{Email: "a@x.com"})
	second, err := svc.Subscribe(context.Background(), subUC.SubscribeInput{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Subscribe (duplicate) err=%v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("duplicate sign-up got id %d, want %d", second.ID, first.ID)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("duplicate sign-up sent %d welcome mails, want 1", len(mailer.sent))
	}
}

func TestService_SubscribeInvalidEmail(t *testing.T) {
	svc := &subUC.Service{Repo: newStub()}

	for _, email := range []string{"", "not-an-email", "a@", "@x.com"} {
		_, err := svc.Subscribe(context.Background(), subUC.SubscribeInput{Email: email})
		var verr *entity.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Subscribe(%q) = %v, want ValidationError", email, err)
		}
	}
}

func TestService_SubscribeDeclinedPolicyIsRejected(t *testing.T) {
	repo := newStub()
	svc := &subUC.Service{Repo: repo}

	declined := false
	_, err := svc.Subscribe(context.Background(), subUC.SubscribeInput{
		Email:          "b@x.com",
		AcceptedPolicy: &declined,
	})
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Subscribe with declined policy = %v, want ValidationError", err)
	}
	if repo.byEmail["b@x.com"] != nil {
		t.Fatal("declined sign-up reached the store")
	}

	accepted := true
	sub, err := svc.Subscribe(context.Background(), subUC.SubscribeInput{
		Email:          "b@x.com",
		AcceptedPolicy: &accepted,
	})
	if err != nil {
		t.Fatalf("Subscribe err=%v", err)
	}
	if !sub.AcceptedPolicy {
		t.Fatal("accepted policy was not stored")
	}
}

func TestService_SubscribeMailFailureIsNotFatal(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	svc := &subUC.Service{Repo: newStub(), Mailer: mailer}

	if _, err := svc.Subscribe(context.Background(), subUC.SubscribeInput{Email: "a@x.com"}); err != nil {
		t.Fatalf("Subscribe failed on mail error: %v", err)
	}
}
