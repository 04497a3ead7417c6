package services

import (
	"context"
	"testing"

	"github.com/camartes/api/internal/models"
)

func TestOtpIssueVerifyConsume(t *testing.T) {
	ctx := context.Background()
	svc := NewOtpService(models.NewMemoryRepo())

	code, err := svc.Issue(ctx, "a@x.com", "+1000")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if len(code) == 0 {
		t.Fatal("Issue returned an empty code")
	}

	ok, err := svc.Verify(ctx, "a@x.com", code)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Error("freshly issued code did not verify")
	}

	// Verify does not consume
	ok, _ = svc.Verify(ctx, "a@x.com", code)
	if !ok {
		t.Error("code gone after a non-consuming verify")
	}

	if err := svc.Consume(ctx, "a@x.com"); err != nil {
		t.Fatalf("Consume failed: %v", err)
	}
	ok, _ = svc.Verify(ctx, "a@x.com", code)
	if ok {
		t.Error("consumed code still verifies")
	}

	// Consume is idempotent
	if err := svc.Consume(ctx, "a@x.com"); err != nil {
		t.Errorf("second Consume errored: %v", err)
	}
}

func TestOtpReissueOverwrites(t *testing.T) {
	ctx := context.Background()
	codes := []string{"111111", "222222"}
	next := 0
	svc := NewOtpServiceWithGenerator(models.NewMemoryRepo(), func() string {
		code := codes[next]
		next++
		return code
	})

	first, _ := svc.Issue(ctx, "a@x.com", "")
	second, _ := svc.Issue(ctx, "a@x.com", "")
	if first == second {
		t.Fatal("generator not advancing")
	}

	if ok, _ := svc.Verify(ctx, "a@x.com", first); ok {
		t.Error("overwritten code still verifies")
	}
	if ok, _ := svc.Verify(ctx, "a@x.com", second); !ok {
		t.Error("latest code does not verify")
	}
}

func TestOtpVerifyUnknownIdentifier(t *testing.T) {
	svc := NewOtpService(models.NewMemoryRepo())
	ok, err := svc.Verify(context.Background(), "nobody@x.com", "123456")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Error("verified a code that was never issued")
	}
}
