package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/duobudget/backend/internal/domain/entity"
)

// registerDomainSteps registers steps that set up users, couples and
// ledger data for the scenarios.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUserWithPassword)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAsWithPassword)
	ctx.Step(`^"([^"]*)" and "([^"]*)" are partners$`, arePartners)
	ctx.Step(`^the couple of "([^"]*)" has a monthly shared charge "([^"]*)" of (-?\d+(?:\.\d+)?) for the last (\d+) months$`, coupleHasMonthlyCharge)
	ctx.Step(`^I void the last recorded settlement$`, iVoidTheLastRecordedSettlement)
	ctx.Step(`^the partner should be notified by email$`, thePartnerShouldBeNotified)
	ctx.Step(`^no notification email should be sent$`, noNotificationEmailShouldBeSent)
}

func aRegisteredUserWithPassword(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	name := strings.Split(email, "@")[0]
	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"name":     name,
		"password": password,
	})

	resp, err := http.Post(tc.server.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(payload))
	if err != nil {
		return ctx, fmt.Errorf("failed to register %s: %w", email, err)
	}
	defer resp.Body.Close()

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ctx, fmt.Errorf("failed to decode register response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration of %s failed with status %d", email, resp.StatusCode)
	}

	tc.tokens[email] = body.AccessToken
	return SetTestContext(ctx, tc), nil
}

func iAmLoggedInAsWithPassword(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	resp, err := http.Post(tc.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return ctx, fmt.Errorf("failed to log in as %s: %w", email, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("login as %s failed with status %d", email, resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ctx, fmt.Errorf("failed to decode login response: %w", err)
	}

	tc.accessToken = body.AccessToken
	tc.tokens[email] = body.AccessToken
	return SetTestContext(ctx, tc), nil
}

// arePartners links two already-registered users through the couple
// endpoint, acting as the first user.
func arePartners(ctx context.Context, email1, email2 string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	token, ok := tc.tokens[email1]
	if !ok {
		return ctx, fmt.Errorf("user %s is not registered in this scenario", email1)
	}

	payload, _ := json.Marshal(map[string]string{"partner_email": email2})
	req, err := http.NewRequest(http.MethodPost, tc.server.URL+"/api/v1/couple", bytes.NewReader(payload))
	if err != nil {
		return ctx, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to create couple: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("couple creation failed with status %d", resp.StatusCode)
	}
	return SetTestContext(ctx, tc), nil
}

// coupleHasMonthlyCharge seeds one shared transaction per month with the
// same label and amount, most recent in the current month, so the
// recurrence detector sees an active monthly charge.
func coupleHasMonthlyCharge(ctx context.Context, email, label, amountStr string, months int) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return ctx, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}

	user, err := tc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return ctx, fmt.Errorf("user %s not found: %w", email, err)
	}
	couple, err := tc.coupleRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return ctx, fmt.Errorf("no couple for %s: %w", email, err)
	}

	// Clamp to day 28 so stepping back over short months keeps the
	// same day-of-month.
	now := time.Now().UTC()
	day := now.Day()
	if day > 28 {
		day = 28
	}
	base := time.Date(now.Year(), now.Month(), day, 12, 0, 0, 0, time.UTC)

	for i := months - 1; i >= 0; i-- {
		tx := entity.NewTransaction(
			couple.ID,
			base.AddDate(0, -i, 0),
			label,
			amount,
			entity.TransactionTypeShared,
			"",
			nil,
			user.ID,
			false,
		)
		if err := tc.transactionRepo.Create(ctx, tx); err != nil {
			return ctx, fmt.Errorf("failed to seed transaction: %w", err)
		}
	}
	return SetTestContext(ctx, tc), nil
}

func iVoidTheLastRecordedSettlement(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.lastSettlementID == "" {
		return ctx, fmt.Errorf("no settlement has been recorded in this scenario")
	}
	if err := tc.doRequest(http.MethodDelete, "/api/v1/settlements/"+tc.lastSettlementID, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func thePartnerShouldBeNotified(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(tc.emailSender.SentEmails) == 0 {
		return fmt.Errorf("expected a settlement notification email, none was sent")
	}
	return nil
}

func noNotificationEmailShouldBeSent(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if n := len(tc.emailSender.SentEmails); n > 0 {
		return fmt.Errorf("expected no notification emails, %d were sent", n)
	}
	return nil
}
