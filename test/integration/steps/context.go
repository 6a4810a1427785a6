// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/pantry-bot/backend/config"
	"github.com/pantry-bot/backend/internal/infra/dependency"
	"github.com/pantry-bot/backend/internal/integration/persistence"
	"github.com/pantry-bot/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Remembered IDs keyed by a scenario-chosen alias
	rememberedIDs map[string]string

	// Config
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		if err := mock.ClearDb(db); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := persistence.SeedDefaultCategories(context.Background(), db); err != nil {
			return ctx, fmt.Errorf("failed to seed categories: %w", err)
		}

		redisClient := mock.NewRedis()
		if err := redisClient.FlushAll(context.Background()).Err(); err != nil {
			return ctx, fmt.Errorf("failed to flush redis: %w", err)
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			rememberedIDs:  make(map[string]string),
			cfg:            config.Load(),
		}

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		injector := dependency.NewInjector(tc.cfg, db, redisClient, func() bool { return true }, logger)
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerChatSteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am user "([^"]*)"$`, iAmUser)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, iRememberTheResponseFieldAs)
}

// registerChatSteps registers conversation event steps.
func registerChatSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^user "([^"]*)" sends the chat text "([^"]*)"$`, userSendsTheChatText)
	ctx.Step(`^user "([^"]*)" sends the chat token "([^"]*)"$`, userSendsTheChatToken)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iAmUser(ctx context.Context, userID string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.requestHeaders["X-User-ID"] = userID
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	return doRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	return doRequest(ctx, method, endpoint, []byte(body.Content))
}

func userSendsTheChatText(ctx context.Context, userID, text string) error {
	payload, err := json.Marshal(map[string]string{"user_id": userID, "text": text})
	if err != nil {
		return err
	}
	return doRequest(ctx, http.MethodPost, "/api/v1/chat/events", payload)
}

func userSendsTheChatToken(ctx context.Context, userID, token string) error {
	payload, err := json.Marshal(map[string]string{"user_id": userID, "token": token})
	if err != nil {
		return err
	}
	return doRequest(ctx, http.MethodPost, "/api/v1/chat/events", payload)
}

// doRequest sends one request, substituting remembered IDs in the path
// and body (placeholders look like {alias}).
func doRequest(ctx context.Context, method, endpoint string, body []byte) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	endpoint = tc.substitute(endpoint)
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader([]byte(tc.substitute(string(body))))
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// substitute replaces {alias} placeholders with remembered IDs.
func (tc *TestContext) substitute(s string) string {
	for alias, id := range tc.rememberedIDs {
		s = strings.ReplaceAll(s, "{"+alias+"}", id)
	}
	return s
}

func iRememberTheResponseFieldAs(ctx context.Context, field, alias string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}
	tc.rememberedIDs[alias] = fmt.Sprintf("%v", value)
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var decoded any
	if err := json.Unmarshal(tc.responseBody, &decoded); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, substring string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), tc.substitute(substring)) {
		return fmt.Errorf("expected response to contain %q, got: %s", substring, tc.responseBody)
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, substring string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if strings.Contains(string(tc.responseBody), tc.substitute(substring)) {
		return fmt.Errorf("expected response to not contain %q, got: %s", substring, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}
	got := fmt.Sprintf("%v", value)
	if got != tc.substitute(expected) {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expected, got)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if _, err := lookupField(tc.responseBody, field); err != nil {
		return err
	}
	return nil
}

// lookupField navigates a dotted path through the decoded JSON body.
// Numeric segments index into arrays ("recipes.0.name").
func lookupField(body []byte, path string) (any, error) {
	var current any
	if err := json.Unmarshal(body, &current); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, body)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at segment %q", path, segment)
		}
	}
	return current, nil
}
