package steps

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cucumber/godog"
)

// registerIngestionSteps registers steps driving the ingestion service mock.
func registerIngestionSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the ingestion service responds to "([^"]*)" with status (\d+) and body:$`, theIngestionServiceRespondsToWithStatusAndBody)
	ctx.Step(`^the ingestion service should have received (\d+) requests? to "([^"]*)"$`, theIngestionServiceShouldHaveReceivedRequestsTo)
	ctx.Step(`^the last request to "([^"]*)" should have field "([^"]*)" set to "([^"]*)"$`, theLastRequestToShouldHaveFieldSetTo)
	ctx.Step(`^the last request to "([^"]*)" should carry my user id$`, theLastRequestToShouldCarryMyUserID)
	ctx.Step(`^the uploaded file should be named "([^"]*)"$`, theUploadedFileShouldBeNamed)
}

func theIngestionServiceRespondsToWithStatusAndBody(path string, status int, body *godog.DocString) error {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(body.Content), &parsed); err != nil {
		return fmt.Errorf("invalid response body: %w", err)
	}
	testIngestion.SetResponse(path, status, parsed)
	return nil
}

func theIngestionServiceShouldHaveReceivedRequestsTo(expected int, path string) error {
	if got := len(testIngestion.Requests(path)); got != expected {
		return fmt.Errorf("expected %d requests to %s, got %d", expected, path, got)
	}
	return nil
}

func theLastRequestToShouldHaveFieldSetTo(path, field, expected string) error {
	requests := testIngestion.Requests(path)
	if len(requests) == 0 {
		return fmt.Errorf("no requests received on %s", path)
	}

	last := requests[len(requests)-1]
	actual, ok := last.Fields[field]
	if !ok {
		return fmt.Errorf("field '%s' not sent to %s; got %v", field, path, last.Fields)
	}
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theLastRequestToShouldCarryMyUserID(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return theLastRequestToShouldHaveFieldSetTo(path, "user_id", tc.userID.String())
}

func theUploadedFileShouldBeNamed(expected string) error {
	requests := testIngestion.Requests("/upload")
	if len(requests) == 0 {
		return fmt.Errorf("no statement was uploaded")
	}
	if actual := requests[len(requests)-1].FileName; actual != expected {
		return fmt.Errorf("expected file '%s', got '%s'", expected, actual)
	}
	return nil
}
