package utils

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"google.golang.org/genai"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

const retryInfoType = "type.googleapis.com/google.rpc.RetryInfo"

type RetryConfig struct {
	MaxRetries int
	MaxJitter  time.Duration
	Delay      time.Duration
	MaxDelay   time.Duration // zero means no limit

	// Reports whether an error is worth another attempt,
	// nil means every error is
	Retryable func(error) bool
}

// Extract retry delay from error on Google API.
// Handles both gRPC statuses and Gemini REST errors.
func extractRetryDelay(err error) (time.Duration, bool) {

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiRetryDelay(apiErr)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiRetryDelay(*apiErrPtr)
	}

	st, ok := status.FromError(err)
	if !ok {
		return 0, false
	}

	// The Details() method returns the structured error details
	// These are protobuf messages with specific types
	for _, detail := range st.Details() {
		if retryInfo, ok := detail.(*errdetails.RetryInfo); ok {
			if retryInfo.RetryDelay != nil {
				return retryInfo.RetryDelay.AsDuration(), true
			}
		}
	}

	return 0, false
}

// apiRetryDelay looks for RetryInfo in the details of a REST error
func apiRetryDelay(apiErr genai.APIError) (time.Duration, bool) {
	for _, detail := range apiErr.Details {
		if detail["@type"] != retryInfoType {
			continue
		}

		raw, ok := detail["retryDelay"].(string)
		if !ok {
			continue
		}

		delay, err := time.ParseDuration(raw)
		if err != nil {
			continue
		}

		return delay, true
	}

	return 0, false
}

// Retry a function
func Retry[T any](
	ctx context.Context,
	rc *RetryConfig,
	callable func() (T, error),
) (T, error) {

	var (
		zero      T
		lastError error
	)

	// Avoid zero or negative maxRetries
	maxRetries := max(rc.MaxRetries, 1)

	for i := range maxRetries {

		data, err := callable()
		if err == nil {
			return data, err
		}

		lastError = err
		if rc.Retryable != nil && !rc.Retryable(err) {
			return zero, err
		}

		// If this is the last iteration break the loop
		if i+1 == maxRetries {
			break
		}

		// Calculate the backoff (2^i) + jitter
		jitter := time.Duration(rand.Float64() * float64(rc.MaxJitter)) // #nosec G404
		sleepTime := rc.Delay*time.Duration(math.Pow(2, float64(i))) + jitter

		// Try to extract a delay value from the error
		if retryDelay, ok := extractRetryDelay(lastError); ok {
			if rc.MaxDelay > 0 && retryDelay > rc.MaxDelay {
				return zero, fmt.Errorf(
					"API requested excessive wait: %v; %w",
					retryDelay, lastError,
				)
			}
			sleepTime = retryDelay
		}

		// Wait for either the sleep time or context to end
		select {
		case <-ctx.Done():
			return zero, errors.Join(ctx.Err(), lastError)
		case <-time.After(sleepTime):
		}
	}

	return zero, fmt.Errorf("%d max retries error; %w", maxRetries, lastError)
}
