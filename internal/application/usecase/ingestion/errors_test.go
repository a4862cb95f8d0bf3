package ingestion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerror "github.com/finflow/backend/internal/domain/error"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectRetry  bool
	}{
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: ErrCodeTimeout,
			expectRetry:  true,
		},
		{
			name:         "wrapped context canceled",
			err:          fmt.Errorf("upload: %w", context.Canceled),
			expectedCode: ErrCodeTimeout,
			expectRetry:  true,
		},
		{
			name:         "service rejected the file",
			err:          fmt.Errorf("%w: no transactions found", domainerror.ErrIngestionRejected),
			expectedCode: ErrCodeRejected,
			expectRetry:  false,
		},
		{
			name:         "service unavailable sentinel",
			err:          fmt.Errorf("%w: status 502", domainerror.ErrIngestionUnavailable),
			expectedCode: ErrCodeServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "connection refused",
			err:          errors.New("dial tcp 127.0.0.1:8000: connect: connection refused"),
			expectedCode: ErrCodeServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "503 status",
			err:          errors.New("HTTP 503"),
			expectedCode: ErrCodeServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "anything else",
			err:          errors.New("boom"),
			expectedCode: ErrCodeUnknown,
			expectRetry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyError(tt.err)

			assert.Equal(t, tt.expectedCode, result.Code)
			assert.Equal(t, tt.expectRetry, result.Retryable)
			assert.Equal(t, errorMessages[tt.expectedCode], result.Message)
			assert.False(t, result.Timestamp.IsZero(), "timestamp is set")
		})
	}
}
