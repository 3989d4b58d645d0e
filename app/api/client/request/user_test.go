package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backend/insurance-platform/app/api/client/request"
)

func TestQueryUsersRequest_LoadDefaultValues(t *testing.T) {
	tests := []struct {
		name     string
		in       request.QueryUsersRequest
		expected request.QueryUsersRequest
	}{
		{
			name: "zero request gets all defaults",
			in:   request.QueryUsersRequest{},
			expected: request.QueryUsersRequest{
				Page: 1, Limit: 10, SortBy: "createdAt", SortOrder: "desc",
			},
		},
		{
			name: "negative page normalized",
			in:   request.QueryUsersRequest{Page: -3, Limit: 25},
			expected: request.QueryUsersRequest{
				Page: 1, Limit: 25, SortBy: "createdAt", SortOrder: "desc",
			},
		},
		{
			name: "limit capped at the maximum",
			in:   request.QueryUsersRequest{Page: 2, Limit: 5000},
			expected: request.QueryUsersRequest{
				Page: 2, Limit: request.MaxPageSize, SortBy: "createdAt", SortOrder: "desc",
			},
		},
		{
			name: "explicit values untouched",
			in:   request.QueryUsersRequest{Page: 4, Limit: 50, SortBy: "email", SortOrder: "asc"},
			expected: request.QueryUsersRequest{
				Page: 4, Limit: 50, SortBy: "email", SortOrder: "asc",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.LoadDefaultValues()
			assert.Equal(t, tt.expected, tt.in)
		})
	}
}
