package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type bindTarget struct {
	Description string `json:"description"`
	Count       int    `json:"count"`
}

func TestBindNestedOrFlat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		key         string
		body        string
		expected    bindTarget
		expectError bool
	}{
		{
			name:     "nested body",
			key:      "contract",
			body:     `{"contract": {"description": "honorários", "count": 12}}`,
			expected: bindTarget{Description: "honorários", Count: 12},
		},
		{
			name:     "flat body",
			key:      "contract",
			body:     `{"description": "honorários", "count": 6}`,
			expected: bindTarget{Description: "honorários", Count: 6},
		},
		{
			name:     "missing key falls back to flat",
			key:      "contract",
			body:     `{"entry": "x", "description": "custas", "count": 1}`,
			expected: bindTarget{Description: "custas", Count: 1},
		},
		{
			name:        "wrong field type",
			key:         "contract",
			body:        `{"description": "x", "count": "doze"}`,
			expectError: true,
		},
		{
			name:        "nested key with non-object value",
			key:         "contract",
			body:        `{"contract": "oops"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var result bindTarget
			err := BindNestedOrFlat(c, tt.key, &result)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
