package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	for _, path := range []string{
		"/api/v1/products",
		"/api/v1/store",
		"/api/v1/orders",
		"/api/v1/admin/login",
		"/api/v1/admin/orders",
		"/api/v1/admin/orders/board",
		"/api/v1/admin/orders/export",
		"/api/v1/admin/orders/{orderId}",
		"/api/v1/admin/orders/{orderId}/status",
		"/api/v1/admin/orders/{orderId}/summary",
		"/api/v1/admin/products/{productId}/price",
		"/api/v1/admin/store/toggle",
		"/api/v1/admin/store/banner",
		"/api/v1/admin/revenue",
		"/api/v1/admin/customers",
		"/api/v1/admin/ws",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	_, err = RequestValidator(doc)
	require.NoError(t, err)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc"))
	assert.Empty(t, bearerToken("Basic abc"))
	assert.Empty(t, bearerToken(""))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, 500, statusFor(assert.AnError))
}
