package parsers

import (
	"net/http/httptest"
	"testing"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryCtx(t *testing.T, query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/endpoint?"+query, nil)
	return c
}

func TestParseHistoryFilters(t *testing.T) {
	// Defaults
	fromItem, limit, order, err := ParseHistoryFilters(newQueryCtx(t, ""))
	require.NoError(t, err)
	assert.Nil(t, fromItem)
	assert.Equal(t, uint(20), *limit)
	assert.Equal(t, "ASC", order)

	// All params set
	fromItem, limit, order, err = ParseHistoryFilters(
		newQueryCtx(t, "fromItem=7&limit=100&order=DESC"))
	require.NoError(t, err)
	assert.Equal(t, uint(7), *fromItem)
	assert.Equal(t, uint(100), *limit)
	assert.Equal(t, "DESC", order)

	// Invalid order
	_, _, _, err = ParseHistoryFilters(newQueryCtx(t, "order=SIDEWAYS"))
	assert.Error(t, err)

	// Limit out of range
	_, _, _, err = ParseHistoryFilters(newQueryCtx(t, "limit=0"))
	assert.Error(t, err)
	_, _, _, err = ParseHistoryFilters(newQueryCtx(t, "limit=2050"))
	assert.Error(t, err)
}

func TestParseAccountFilters(t *testing.T) {
	addr, fromItem, _, _, err := ParseAccountFilters(newQueryCtx(t,
		"fromEthereumAddress=0x84d8B79E84fe87B14ad61A554e740f6736bF4c20&fromItem=2"))
	require.NoError(t, err)
	require.NotNil(t, addr)
	assert.Equal(t,
		ethCommon.HexToAddress("0x84d8B79E84fe87B14ad61A554e740f6736bF4c20"), *addr)
	assert.Equal(t, uint(2), *fromItem)

	// No address
	addr, _, _, _, err = ParseAccountFilters(newQueryCtx(t, ""))
	require.NoError(t, err)
	assert.Nil(t, addr)

	// Malformed address
	_, _, _, _, err = ParseAccountFilters(newQueryCtx(t, "fromEthereumAddress=notanaddress"))
	assert.Error(t, err)
}
