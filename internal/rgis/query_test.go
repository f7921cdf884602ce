package rgis

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Тест: пустые параметры — пустая строка, без одинокого «?»
func TestListParams_EncodeEmpty(t *testing.T) {
	assert.Equal(t, "", ListParams{}.encode())
}

// Тест: параметры кодируются и экранируются через url.Values
func TestListParams_Encode(t *testing.T) {
	p := ListParams{
		Page:    2,
		PerPage: 50,
		Search:  "котельная №3",
		Filters: url.Values{"hs_type_id": {"7"}},
	}

	encoded := p.encode()
	assert.Equal(t, byte('?'), encoded[0])

	parsed, err := url.ParseQuery(encoded[1:])
	assert.NoError(t, err)
	assert.Equal(t, "2", parsed.Get("page"))
	assert.Equal(t, "50", parsed.Get("per_page"))
	assert.Equal(t, "котельная №3", parsed.Get("search"))
	assert.Equal(t, "7", parsed.Get("hs_type_id"))
}
