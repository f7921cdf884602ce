package rgis

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"rgis-prio/internal/session"
)

func testClient(t *testing.T, lenient bool) *Client {
	t.Helper()
	store := session.New(filepath.Join(t.TempDir(), "session.json"))
	return New("http://rgis.test", nil, store, lenient, testLogger())
}

// Тест: голый массив оборачивается в конверт одной страницы
func TestNormalizeList_BareArray(t *testing.T) {
	c := testClient(t, false)

	page, err := c.normalizeList(json.RawMessage(`[{"id":1},{"id":2}]`))
	assert.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 2, page.TotalItems)
}

// Тест: laravel-пагинация переносится как есть
func TestNormalizeList_Paginated(t *testing.T) {
	c := testClient(t, false)

	page, err := c.normalizeList(json.RawMessage(
		`{"data":[{"id":1},{"id":2},{"id":3}],"current_page":2,"last_page":5,"total":42}`,
	))
	assert.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 5, page.TotalPages)
	assert.Equal(t, 42, page.TotalItems)
}

// Тест: отсутствующие поля пагинации получают дефолты
func TestNormalizeList_PaginatedDefaults(t *testing.T) {
	c := testClient(t, false)

	page, err := c.normalizeList(json.RawMessage(`{"data":[{"id":1}]}`))
	assert.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.TotalItems)
}

// Тест: неизвестная форма при строгой политике — ошибка
func TestNormalizeList_MalformedStrict(t *testing.T) {
	c := testClient(t, false)

	_, err := c.normalizeList(json.RawMessage(`{"message":"что-то не то"}`))
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

// Тест: неизвестная форма при lenient-политике — пустая страница без ошибки
func TestNormalizeList_MalformedLenient(t *testing.T) {
	c := testClient(t, true)

	page, err := c.normalizeList(json.RawMessage(`{"message":"что-то не то"}`))
	assert.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
}

// Тест: decodeOne понимает и голую сущность, и завёрнутую в {data}
func TestDecodeOne_Wrapped(t *testing.T) {
	hs, err := decodeOne(json.RawMessage(`{"data":{"id":9,"name":"Котельная №3"}}`), adaptHeatSource)
	assert.NoError(t, err)
	assert.Equal(t, int64(9), hs.ID)
	assert.Equal(t, "Котельная №3", hs.SourceName)

	hs, err = decodeOne(json.RawMessage(`{"id":9,"name":"Котельная №3"}`), adaptHeatSource)
	assert.NoError(t, err)
	assert.Equal(t, int64(9), hs.ID)
}
