package rgis

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rgis-prio/internal/session"
)

// testLogger — логгер для тестов, только ошибки.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// setupMockRGIS поднимает mock-бэкенд и клиент с уже сохранённой сессией.
func setupMockRGIS(t *testing.T, handler http.HandlerFunc) (*Client, *session.Store, string) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sessionPath := filepath.Join(t.TempDir(), "session.json")
	store := session.New(sessionPath)
	if err := store.Save("test-token", nil); err != nil {
		t.Fatalf("не удалось сохранить сессию: %v", err)
	}

	client := New(server.URL, server.Client(), store, false, testLogger())
	return client, store, sessionPath
}

// Тест: без токена запрос в сеть не уходит
func TestClient_NoToken(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	t.Cleanup(server.Close)

	store := session.New(filepath.Join(t.TempDir(), "session.json"))
	client := New(server.URL, server.Client(), store, false, testLogger())

	_, err := client.HeatSources(context.Background(), ListParams{})
	assert.True(t, errors.Is(err, ErrAuthRequired))
	assert.Equal(t, 0, requests)
}

// Тест: запрос уходит с bearer-заголовком и Accept: application/json
func TestClient_BearerHeader(t *testing.T) {
	var gotAuth, gotAccept string
	client, _, _ := setupMockRGIS(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`[]`))
	})

	_, err := client.Organizations(context.Background(), ListParams{})
	assert.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

// Тест: 401 удаляет сессию и возвращает ErrReauthRequired
func TestClient_Unauthorized(t *testing.T) {
	client, store, sessionPath := setupMockRGIS(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Incidents(context.Background(), ListParams{})
	assert.True(t, errors.Is(err, ErrReauthRequired))

	// Файл сессии удалён, следующий запрос падает ещё до сети
	_, statErr := os.Stat(sessionPath)
	assert.True(t, os.IsNotExist(statErr))

	_, err = store.Token()
	assert.True(t, errors.Is(err, session.ErrNoSession))
}

// Тест: ошибки валидации полей агрегируются в одно сообщение
func TestClient_FieldErrors(t *testing.T) {
	client, _, _ := setupMockRGIS(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{
			"message": "Ошибка валидации",
			"errors": {
				"name": ["Поле обязательно"],
				"address": "Слишком длинный адрес"
			}
		}`))
	})

	_, err := client.CreateHeatSource(context.Background(), HeatSourceInput{})

	var reqErr *RequestError
	assert.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnprocessableEntity, reqErr.Status)
	assert.Equal(t, "Ошибка валидации\nСлишком длинный адрес\nПоле обязательно", reqErr.Message)
}

// Тест: не-2xx без структурированного тела — generic-сообщение со статусом
func TestClient_GenericError(t *testing.T) {
	client, _, _ := setupMockRGIS(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	})

	_, err := client.MKDBuildings(context.Background(), ListParams{})

	var reqErr *RequestError
	assert.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Contains(t, reqErr.Error(), "запрос завершился со статусом 500")
}

// Тест: 204 на удаление — успех без тела
func TestClient_DeleteNoContent(t *testing.T) {
	client, _, _ := setupMockRGIS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.DeleteHeatSource(context.Background(), 5)
	assert.NoError(t, err)
}

// Тест: логин сохраняет токен и пользователя в сессию
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		// До логина авторизации нет
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"token":"fresh-token","user":{"id":7,"name":"Оператор"}}`))
	}))
	t.Cleanup(server.Close)

	store := session.New(filepath.Join(t.TempDir(), "session.json"))
	client := New(server.URL, server.Client(), store, false, testLogger())

	result, err := client.Login(context.Background(), "operator", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "fresh-token", result.Token)

	token, err := store.Token()
	assert.NoError(t, err)
	assert.Equal(t, "fresh-token", token)

	user, err := store.User()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Оператор"}`, string(user))
}

// Тест: сквозной сценарий — пагинированный ответ /hs превращается
// в конверт с плоскими вьюмоделями
func TestClient_HeatSourcesEndToEnd(t *testing.T) {
	client, _, _ := setupMockRGIS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hs", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(`{
			"data": [{"id":5, "name":"Boiler A", "owner":{"short_name":"ACME"}}],
			"current_page": 1,
			"last_page": 3,
			"total": 25
		}`))
	})

	list, err := client.HeatSources(context.Background(), ListParams{Page: 1})
	assert.NoError(t, err)

	assert.Equal(t, 1, list.CurrentPage)
	assert.Equal(t, 3, list.TotalPages)
	assert.Equal(t, 25, list.TotalItems)
	assert.Len(t, list.Items, 1)

	hs := list.Items[0]
	assert.Equal(t, int64(5), hs.ID)
	assert.Equal(t, "Boiler A", hs.SourceName)
	assert.Equal(t, "ACME", hs.Owner)
	// Незаполненные поля — всегда «Не указано»
	assert.Equal(t, NotSpecified, hs.Operator)
	assert.Equal(t, NotSpecified, hs.InstalledCapacity)
}

// Тест: multipart-загрузка импорта уходит полем file
func TestClient_ImportHeatSources(t *testing.T) {
	client, _, _ := setupMockRGIS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hs/import/exel", r.URL.Path)

		file, header, err := r.FormFile("file")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "hs.xlsx", header.Filename)

		w.Write([]byte(`{"message":"ok"}`))
	})

	err := client.ImportHeatSources(context.Background(), "hs.xlsx", strings.NewReader("fake-xlsx"))
	assert.NoError(t, err)
}

// Тест: проверка права разбирает {"access": true}
func TestClient_CheckPermission(t *testing.T) {
	client, _, _ := setupMockRGIS(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/permission/admin.panel", r.URL.Path)
		w.Write([]byte(`{"access":true}`))
	})

	allowed, err := client.CheckPermission(context.Background(), "admin.panel")
	assert.NoError(t, err)
	assert.True(t, allowed)
}
