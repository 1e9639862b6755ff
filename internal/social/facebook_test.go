package social

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"plastic-world/internal/model"
	"plastic-world/internal/settings"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, creds settings.SocialCredentials) *settings.Store {
	t.Helper()
	store := settings.NewStore(filepath.Join(t.TempDir(), "creds.json"), zerolog.Nop())
	if creds.Configured() {
		require.NoError(t, store.Save(creds))
	}
	return store
}

func testCreds() settings.SocialCredentials {
	return settings.SocialCredentials{PageID: "123456", AccessToken: "tok-abc"}
}

func TestTestConnection_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/123456", r.URL.Path)
		assert.Equal(t, "name,fan_count", r.URL.Query().Get("fields"))
		assert.Equal(t, "tok-abc", r.URL.Query().Get("access_token"))

		json.NewEncoder(w).Encode(map[string]interface{}{"name": "عالم بلاستك", "fan_count": 1250})
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t, testCreds()), zerolog.Nop())

	info, err := client.TestConnection(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "عالم بلاستك", info.Name)
	assert.Equal(t, 1250, info.FanCount)
}

func TestTestConnection_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token."}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t, testCreds()), zerolog.Nop())

	info, err := client.TestConnection(context.Background())

	assert.Nil(t, info)
	require.Error(t, err)
	assert.Equal(t, "Invalid OAuth access token.", err.Error())
}

func TestTestConnection_MissingCredentials(t *testing.T) {
	client := NewClient("http://unused", newTestStore(t, settings.SocialCredentials{}), zerolog.Nop())

	info, err := client.TestConnection(context.Background())

	assert.Nil(t, info)
	assert.Error(t, err)
}

func TestPostPhoto_RemoteImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/123456/photos", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "tok-abc", r.FormValue("access_token"))
		assert.Contains(t, r.FormValue("caption"), "أكواب بلاستيكية")
		assert.Equal(t, "https://example.com/cups.jpg", r.FormValue("url"))

		// A remote image must never carry a file part.
		assert.Empty(t, r.MultipartForm.File)

		json.NewEncoder(w).Encode(map[string]string{"id": "123456_789"})
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t, testCreds()), zerolog.Nop())

	product := model.Product{
		ID:       "3",
		Name:     "أكواب بلاستيكية",
		Price:    18000,
		UnitType: model.UnitDozen,
		Image:    model.RemoteImage("https://example.com/cups.jpg"),
	}

	postID, err := client.PostPhoto(context.Background(), product)

	require.NoError(t, err)
	assert.Equal(t, "123456_789", postID)
}

func TestPostPhoto_InlineImage(t *testing.T) {
	imageBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		// An inline image travels as the "source" file part, never as a
		// url field.
		assert.Empty(t, r.FormValue("url"))

		file, _, err := r.FormFile("source")
		require.NoError(t, err)
		defer file.Close()

		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, imageBytes, got)

		json.NewEncoder(w).Encode(map[string]string{"id": "123456_790"})
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t, testCreds()), zerolog.Nop())

	product := model.Product{
		ID:       "9",
		Name:     "صحون ملونة",
		Price:    9000,
		UnitType: model.UnitSet,
		Image:    model.InlineImage(imageBytes, "image/jpeg"),
	}

	postID, err := client.PostPhoto(context.Background(), product)

	require.NoError(t, err)
	assert.Equal(t, "123456_790", postID)
}

func TestPostPhoto_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"Permissions error"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestStore(t, testCreds()), zerolog.Nop())

	postID, err := client.PostPhoto(context.Background(), model.Product{
		Name:  "منتج",
		Image: model.RemoteImage("https://example.com/x.jpg"),
	})

	assert.Empty(t, postID)
	require.Error(t, err)
	assert.Equal(t, "Permissions error", err.Error())
}

func TestCaption(t *testing.T) {
	caption := Caption(model.Product{
		Name:     "صناديق تخزين",
		Price:    35000,
		UnitType: model.UnitPiece,
	})

	assert.Contains(t, caption, "صناديق تخزين")
	assert.Contains(t, caption, "35,000 د.ع")
	assert.Contains(t, caption, "قطعة")
}
