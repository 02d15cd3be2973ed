package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunar-gate/skilldeck/internal/models"
)

// staticTokens is a TokenSource with a fixed token.
type staticTokens struct{ token string }

func (s staticTokens) Token() (string, bool) { return s.token, s.token != "" }

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, staticTokens{token: token})
	require.NoError(t, err)
	return client
}

func TestListAssociationsRequestShape(t *testing.T) {
	var gotPath, gotAuth string
	var gotQuery map[string][]string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(models.Page{
			Items:      []models.Association{{ID: 1, Name: "go", Level: "50"}},
			TotalPages: 3,
		})
	})

	client := newTestClient(t, handler, "tok-123")
	page, err := client.ListAssociations(context.Background(), ListRequest{
		UserID: "5",
		Page:   2,
		Size:   10,
		Search: "  go  ",
		Sort:   "nome,asc",
	})
	require.NoError(t, err)

	assert.Equal(t, "/associacoes/usuario/5/skills", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"10"}, gotQuery["size"])
	assert.Equal(t, []string{"go"}, gotQuery["skillNome"], "search is trimmed before sending")
	assert.Equal(t, []string{"nome,asc"}, gotQuery["sort"])

	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "go", page.Items[0].Name)
}

func TestListAssociationsOmitsBlankParams(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(models.Page{})
	})

	client := newTestClient(t, handler, "tok")
	_, err := client.ListAssociations(context.Background(), ListRequest{UserID: "5", Page: 0, Size: 3})
	require.NoError(t, err)

	assert.NotContains(t, gotQuery, "skillNome")
	assert.NotContains(t, gotQuery, "sort")
}

func TestAuthenticatedCallWithoutToken(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	client := newTestClient(t, handler, "")
	_, err := client.ListAssociations(context.Background(), ListRequest{UserID: "5", Size: 3})
	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, called, "no request may be issued without a token")
}

func TestUpdateAssociation(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]interface{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(models.Association{ID: 7, Level: "80"})
	})

	client := newTestClient(t, handler, "tok")
	updated, err := client.UpdateAssociation(context.Background(), 7, "5", "80")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/associacoes/7", gotPath)
	assert.Equal(t, "5", gotBody["usuarioId"])
	assert.Equal(t, float64(7), gotBody["skillId"])
	assert.Equal(t, "80", gotBody["level"])
	assert.Equal(t, "80", updated.Level)
}

func TestDeleteAssociation(t *testing.T) {
	var gotMethod, gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, handler, "tok")
	require.NoError(t, client.DeleteAssociation(context.Background(), 9))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/associacoes/9", gotPath)
}

func TestCreateAssociation(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Association{ID: 3})
	})

	client := newTestClient(t, handler, "tok")
	created, err := client.CreateAssociation(context.Background(), "5", 12, "25")
	require.NoError(t, err)

	assert.Equal(t, "/associacoes/associar", gotPath)
	assert.Equal(t, float64(12), gotBody["skillId"])
	assert.Equal(t, "25", gotBody["level"])
	assert.Equal(t, 3, created.ID)
}

func TestSignIn(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login/signin", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "sign-in is unauthenticated")

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "u", body["username"])
		assert.Equal(t, "p", body["password"])

		_ = json.NewEncoder(w).Encode(models.SignInResult{AccessToken: "t", ID: 5})
	})

	client := newTestClient(t, handler, "")
	token, userID, err := client.SignIn(context.Background(), models.Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "t", token)
	assert.Equal(t, "5", userID)
}

func TestSignInBadCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := newTestClient(t, handler, "")
	_, _, err := client.SignIn(context.Background(), models.Credentials{Username: "u", Password: "bad"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSignUpPayload(t *testing.T) {
	var gotBody map[string]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login/signup", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	})

	client := newTestClient(t, handler, "")
	require.NoError(t, client.SignUp(context.Background(), "newuser", "secret"))
	assert.Equal(t, "newuser", gotBody["login"])
	assert.Equal(t, "secret", gotBody["senha"])
}

func TestServerErrorSurfacesStatus(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "it broke", http.StatusInternalServerError)
	})

	client := newTestClient(t, handler, "tok")
	_, err := client.GetAssociation(context.Background(), 1)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "it broke")
}
