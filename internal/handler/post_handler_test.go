package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gen-archive-go/internal/middleware"
	"gen-archive-go/internal/model"
	"gen-archive-go/internal/repository"
	"gen-archive-go/internal/service"
	"gen-archive-go/internal/sheet"
	"gen-archive-go/internal/store"
	"gen-archive-go/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostTestRouter(t *testing.T) (*gin.Engine, *store.RecordStore, *token.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	recordStore := store.NewRecordStore(repo, true)
	recordStore.SetSheetPosts([]model.Post{{ID: "x1", Title: "Запись", Reviews: []model.Review{}}})

	jwtManager := token.NewJWTManager("test-secret", 1)
	feedService := service.NewFeedService(recordStore, sheet.NewClient("", 0), nil, nil)

	r := gin.New()
	r.Use(middleware.OptionalAuth(jwtManager))
	h := NewPostHandler(feedService)
	r.POST("/api/v1/posts", h.CreatePost)
	r.POST("/api/v1/posts/:id/reviews", h.CreateReview)
	return r, recordStore, jwtManager
}

func postJSON(t *testing.T, r *gin.Engine, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReview_NoIdentityRejected(t *testing.T) {
	t.Parallel()

	r, _, _ := newPostTestRouter(t)
	w := postJSON(t, r, "/api/v1/posts/x1/reviews", "", gin.H{"text": "ок", "rating": 5})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateReview_BearerTokenActsAsIdentity(t *testing.T) {
	t.Parallel()

	// 持久化身份为空：署名身份必须来自请求令牌
	r, recordStore, jwtManager := newPostTestRouter(t)
	require.Nil(t, recordStore.Identity())

	jwtToken, err := jwtManager.GenerateToken(42, "Иван", "ivan_arch", "")
	require.NoError(t, err)

	w := postJSON(t, r, "/api/v1/posts/x1/reviews", jwtToken, gin.H{"text": "ок", "rating": 5})
	require.Equal(t, http.StatusOK, w.Code)

	reviews := recordStore.PostsWithReviews()[0].Reviews
	require.Len(t, reviews, 1)
	assert.Equal(t, "ivan_arch", reviews[0].Author)
}

func TestCreateReview_GarbageTokenFallsBackToStoredIdentity(t *testing.T) {
	t.Parallel()

	r, recordStore, _ := newPostTestRouter(t)
	recordStore.SetIdentity(&model.TelegramUser{ID: 7, FirstName: "Анна", Username: "anna"})

	w := postJSON(t, r, "/api/v1/posts/x1/reviews", "не-токен", gin.H{"text": "ок", "rating": 4})
	require.Equal(t, http.StatusOK, w.Code)

	reviews := recordStore.PostsWithReviews()[0].Reviews
	require.Len(t, reviews, 1)
	assert.Equal(t, "anna", reviews[0].Author)
}

func TestCreatePost_AuthorFromBearerToken(t *testing.T) {
	t.Parallel()

	r, recordStore, jwtManager := newPostTestRouter(t)
	jwtToken, err := jwtManager.GenerateToken(42, "Иван", "ivan_arch", "")
	require.NoError(t, err)

	w := postJSON(t, r, "/api/v1/posts", jwtToken, gin.H{
		"title":        "Новая запись",
		"inputContent": "вход",
	})
	require.Equal(t, http.StatusOK, w.Code)

	posts := recordStore.MergedPosts()
	require.Equal(t, "Новая запись", posts[0].Title)
	assert.Equal(t, "ivan_arch", posts[0].Author)
}
