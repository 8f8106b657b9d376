package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/repository"
	"gen-archive-go/internal/store"
	"gen-archive-go/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T, botToken string) *AuthService {
	t.Helper()
	repo, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	recordStore := store.NewRecordStore(repo, true)
	return NewAuthService(recordStore, token.NewJWTManager("test-secret", 1), botToken)
}

// signTelegramUser 按 Login Widget 协议为测试数据计算签名。
func signTelegramUser(user *model.TelegramUser, botToken string) {
	pairs := []string{
		fmt.Sprintf("auth_date=%d", user.AuthDate),
		fmt.Sprintf("first_name=%s", user.FirstName),
		fmt.Sprintf("id=%d", user.ID),
	}
	if user.LastName != "" {
		pairs = append(pairs, fmt.Sprintf("last_name=%s", user.LastName))
	}
	if user.PhotoURL != "" {
		pairs = append(pairs, fmt.Sprintf("photo_url=%s", user.PhotoURL))
	}
	if user.Username != "" {
		pairs = append(pairs, fmt.Sprintf("username=%s", user.Username))
	}
	sort.Strings(pairs)

	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(pairs, "\n")))
	user.Hash = hex.EncodeToString(mac.Sum(nil))
}

func TestLogin_NoBotTokenSkipsVerification(t *testing.T) {
	t.Parallel()

	s := newTestAuthService(t, "")
	user := model.TelegramUser{ID: 42, FirstName: "Иван", Username: "ivan_arch"}

	jwtToken, err := s.Login(user)
	require.NoError(t, err)
	assert.NotEmpty(t, jwtToken)

	identity := s.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, int64(42), identity.ID)
}

func TestLogin_ValidSignature(t *testing.T) {
	t.Parallel()

	const botToken = "123456:test-bot-token"
	s := newTestAuthService(t, botToken)

	user := model.TelegramUser{
		ID:        42,
		FirstName: "Иван",
		Username:  "ivan_arch",
		PhotoURL:  "https://t.me/p.jpg",
		AuthDate:  time.Now().Unix(),
	}
	signTelegramUser(&user, botToken)

	jwtToken, err := s.Login(user)
	require.NoError(t, err)
	assert.NotEmpty(t, jwtToken)
}

func TestLogin_InvalidSignatureRejected(t *testing.T) {
	t.Parallel()

	s := newTestAuthService(t, "123456:test-bot-token")

	user := model.TelegramUser{
		ID:        42,
		FirstName: "Иван",
		AuthDate:  time.Now().Unix(),
		Hash:      "deadbeef",
	}

	_, err := s.Login(user)
	require.Error(t, err)
	assert.Nil(t, s.Identity())
}

func TestLogin_TokenCarriesIdentityClaims(t *testing.T) {
	t.Parallel()

	jwtManager := token.NewJWTManager("test-secret", 1)
	s := newTestAuthService(t, "")

	jwtToken, err := s.Login(model.TelegramUser{ID: 42, FirstName: "Иван", Username: "ivan_arch"})
	require.NoError(t, err)

	claims, err := jwtManager.VerifyToken(jwtToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ivan_arch", claims.Username)
}

func TestLogout_ClearsIdentity(t *testing.T) {
	t.Parallel()

	s := newTestAuthService(t, "")
	_, err := s.Login(model.TelegramUser{ID: 42, FirstName: "Иван"})
	require.NoError(t, err)
	require.NotNil(t, s.Identity())

	s.Logout()
	assert.Nil(t, s.Identity())
}
