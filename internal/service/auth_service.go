package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"gen-archive-go/internal/model"
	"gen-archive-go/internal/store"
	"gen-archive-go/pkg/log"
	"gen-archive-go/pkg/token"
)

// AuthService 处理 Telegram 登录校验与会话身份。
type AuthService struct {
	store    *store.RecordStore
	jwt      *token.JWTManager
	botToken string
}

func NewAuthService(recordStore *store.RecordStore, jwtManager *token.JWTManager, botToken string) *AuthService {
	return &AuthService{
		store:    recordStore,
		jwt:      jwtManager,
		botToken: botToken,
	}
}

// Login 校验 Telegram 登录回调数据并持久化身份，返回展示用 JWT。
// 未配置 bot token 时跳过签名校验（开发模式）。
func (s *AuthService) Login(user model.TelegramUser) (string, error) {
	if s.botToken != "" && !s.verifyHash(user) {
		return "", fmt.Errorf("telegram 登录数据签名校验失败")
	}

	s.store.SetIdentity(&user)
	log.Infof("[auth] 用户登录: %s (id=%d)", user.DisplayName(), user.ID)

	return s.jwt.GenerateToken(user.ID, user.FirstName, user.Username, user.PhotoURL)
}

// Logout 清除持久化身份。
func (s *AuthService) Logout() {
	s.store.SetIdentity(nil)
	log.Infof("[auth] 用户退出登录")
}

// Identity 返回当前身份，未登录时为 nil。
func (s *AuthService) Identity() *model.TelegramUser {
	return s.store.Identity()
}

// verifyHash 按 Telegram Login Widget 协议校验数据签名：
// data-check-string 是除 hash 外全部字段按键名排序拼成的
// key=value 行集，密钥为 bot token 的 SHA256。
func (s *AuthService) verifyHash(user model.TelegramUser) bool {
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

	secret := sha256.Sum256([]byte(s.botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(pairs, "\n")))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(user.Hash))
}
