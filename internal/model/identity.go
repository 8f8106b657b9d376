package model

// TelegramUser 是登录组件回传的展示用身份。服务端不提供任何可信度保证，
// 仅用于给新帖子和评价署名。
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	AuthDate  int64  `json:"auth_date"`
	Hash      string `json:"hash"`
}

// DisplayName 返回署名用的名字：优先用户名，其次名。
func (u TelegramUser) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}
