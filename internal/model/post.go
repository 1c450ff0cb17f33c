package model

import "time"

// MaxPostLength 帖子正文的最大长度
const MaxPostLength = 500

// Post 帖子模型
type Post struct {
	ID        int        `json:"id"`
	Text      string     `json:"text"`
	ImageURL  string     `json:"image_url,omitempty"`
	Author    Creator    `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// PostCreateRequest 创建帖子请求
type PostCreateRequest struct {
	Text     string `json:"text" binding:"required,max=500" validate:"required,max=500"`
	ImageURL string `json:"image_url,omitempty"`
}
