package model

import "time"

// ProfileType 资料类型：个人或团体
type ProfileType string

const (
	ProfileIndividual ProfileType = "INDIVIDUAL"
	ProfileGroup      ProfileType = "GROUP"
)

// User 结构体表示用户模型
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile 用户资料模型
type Profile struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Bio         string      `json:"bio,omitempty"`
	Location    string      `json:"location,omitempty"`
	ProfileType ProfileType `json:"profile_type"`
	Causes      []string    `json:"causes"`
	User        UserRef     `json:"user"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
}

// UserRef 资料中内嵌的用户引用
type UserRef struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// AuthResponse 登录/注册成功后的响应
type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        User    `json:"user"`
	Profile     Profile `json:"profile"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email       string      `json:"email" binding:"required,email" validate:"required,email"`
	Password    string      `json:"password" binding:"required" validate:"required,min=8"`
	Name        string      `json:"name" binding:"required" validate:"required"`
	ProfileType ProfileType `json:"profile_type" binding:"required" validate:"required,oneof=INDIVIDUAL GROUP"`
	Bio         string      `json:"bio,omitempty"`
	Location    string      `json:"location,omitempty"`
	Causes      []string    `json:"causes"`
}

// ProfileUpdateRequest 资料更新请求，nil 字段表示不修改
type ProfileUpdateRequest struct {
	Name     *string  `json:"name,omitempty"`
	Bio      *string  `json:"bio,omitempty"`
	Location *string  `json:"location,omitempty"`
	Causes   []string `json:"causes,omitempty"`
}

// Causes 固定的议题标签集合
var Causes = []string{
	"HOUSING_JUSTICE",
	"LABOR_RIGHTS",
	"ENVIRONMENTAL_JUSTICE",
	"RACIAL_JUSTICE",
	"ECONOMIC_JUSTICE",
	"EDUCATION_EQUITY",
	"HEALTHCARE_ACCESS",
	"IMMIGRANT_RIGHTS",
	"MUTUAL_AID",
	"COMMUNITY_DEFENSE",
	"DISABILITY_JUSTICE",
	"INDIGENOUS_RIGHTS",
	"CLIMATE_JUSTICE",
	"WORKERS_RIGHTS",
	"EDUCATION_ACCESS",
	"HEALTHCARE_FOR_ALL",
	"LGBTQ_RIGHTS",
	"FOOD_SECURITY",
}
