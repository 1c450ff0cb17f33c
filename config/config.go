package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config 结构体用于存储应用程序的配置信息
type Config struct {
	APIBaseURL     string        // 后端 REST API 地址
	RequestTimeout time.Duration // HTTP 请求超时时间
	LogLevel       string
	StateDir       string // 客户端本地状态目录（令牌、主题、资料缓存）
	ListenAddr     string // riseupd 监听地址
	JWTSecret      string // riseupd 签发令牌使用的密钥
	FrontendURL    string // CORS 允许的前端地址
	TokenTTL       time.Duration
	Debug          bool // 是否开启调试模式
}

// AppConfig 是全局配置变量
var AppConfig Config

// Init 函数用于初始化配置
func Init() {
	// 加载 .env 文件
	err := godotenv.Load()
	if err != nil {
		log.Printf("警告：无法加载 .env 文件: %v", err)
	}

	// 从环境变量中读取配置
	AppConfig = Config{
		APIBaseURL:     getEnv("RISEUP_API_URL", "http://localhost:8000/api/v1"),
		RequestTimeout: getEnvAsDuration("RISEUP_REQUEST_TIMEOUT", 15*time.Second),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StateDir:       getEnv("RISEUP_STATE_DIR", defaultStateDir()),
		ListenAddr:     getEnv("RISEUPD_LISTEN_ADDR", ":8000"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		TokenTTL:       getEnvAsDuration("TOKEN_TTL", 7*24*time.Hour),
		Debug:          getEnvAsBool("DEBUG", false),
	}

	if AppConfig.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("应用程序运行在调试模式")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
}

// ValidateServer 校验 riseupd 必需的配置项
func ValidateServer() {
	if AppConfig.JWTSecret == "" {
		log.Fatal("错误：JWT密钥未设置")
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".riseup"
	}
	return filepath.Join(home, ".riseup")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(key, "")
	if val, err := time.ParseDuration(valStr); err == nil && val > 0 {
		return val
	}
	return defaultVal
}
